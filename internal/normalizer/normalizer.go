// Package normalizer handles Unicode normalization and diacritic folding for
// Vietnamese text.
package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// charMap maps letters that do not decompose under NFD to their base letter.
var charMap = map[rune]rune{
	'đ': 'd', 'Đ': 'D',
}

// NFC returns s in composed form. Decomposed input (base letter followed by
// combining marks) is folded into single code points before it is inspected.
func NFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// FoldChar maps a single character to its base Latin letter, keeping case.
// Tone marks and quality diacritics are both removed.
func FoldChar(r rune) rune {
	if base, ok := charMap[r]; ok {
		return base
	}
	if r < utf8.RuneSelf {
		return r
	}

	// Fall back to Unicode decomposition
	decomposed := []rune(norm.NFD.String(string(r)))
	if len(decomposed) < 2 {
		return r
	}
	for _, c := range decomposed[1:] {
		if !unicode.Is(unicode.Mn, c) {
			return r
		}
	}
	return decomposed[0]
}

// FoldRunes folds every rune of word in place order and reports whether any
// rune changed.
func FoldRunes(word []rune) ([]rune, bool) {
	out := make([]rune, len(word))
	changed := false
	for i, r := range word {
		out[i] = FoldChar(r)
		if out[i] != r {
			changed = true
		}
	}
	return out, changed
}

// FoldWord strips all diacritics from word, keeping case.
func FoldWord(word string) string {
	var result strings.Builder
	result.Grow(len(word))

	for _, r := range word {
		result.WriteRune(FoldChar(r))
	}

	return result.String()
}

// HasVietnamese reports whether word carries any diacritic that FoldWord
// would remove.
func HasVietnamese(word string) bool {
	for _, r := range word {
		if FoldChar(r) != r {
			return true
		}
	}
	return false
}
