// Package syllable finds where a diacritic belongs inside an in-progress
// Vietnamese word.
//
// The word is a slice of runes holding only letters. The tone locator looks at
// the last run of vowels, skips onset glides (the u of qu-, the i of gi-) and
// resolves the nucleus from tables of known clusters before falling back to a
// final-consonant heuristic.
package syllable

import (
	"unicode"

	"github.com/npillmayer/schuko/tracing"

	"vinakey/internal/charset"
)

// tracer writes to trace with key 'vinakey.syllable'
func tracer() tracing.Trace {
	return tracing.Select("vinakey.syllable")
}

// Style selects between the two accepted placements of a tone on the open
// clusters oa, oe and uy.
type Style int

const (
	// Modern puts the tone on the second vowel: hoà, khoẻ, thuý.
	Modern Style = iota
	// Classic puts the tone on the first vowel: hòa, khỏe, thúy.
	Classic
)

func (s Style) String() string {
	if s == Classic {
		return "classic"
	}
	return "modern"
}

// ParseStyle maps "modern" or "classic" to a Style.
func ParseStyle(name string) (Style, bool) {
	switch name {
	case "modern", "":
		return Modern, true
	case "classic", "old":
		return Classic, true
	}
	return Modern, false
}

// key returns the cluster spelling used by the tables: lowercase, no tone,
// quality kept.
func key(word []rune) string {
	out := make([]rune, len(word))
	for i, r := range word {
		l := charset.Decompose(r)
		l.Base = unicode.ToLower(l.Base)
		l.Tone = charset.ToneNone
		c, ok := charset.Compose(l)
		if !ok {
			c = l.Base
		}
		out[i] = c
	}
	return string(out)
}

// VowelRun returns the bounds [start, end) of the last run of vowels in word,
// without the onset glide of qu- and gi-. ok is false when word has no vowel.
func VowelRun(word []rune) (start, end int, ok bool) {
	start, end, ok = rawRun(word)
	if !ok || end-start < 2 || start == 0 {
		return
	}
	prev := charset.LowerBase(word[start-1])
	first := charset.LowerBase(word[start])
	if (prev == 'q' && first == 'u') || (prev == 'g' && first == 'i') {
		start++
	}
	return
}

// rawRun is VowelRun without the onset adjustment.
func rawRun(word []rune) (start, end int, ok bool) {
	end = len(word)
	for end > 0 && !charset.IsVowel(word[end-1]) {
		end--
	}
	if end == 0 {
		return 0, 0, false
	}
	start = end - 1
	for start > 0 && charset.IsVowel(word[start-1]) {
		start--
	}
	return start, end, true
}

var digraphs = map[string]bool{
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
}

// FinalConsonants counts the consonant units in word[from:], with the
// digraphs ch gh gi kh ng nh ph qu th tr and the trigraph ngh counting once.
func FinalConsonants(word []rune, from int) int {
	n := 0
	for i := from; i < len(word); {
		if i+3 <= len(word) && key(word[i:i+3]) == "ngh" {
			i += 3
		} else if i+2 <= len(word) && digraphs[key(word[i:i+2])] {
			i += 2
		} else {
			i++
		}
		n++
	}
	return n
}

var triphthongs = map[string]int{
	"iêu": 1, "ieu": 1, "yêu": 1, "yeu": 1,
	"uôi": 1, "uoi": 1, "ươi": 1, "ươu": 1,
	"oai": 1, "uai": 1, "oay": 1, "uay": 1,
	"uya": 1, "uyu": 1, "uây": 1, "oeo": 1,
	"uyê": 2, "uye": 2,
}

// placement holds the nucleus offset of a two-vowel cluster when nothing
// follows it (open) and when a final consonant does (closed).
type placement struct {
	open, closed int
}

var diphthongs = map[string]placement{
	"ia": {0, 1}, "ua": {0, 1}, "ưa": {0, 1},

	"iê": {1, 1}, "ie": {1, 1}, "yê": {1, 1}, "ye": {1, 1},
	"uô": {1, 1}, "uo": {1, 1}, "ươ": {1, 1}, "ưo": {1, 1}, "uơ": {1, 1},

	"ai": {0, 0}, "ay": {0, 0}, "ây": {0, 0},
	"oi": {0, 0}, "ôi": {0, 0}, "ơi": {0, 0},
	"ui": {0, 0}, "ưi": {0, 0},
	"ao": {0, 0}, "au": {0, 0}, "âu": {0, 0},
	"eo": {0, 0}, "êu": {0, 0}, "iu": {0, 0}, "ưu": {0, 0},

	"oă": {1, 1}, "uê": {1, 1}, "ue": {1, 1}, "uâ": {1, 1}, "uă": {1, 1},
}

// styled clusters take the open placement from the Style.
var styled = map[string]bool{"oa": true, "oe": true, "uy": true}

// Locate returns the index in word of the vowel that carries the tone, or -1
// when word has no vowel.
func Locate(word []rune, style Style) int {
	start, end, ok := VowelRun(word)
	if !ok {
		return -1
	}
	n := end - start
	if n == 1 {
		return start
	}
	closed := end < len(word)
	cluster := key(word[start:end])

	if n == 3 {
		if off, ok := triphthongs[cluster]; ok {
			return start + off
		}
	}
	if n >= 2 {
		pair := []rune(cluster)[n-2:]
		p := string(pair)
		if styled[p] {
			if closed || style == Modern {
				return end - 1
			}
			return end - 2
		}
		if pl, ok := diphthongs[p]; ok {
			if closed {
				return end - 2 + pl.closed
			}
			return end - 2 + pl.open
		}
	}

	// a quality-bearing vowel is the nucleus
	for i := end - 1; i >= start; i-- {
		switch charset.QualityOf(word[i]) {
		case charset.Circumflex, charset.Breve, charset.Horn:
			return i
		}
	}

	tracer().Debugf("no cluster entry for %q, using final consonants", cluster)
	if n >= 3 {
		return start + 1
	}
	if FinalConsonants(word, end) > 0 {
		return start + 1
	}
	return start
}

// MaxTrailing is the number of consonants that may separate a quality key from
// the vowel it modifies.
const MaxTrailing = 3

// Targets describes the letters a quality key may modify, as a lowercase base
// letter mapped to the quality it would receive.
type Targets map[rune]charset.Quality

// LocateQuality returns the index of the letter a quality key modifies, or -1.
// The stroke goes on a word-initial d. Vowel qualities look at the last vowel
// run, which may sit up to MaxTrailing consonants before the end of word.
func LocateQuality(word []rune, bases Targets) int {
	if len(word) == 0 {
		return -1
	}
	if _, ok := bases['d']; ok {
		if charset.LowerBase(word[0]) == 'd' {
			return 0
		}
		return -1
	}

	start, end, ok := rawRun(word)
	if !ok || len(word)-end > MaxTrailing {
		return -1
	}

	// a vowel already carrying the quality toggles it off
	for i := end - 1; i >= start; i-- {
		l := charset.Decompose(word[i])
		if q, ok := bases[unicode.ToLower(l.Base)]; ok && l.Quality == q {
			return i
		}
	}

	for i := end - 1; i >= start; i-- {
		b := charset.LowerBase(word[i])
		if _, ok := bases[b]; !ok {
			continue
		}
		// mua + w is mưa, not muă
		if b == 'a' && charset.QualityOf(word[i]) == charset.QualityNone && i > start &&
			bases['u'] == charset.Horn && charset.LowerBase(word[i-1]) == 'u' &&
			(i-1 == 0 || charset.LowerBase(word[i-2]) != 'q') {
			return i - 1
		}
		return i
	}
	return -1
}

// HornPair returns the index of the u in a u-o pair of the last vowel run, for
// keys that horn both letters at once. The u of qu- is not part of a pair.
func HornPair(word []rune) int {
	start, end, ok := rawRun(word)
	if !ok || len(word)-end > MaxTrailing {
		return -1
	}
	for i := start; i+1 < end; i++ {
		if charset.LowerBase(word[i]) != 'u' || charset.LowerBase(word[i+1]) != 'o' {
			continue
		}
		if i > 0 && charset.LowerBase(word[i-1]) == 'q' {
			continue
		}
		return i
	}
	return -1
}
