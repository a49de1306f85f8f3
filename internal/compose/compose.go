// Package compose edits the diacritics of a word held as a slice of runes.
// Every function returns a new slice and leaves its argument untouched.
package compose

import (
	"vinakey/internal/charset"
	"vinakey/internal/normalizer"
	"vinakey/internal/syllable"
)

func clone(word []rune) []rune {
	out := make([]rune, len(word))
	copy(out, word)
	return out
}

// ApplyTone strips every tone from word and puts tone t on word[index].
// Quality marks and case survive.
func ApplyTone(word []rune, index int, t charset.Tone) ([]rune, bool) {
	if index < 0 || index >= len(word) {
		return word, false
	}
	out := RemoveTone(word)
	r, ok := charset.WithTone(out[index], t)
	if !ok {
		return word, false
	}
	out[index] = r
	return out, true
}

// RemoveTone strips every tone from word.
func RemoveTone(word []rune) []rune {
	out := clone(word)
	for i, r := range out {
		if charset.ToneOf(r) == charset.ToneNone {
			continue
		}
		if bare, ok := charset.WithTone(r, charset.ToneNone); ok {
			out[i] = bare
		}
	}
	return out
}

// HasTone reports whether any letter of word carries a tone.
func HasTone(word []rune) bool {
	for _, r := range word {
		if charset.ToneOf(r) != charset.ToneNone {
			return true
		}
	}
	return false
}

// ToneOf returns the first tone found in word.
func ToneOf(word []rune) charset.Tone {
	for _, r := range word {
		if t := charset.ToneOf(r); t != charset.ToneNone {
			return t
		}
	}
	return charset.ToneNone
}

// ApplyQuality puts quality q on word[index], keeping its tone and case.
func ApplyQuality(word []rune, index int, q charset.Quality) ([]rune, bool) {
	if index < 0 || index >= len(word) {
		return word, false
	}
	r, ok := charset.WithQuality(word[index], q)
	if !ok {
		return word, false
	}
	out := clone(word)
	out[index] = r
	return out, true
}

// RemoveQuality strips the quality of word[index], keeping its tone and case.
func RemoveQuality(word []rune, index int) ([]rune, bool) {
	return ApplyQuality(word, index, charset.QualityNone)
}

// Horn puts the horn on both letters of the u-o pair starting at i, or takes
// it off both when each already carries it. Each letter keeps its own case
// and tone.
func Horn(word []rune, i int) ([]rune, bool) {
	if i < 0 || i+1 >= len(word) {
		return word, false
	}
	q := charset.Horn
	if charset.QualityOf(word[i]) == charset.Horn && charset.QualityOf(word[i+1]) == charset.Horn {
		q = charset.QualityNone
	}
	u, ok1 := charset.WithQuality(word[i], q)
	o, ok2 := charset.WithQuality(word[i+1], q)
	if !ok1 || !ok2 {
		return word, false
	}
	out := clone(word)
	out[i], out[i+1] = u, o
	return out, true
}

// ClearAll maps every letter of word back to its bare Latin letter and reports
// whether anything was removed.
func ClearAll(word []rune) ([]rune, bool) {
	return normalizer.FoldRunes(word)
}

// Relocate moves the tone of word to the nucleus found by the locator. It is
// used after a quality change shifts the nucleus, as in thuòng to thường.
func Relocate(word []rune, style syllable.Style) []rune {
	t := ToneOf(word)
	if t == charset.ToneNone {
		return word
	}
	idx := syllable.Locate(word, style)
	if idx < 0 || charset.ToneOf(word[idx]) == t {
		return word
	}
	out, ok := ApplyTone(word, idx, t)
	if !ok {
		return word
	}
	return out
}
