// Package charset classifies Vietnamese letters and splits them into a base
// Latin letter, a quality diacritic and a tone mark.
package charset

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Tone is one of the five Vietnamese tone marks, or none.
type Tone int

const (
	ToneNone  Tone = iota
	ToneAcute      // sắc
	ToneGrave      // huyền
	ToneHook       // hỏi
	ToneTilde      // ngã
	ToneDot        // nặng
)

// toneMarks holds the combining code point of each tone, indexed by Tone.
var toneMarks = [...]rune{0, '\u0301', '\u0300', '\u0309', '\u0303', '\u0323'}

var toneNames = [...]string{"none", "acute", "grave", "hook", "tilde", "dot"}

// Mark returns the combining code point bound to the tone, or 0 for ToneNone.
func (t Tone) Mark() rune {
	if t <= ToneNone || int(t) >= len(toneMarks) {
		return 0
	}
	return toneMarks[t]
}

func (t Tone) String() string {
	if t < ToneNone || int(t) >= len(toneNames) {
		return "invalid"
	}
	return toneNames[t]
}

func toneFromMark(r rune) Tone {
	for i := 1; i < len(toneMarks); i++ {
		if toneMarks[i] == r {
			return Tone(i)
		}
	}
	return ToneNone
}

// IsToneMark reports whether r is one of the five tone combining marks.
func IsToneMark(r rune) bool {
	return toneFromMark(r) != ToneNone
}

// Quality is a letter-shape diacritic, independent of the tone.
type Quality int

const (
	QualityNone Quality = iota
	Circumflex          // â ê ô
	Breve               // ă
	Horn                // ơ ư
	Stroke              // đ
)

var qualityNames = [...]string{"none", "circumflex", "breve", "horn", "stroke"}

func (q Quality) String() string {
	if q < QualityNone || int(q) >= len(qualityNames) {
		return "invalid"
	}
	return qualityNames[q]
}

const (
	markCircumflex = '\u0302'
	markBreve      = '\u0306'
	markHorn       = '\u031B'
)

// Letter is a decomposed Vietnamese letter. Base keeps the case of the
// original rune.
type Letter struct {
	Base    rune
	Quality Quality
	Tone    Tone
}

// qualityLetters maps a lowercase base letter to its quality forms. These are
// independent letters of the alphabet, so they are looked up rather than
// composed from combining marks.
var qualityLetters = map[rune]map[Quality]rune{
	'a': {Circumflex: 'â', Breve: 'ă'},
	'e': {Circumflex: 'ê'},
	'o': {Circumflex: 'ô', Horn: 'ơ'},
	'u': {Horn: 'ư'},
	'd': {Stroke: 'đ'},
}

const (
	vowelBases     = "aeiouy"
	consonantBases = "bcdfghjklmnpqrstvwxz"
)

// Decompose splits r into base letter, quality and tone. Runes carrying marks
// outside the Vietnamese set are returned unchanged as their own base.
func Decompose(r rune) Letter {
	l, _ := decompose(r)
	return l
}

func decompose(r rune) (Letter, bool) {
	switch r {
	case 'đ':
		return Letter{Base: 'd', Quality: Stroke}, true
	case 'Đ':
		return Letter{Base: 'D', Quality: Stroke}, true
	}
	if r < utf8.RuneSelf {
		return Letter{Base: r}, true
	}

	l := Letter{Base: r}
	for i, c := range norm.NFD.String(string(r)) {
		if i == 0 {
			l.Base = c
			continue
		}
		switch c {
		case markCircumflex:
			l.Quality = Circumflex
		case markBreve:
			l.Quality = Breve
		case markHorn:
			l.Quality = Horn
		default:
			t := toneFromMark(c)
			if t == ToneNone {
				return Letter{Base: r}, false
			}
			l.Tone = t
		}
	}
	return l, true
}

// Compose is the inverse of Decompose. It reports false when the combination
// does not exist in Vietnamese orthography (a horn on 'e', a tone on a
// consonant, ...).
func Compose(l Letter) (rune, bool) {
	lower := unicode.ToLower(l.Base)
	upper := unicode.IsUpper(l.Base)

	r := lower
	if l.Quality != QualityNone {
		q, ok := qualityLetters[lower][l.Quality]
		if !ok {
			return l.Base, false
		}
		r = q
	}
	if l.Tone != ToneNone {
		if !isVowelBase(lower) {
			return l.Base, false
		}
		composed := []rune(norm.NFC.String(string([]rune{r, l.Tone.Mark()})))
		if len(composed) != 1 {
			return l.Base, false
		}
		r = composed[0]
	}
	if upper {
		r = unicode.ToUpper(r)
	}
	return r, true
}

// WithTone returns r carrying tone t in place of its current tone. The quality
// diacritic and the case are kept.
func WithTone(r rune, t Tone) (rune, bool) {
	l, ok := decompose(r)
	if !ok {
		return r, false
	}
	l.Tone = t
	return Compose(l)
}

// WithQuality returns r carrying quality q in place of its current quality.
// The tone and the case are kept.
func WithQuality(r rune, q Quality) (rune, bool) {
	l, ok := decompose(r)
	if !ok {
		return r, false
	}
	l.Quality = q
	return Compose(l)
}

// Base returns the bare Latin letter under r, keeping case.
func Base(r rune) rune {
	return Decompose(r).Base
}

// LowerBase returns the lowercase bare Latin letter under r.
func LowerBase(r rune) rune {
	return unicode.ToLower(Decompose(r).Base)
}

func isVowelBase(r rune) bool {
	for _, v := range vowelBases {
		if r == v {
			return true
		}
	}
	return false
}

func isConsonantBase(r rune) bool {
	for _, c := range consonantBases {
		if r == c {
			return true
		}
	}
	return false
}

// IsVowel reports whether r is a Vietnamese vowel in either case, bare or
// carrying any quality and tone.
func IsVowel(r rune) bool {
	l, ok := decompose(r)
	return ok && isVowelBase(unicode.ToLower(l.Base))
}

// IsConsonant reports whether r is a Latin consonant letter or đ.
func IsConsonant(r rune) bool {
	l, ok := decompose(r)
	return ok && isConsonantBase(unicode.ToLower(l.Base))
}

// ToneOf returns the tone carried by r.
func ToneOf(r rune) Tone {
	return Decompose(r).Tone
}

// QualityOf returns the quality diacritic carried by r.
func QualityOf(r rune) Quality {
	return Decompose(r).Quality
}

