package vinakey

import (
	"vinakey/internal/charset"
	"vinakey/internal/compose"
	"vinakey/internal/keymap"
)

// toggledOff reports whether the key removed the mark class it is bound to
// from word. Pressing a mark key a second time undoes the mark and types the
// key, so "tuff" gives "tuf" and "aaa" gives "aa".
func toggledOff(before, after []rune, action keymap.Action) bool {
	switch action.Kind {
	case keymap.ToneKind:
		return compose.HasTone(before) && !compose.HasTone(after)
	case keymap.QualityKind:
		return hasQuality(before, action) && !hasQuality(after, action)
	}
	return false
}

// hasQuality reports whether a letter of word carries a quality the action
// would put on it.
func hasQuality(word []rune, action keymap.Action) bool {
	for _, r := range word {
		q := charset.QualityOf(r)
		if q == charset.QualityNone || !action.Targets(charset.Base(r)) {
			continue
		}
		if action.Bases[charset.LowerBase(r)] == q {
			return true
		}
	}
	return false
}
