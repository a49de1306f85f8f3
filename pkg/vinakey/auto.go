package vinakey

import "vinakey/internal/keymap"

// autoStep tries the concrete methods in keymap.AutoOrder and keeps the first
// result that is not a plain append. Nothing is remembered between keys.
func autoStep(buffer string, key rune, style Style) string {
	literal := buffer + string(key)
	for _, m := range keymap.AutoOrder {
		if out := step(m, buffer, key, style); out != literal {
			tracer().Debugf("auto: %q resolved by %s", key, m)
			return out
		}
	}
	return literal
}
