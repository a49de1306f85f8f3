/*
Package vinakey turns ASCII keystrokes into Vietnamese text.

An Engine holds only configuration: the input method, an enabled switch and the
tone placement style. Each keystroke is resolved from the caller's buffer alone,

	out := engine.Step("vieet", 'j') // "việt"

so independent buffers may be driven from any number of goroutines against one
Engine. The methods TELEX, VNI, VIQR and VIQR* are supported, plus AUTO, which
tries each of them in turn on every keystroke.

Only the trailing run of letters of the buffer is inspected and rewritten; any
text before it is returned unchanged.

Session wraps an Engine with a pre-edit buffer for callers that feed keys one
at a time and want committed text back at word boundaries.

Diagnostic output is written to the trace selected with key 'vinakey'.
*/
package vinakey

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"vinakey/internal/charset"
	"vinakey/internal/keymap"
	"vinakey/internal/syllable"
)

// tracer writes to trace with key 'vinakey'
func tracer() tracing.Trace {
	return tracing.Select("vinakey")
}

// Method selects an input method.
type Method = keymap.Method

const (
	Off      = keymap.Off
	Auto     = keymap.Auto
	Telex    = keymap.Telex
	VNI      = keymap.VNI
	VIQR     = keymap.VIQR
	VIQRStar = keymap.VIQRStar
)

// ErrUnknownMethod is returned when a method is not one of the constants above.
var ErrUnknownMethod = keymap.ErrUnknownMethod

// ParseMethod maps a method name such as "telex" or "viqr*" to its value.
func ParseMethod(name string) (Method, error) {
	return keymap.ParseMethod(name)
}

// Style selects the tone placement on the open clusters oa, oe and uy.
type Style = syllable.Style

const (
	Modern  = syllable.Modern
	Classic = syllable.Classic
)

// ParseStyle maps "modern" or "classic" to a Style.
func ParseStyle(name string) (Style, error) {
	s, ok := syllable.ParseStyle(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return Modern, fmt.Errorf("unknown tone style %q", name)
	}
	return s, nil
}

// IsVietnameseVowel reports whether r is a vowel of the Vietnamese alphabet,
// with or without diacritics.
func IsVietnameseVowel(r rune) bool {
	return charset.IsVowel(r)
}
