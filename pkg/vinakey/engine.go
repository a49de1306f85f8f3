package vinakey

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"vinakey/internal/charset"
	"vinakey/internal/compose"
	"vinakey/internal/keymap"
	"vinakey/internal/normalizer"
	"vinakey/internal/syllable"
)

// Config is the configuration of an Engine.
type Config struct {
	Method  Method
	Enabled bool
	Style   Style
}

// DefaultConfig returns an enabled TELEX configuration with modern tone
// placement.
func DefaultConfig() Config {
	return Config{Method: Telex, Enabled: true, Style: Modern}
}

// Engine applies keystrokes to caller-owned buffers. It is safe for
// concurrent use; configuration changes take effect from the next keystroke.
type Engine struct {
	method  atomic.Int32
	enabled atomic.Bool
	style   atomic.Int32
}

// New returns an Engine configured with cfg.
func New(cfg Config) (*Engine, error) {
	e := &Engine{}
	if err := e.SetMethod(cfg.Method); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	e.enabled.Store(cfg.Enabled)
	e.SetStyle(cfg.Style)
	return e, nil
}

// SetMethod switches the input method.
func (e *Engine) SetMethod(m Method) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMethod, int32(m))
	}
	e.method.Store(int32(m))
	return nil
}

// Method returns the current input method.
func (e *Engine) Method() Method {
	return Method(e.method.Load())
}

// SetEnabled turns transliteration on or off. A disabled engine appends every
// key literally.
func (e *Engine) SetEnabled(on bool) {
	e.enabled.Store(on)
}

// Enabled reports whether transliteration is on.
func (e *Engine) Enabled() bool {
	return e.enabled.Load()
}

// SetStyle selects the tone placement style. Unknown values fall back to
// Modern.
func (e *Engine) SetStyle(s Style) {
	if s != Classic {
		s = Modern
	}
	e.style.Store(int32(s))
}

// Style returns the tone placement style.
func (e *Engine) Style() Style {
	return Style(e.style.Load())
}

// Config returns a snapshot of the configuration.
func (e *Engine) Config() Config {
	return Config{Method: e.Method(), Enabled: e.Enabled(), Style: e.Style()}
}

// Step returns buffer after key has been typed at its end. A key the method
// does not bind is appended to buffer as is; a bound key sees the buffer in
// NFC.
func (e *Engine) Step(buffer string, key rune) string {
	m := e.Method()
	if m == Off || !e.Enabled() {
		return buffer + string(key)
	}
	if m == Auto {
		return autoStep(buffer, key, e.Style())
	}
	return step(m, buffer, key, e.Style())
}

// ProcessWord feeds every rune of word to Step, starting from an empty
// buffer.
func (e *Engine) ProcessWord(word string) string {
	buf := ""
	for _, k := range word {
		buf = e.Step(buf, k)
	}
	return buf
}

// splitWord cuts buffer before its trailing run of letters.
func splitWord(buffer string) (string, []rune) {
	i := len(buffer)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(buffer[:i])
		if !unicode.IsLetter(r) {
			break
		}
		i -= size
	}
	return buffer[:i], []rune(buffer[i:])
}

// step resolves one keystroke under a concrete method.
func step(m Method, buffer string, key rune, style Style) string {
	literal := buffer + string(key)
	table, ok := keymap.For(m)
	if !ok {
		return literal
	}
	action := table.Lookup(key)
	if action.Kind == keymap.Literal {
		return literal
	}
	if keymap.UsesEscape(m) && strings.HasSuffix(buffer, `\`) {
		tracer().Debugf("%s: escaped %q", m, key)
		return buffer[:len(buffer)-1] + string(key)
	}

	prefix, word := splitWord(normalizer.NFC(buffer))
	if len(word) == 0 {
		return literal
	}
	out, ok := transform(word, action, style)
	if !ok {
		return literal
	}
	if toggledOff(word, out, action) {
		tracer().Debugf("%s: %q undid its mark on %q", m, key, string(word))
		return prefix + string(out) + string(key)
	}
	return prefix + string(out)
}

// transform applies action to word. It reports false when the key has
// nothing to act on and must be typed literally.
func transform(word []rune, action keymap.Action, style Style) ([]rune, bool) {
	switch action.Kind {
	case keymap.ClearAll:
		return compose.ClearAll(word)

	case keymap.ToneKind:
		idx := syllable.Locate(word, style)
		if idx < 0 {
			return word, false
		}
		if compose.ToneOf(word) == action.Tone {
			return compose.RemoveTone(word), true
		}
		return compose.ApplyTone(word, idx, action.Tone)

	case keymap.QualityKind:
		if action.HornsPair() {
			if i := syllable.HornPair(word); i >= 0 {
				if out, ok := compose.Horn(word, i); ok {
					if bare(word[i]) && bare(word[i+1]) {
						out = strokeInitial(out)
					}
					return compose.Relocate(out, style), true
				}
			}
		}
		idx := syllable.LocateQuality(word, syllable.Targets(action.Bases))
		if idx < 0 {
			return word, false
		}
		l := charset.Decompose(word[idx])
		q := action.Bases[unicode.ToLower(l.Base)]
		if l.Quality == q {
			q = charset.QualityNone
		}
		out, ok := compose.ApplyQuality(word, idx, q)
		if !ok {
			return word, false
		}
		return compose.Relocate(out, style), true
	}
	return word, false
}

func bare(r rune) bool {
	return charset.QualityOf(r) == charset.QualityNone
}

// strokeInitial turns a bare word-initial d into đ, so a freshly horned
// "duo" reads "đươ".
func strokeInitial(word []rune) []rune {
	if len(word) == 0 || unicode.ToLower(word[0]) != 'd' {
		return word
	}
	if d, ok := charset.WithQuality(word[0], charset.Stroke); ok {
		word[0] = d
	}
	return word
}

var defaultEngine, _ = New(DefaultConfig())

// Step applies key to buffer with an enabled TELEX engine.
func Step(buffer string, key rune) string {
	return defaultEngine.Step(buffer, key)
}

// ProcessWord converts a whole TELEX keystroke sequence.
func ProcessWord(word string) string {
	return defaultEngine.ProcessWord(word)
}
