package vinakey

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"vinakey/internal/keymap"
)

// Session keeps a pre-edit word for a caller that types one key at a time.
// Keys that cannot belong to a word under the active method commit the
// pre-edit. A Session is not safe for concurrent use; the Engine behind it is.
type Session struct {
	engine  *Engine
	preedit string
	text    []rune
}

// NewSession returns an empty Session driven by e.
func NewSession(e *Engine) *Session {
	return &Session{engine: e, text: make([]rune, 0, 64)}
}

// Feed types key and returns the pre-edit that follows it.
func (s *Session) Feed(key rune) string {
	if s.breaks(key) {
		s.text = append(s.text, []rune(s.preedit)...)
		s.text = append(s.text, key)
		s.preedit = ""
		return ""
	}
	s.preedit = s.engine.Step(s.preedit, key)
	return s.preedit
}

// FeedString types every rune of keys and returns the pre-edit.
func (s *Session) FeedString(keys string) string {
	for _, k := range keys {
		s.Feed(k)
	}
	return s.preedit
}

// breaks reports whether key ends the current word.
func (s *Session) breaks(key rune) bool {
	if unicode.IsLetter(key) {
		return false
	}
	m := s.engine.Method()
	if !s.engine.Enabled() || m == Off {
		return true
	}
	methods := []Method{m}
	if m == Auto {
		methods = keymap.AutoOrder
	}
	for _, mm := range methods {
		if key == '\\' && keymap.UsesEscape(mm) {
			return false
		}
		if t, ok := keymap.For(mm); ok && t.Lookup(key).Kind != keymap.Literal {
			return false
		}
	}
	return true
}

// Backspace deletes the last rune of the pre-edit, or of the committed text
// when the pre-edit is empty. It returns the new pre-edit and whether
// anything was deleted.
func (s *Session) Backspace() (string, bool) {
	if s.preedit != "" {
		_, size := utf8.DecodeLastRuneInString(s.preedit)
		s.preedit = s.preedit[:len(s.preedit)-size]
		return s.preedit, true
	}
	if len(s.text) > 0 {
		s.text = s.text[:len(s.text)-1]
		return "", true
	}
	return "", false
}

// Preedit returns the word being composed.
func (s *Session) Preedit() string {
	return s.preedit
}

// Text returns the committed text, without the pre-edit.
func (s *Session) Text() string {
	return string(s.text)
}

// Commit returns the committed text followed by the pre-edit and empties the
// session.
func (s *Session) Commit() string {
	var b strings.Builder
	b.WriteString(string(s.text))
	b.WriteString(s.preedit)
	s.Reset()
	return b.String()
}

// Reset drops the pre-edit and the committed text.
func (s *Session) Reset() {
	s.preedit = ""
	s.text = s.text[:0]
}
