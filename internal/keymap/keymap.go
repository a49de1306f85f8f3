// Package keymap holds the key binding tables of the supported input methods.
package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"vinakey/internal/charset"
)

// ErrUnknownMethod is returned when a method name or value is not recognised.
var ErrUnknownMethod = errors.New("unknown input method")

// Method selects an input method.
type Method int32

const (
	Off Method = iota
	Auto
	Telex
	VNI
	VIQR
	VIQRStar
)

var methodNames = [...]string{"off", "auto", "telex", "vni", "viqr", "viqr*"}

func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int32(m))
	}
	return methodNames[m]
}

// Valid reports whether m is one of the defined methods.
func (m Method) Valid() bool {
	return m >= Off && int(m) < len(methodNames)
}

// ParseMethod maps a case-insensitive method name to its value. "viqrstar" is
// accepted as an alias of "viqr*".
func ParseMethod(name string) (Method, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "viqrstar" || n == "viqr-star" {
		return VIQRStar, nil
	}
	for i, s := range methodNames {
		if s == n {
			return Method(i), nil
		}
	}
	return Off, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Methods returns every method in declaration order.
func Methods() []Method {
	out := make([]Method, len(methodNames))
	for i := range out {
		out[i] = Method(i)
	}
	return out
}

// AutoOrder is the order in which AUTO tries the concrete methods.
var AutoOrder = []Method{Telex, VNI, VIQR, VIQRStar}

// Kind discriminates the variants of Action.
type Kind int

const (
	Literal Kind = iota
	ToneKind
	QualityKind
	ClearAll
)

// Action is what a key does under a method. Tone is set for ToneKind, Bases
// for QualityKind; Bases maps a lowercase base letter to the quality the key
// puts on it.
type Action struct {
	Kind  Kind
	Tone  charset.Tone
	Bases map[rune]charset.Quality
}

// Targets reports whether the action can put a quality on base letter b.
func (a Action) Targets(b rune) bool {
	_, ok := a.Bases[unicode.ToLower(b)]
	return ok
}

// HornsPair reports whether the action horns both u and o, and so can turn a
// bare "uo" into "ươ" in one press.
func (a Action) HornsPair() bool {
	return a.Bases['u'] == charset.Horn && a.Bases['o'] == charset.Horn
}

// Describe renders the action for display.
func (a Action) Describe() string {
	switch a.Kind {
	case ToneKind:
		return "tone " + a.Tone.String()
	case QualityKind:
		keys := make([]rune, 0, len(a.Bases))
		for b := range a.Bases {
			keys = append(keys, b)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		parts := make([]string, len(keys))
		for i, b := range keys {
			parts[i] = fmt.Sprintf("%s on %c", a.Bases[b], b)
		}
		return strings.Join(parts, ", ")
	case ClearAll:
		return "remove all marks"
	}
	return "literal"
}

// Table is the immutable binding table of one method.
type Table struct {
	method  Method
	actions map[rune]Action
}

// Method returns the method the table belongs to.
func (t *Table) Method() Method {
	return t.method
}

// Lookup returns the action bound to key. Letter keys match regardless of
// case; unbound keys are literal.
func (t *Table) Lookup(key rune) Action {
	if a, ok := t.actions[unicode.ToLower(key)]; ok {
		return a
	}
	return Action{Kind: Literal}
}

// Binding is one row of a table, for display.
type Binding struct {
	Key    rune
	Action Action
}

// Bindings lists the bound keys in code point order.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, 0, len(t.actions))
	for k, a := range t.actions {
		out = append(out, Binding{Key: k, Action: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// For returns the table of a concrete method. Off and Auto have none.
func For(m Method) (*Table, bool) {
	t, ok := tables[m]
	return t, ok
}

func tone(t charset.Tone) Action {
	return Action{Kind: ToneKind, Tone: t}
}

func quality(bases map[rune]charset.Quality) Action {
	return Action{Kind: QualityKind, Bases: bases}
}

var (
	circumflexAEO = map[rune]charset.Quality{'a': charset.Circumflex, 'e': charset.Circumflex, 'o': charset.Circumflex}
	hornOU        = map[rune]charset.Quality{'o': charset.Horn, 'u': charset.Horn}
	breveA        = map[rune]charset.Quality{'a': charset.Breve}
	strokeD       = map[rune]charset.Quality{'d': charset.Stroke}
)

var tables = map[Method]*Table{
	Telex: {method: Telex, actions: map[rune]Action{
		's': tone(charset.ToneAcute),
		'f': tone(charset.ToneGrave),
		'r': tone(charset.ToneHook),
		'x': tone(charset.ToneTilde),
		'j': tone(charset.ToneDot),
		'a': quality(map[rune]charset.Quality{'a': charset.Circumflex}),
		'e': quality(map[rune]charset.Quality{'e': charset.Circumflex}),
		'o': quality(map[rune]charset.Quality{'o': charset.Circumflex}),
		'w': quality(map[rune]charset.Quality{'a': charset.Breve, 'o': charset.Horn, 'u': charset.Horn}),
		'd': quality(strokeD),
		'z': {Kind: ClearAll},
	}},
	VNI: {method: VNI, actions: map[rune]Action{
		'1': tone(charset.ToneAcute),
		'2': tone(charset.ToneGrave),
		'3': tone(charset.ToneHook),
		'4': tone(charset.ToneTilde),
		'5': tone(charset.ToneDot),
		'6': quality(circumflexAEO),
		'7': quality(hornOU),
		'8': quality(breveA),
		'9': quality(strokeD),
		'0': {Kind: ClearAll},
	}},
	VIQR:     viqr(VIQR, '+'),
	VIQRStar: viqr(VIQRStar, '*'),
}

func viqr(m Method, hornKey rune) *Table {
	return &Table{method: m, actions: map[rune]Action{
		'\'':    tone(charset.ToneAcute),
		'`':     tone(charset.ToneGrave),
		'?':     tone(charset.ToneHook),
		'~':     tone(charset.ToneTilde),
		'.':     tone(charset.ToneDot),
		'^':     quality(circumflexAEO),
		hornKey: quality(hornOU),
		'(':     quality(breveA),
		'd':     quality(strokeD),
		'-':     {Kind: ClearAll},
	}}
}

// UsesEscape reports whether the method lets a backslash escape the next key.
func UsesEscape(m Method) bool {
	return m == VIQR || m == VIQRStar
}
