package keymap

import (
	"errors"
	"testing"

	"vinakey/internal/charset"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{"telex", Telex, false},
		{"TELEX", Telex, false},
		{" vni ", VNI, false},
		{"viqr", VIQR, false},
		{"viqr*", VIQRStar, false},
		{"viqrstar", VIQRStar, false},
		{"auto", Auto, false},
		{"off", Off, false},
		{"qwerty", Off, true},
		{"", Off, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMethod) {
					t.Errorf("ParseMethod(%q) error = %v, want ErrUnknownMethod", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseMethod(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestMethodString(t *testing.T) {
	for _, m := range Methods() {
		parsed, err := ParseMethod(m.String())
		if err != nil || parsed != m {
			t.Errorf("ParseMethod(%q) = %v, %v", m.String(), parsed, err)
		}
	}
	if Method(42).Valid() {
		t.Error("Method(42) should be invalid")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		key    rune
		kind   Kind
		tone   charset.Tone
	}{
		{"telex s", Telex, 's', ToneKind, charset.ToneAcute},
		{"telex upper S", Telex, 'S', ToneKind, charset.ToneAcute},
		{"telex j", Telex, 'j', ToneKind, charset.ToneDot},
		{"telex w", Telex, 'w', QualityKind, charset.ToneNone},
		{"telex z", Telex, 'z', ClearAll, charset.ToneNone},
		{"telex b", Telex, 'b', Literal, charset.ToneNone},
		{"telex digit", Telex, '1', Literal, charset.ToneNone},
		{"vni 1", VNI, '1', ToneKind, charset.ToneAcute},
		{"vni 5", VNI, '5', ToneKind, charset.ToneDot},
		{"vni 9", VNI, '9', QualityKind, charset.ToneNone},
		{"vni 0", VNI, '0', ClearAll, charset.ToneNone},
		{"vni s", VNI, 's', Literal, charset.ToneNone},
		{"viqr quote", VIQR, '\'', ToneKind, charset.ToneAcute},
		{"viqr question", VIQR, '?', ToneKind, charset.ToneHook},
		{"viqr plus", VIQR, '+', QualityKind, charset.ToneNone},
		{"viqr star", VIQR, '*', Literal, charset.ToneNone},
		{"viqr* star", VIQRStar, '*', QualityKind, charset.ToneNone},
		{"viqr* plus", VIQRStar, '+', Literal, charset.ToneNone},
		{"viqr dash", VIQR, '-', ClearAll, charset.ToneNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := For(tt.method)
			if !ok {
				t.Fatalf("For(%v) has no table", tt.method)
			}
			a := table.Lookup(tt.key)
			if a.Kind != tt.kind {
				t.Errorf("Lookup(%q).Kind = %v, want %v", tt.key, a.Kind, tt.kind)
			}
			if a.Tone != tt.tone {
				t.Errorf("Lookup(%q).Tone = %v, want %v", tt.key, a.Tone, tt.tone)
			}
		})
	}
}

func TestQualityTargets(t *testing.T) {
	telex, _ := For(Telex)

	w := telex.Lookup('w')
	for _, b := range []rune{'a', 'o', 'u', 'U'} {
		if !w.Targets(b) {
			t.Errorf("telex w should target %q", b)
		}
	}
	if w.Targets('e') {
		t.Error("telex w should not target e")
	}
	if w.Bases['a'] != charset.Breve || w.Bases['o'] != charset.Horn {
		t.Errorf("telex w bases = %v", w.Bases)
	}
	if !w.HornsPair() {
		t.Error("telex w should horn the u-o pair")
	}
	if vni, _ := For(VNI); !vni.Lookup('7').HornsPair() || vni.Lookup('6').HornsPair() {
		t.Error("vni 7 horns the u-o pair, 6 does not")
	}

	a := telex.Lookup('a')
	if !a.Targets('a') || a.Targets('e') {
		t.Error("telex a should only target a")
	}
}

func TestNoTableForOffAndAuto(t *testing.T) {
	for _, m := range []Method{Off, Auto} {
		if _, ok := For(m); ok {
			t.Errorf("For(%v) should have no table", m)
		}
	}
}

func TestBindingsSorted(t *testing.T) {
	table, _ := For(VNI)
	b := table.Bindings()
	if len(b) != 10 {
		t.Fatalf("VNI has %d bindings, want 10", len(b))
	}
	for i := 1; i < len(b); i++ {
		if b[i-1].Key >= b[i].Key {
			t.Errorf("bindings out of order at %d: %q >= %q", i, b[i-1].Key, b[i].Key)
		}
	}
	if b[0].Key != '0' || b[0].Action.Describe() != "remove all marks" {
		t.Errorf("first binding = %q %s", b[0].Key, b[0].Action.Describe())
	}
}
