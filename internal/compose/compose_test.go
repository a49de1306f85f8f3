package compose

import (
	"testing"

	"vinakey/internal/charset"
	"vinakey/internal/syllable"
)

func TestApplyTone(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		index int
		tone  charset.Tone
		want  string
	}{
		{"plain", "hoc", 1, charset.ToneDot, "học"},
		{"keeps quality", "viêt", 2, charset.ToneDot, "việt"},
		{"replaces tone", "tú", 1, charset.ToneGrave, "tù"},
		{"moves tone", "hòa", 2, charset.ToneGrave, "hoà"},
		{"upper", "VIÊT", 2, charset.ToneDot, "VIỆT"},
		{"out of range", "ba", 5, charset.ToneAcute, "ba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ApplyTone([]rune(tt.word), tt.index, tt.tone)
			if string(got) != tt.want {
				t.Errorf("ApplyTone(%q, %d, %v) = %q, want %q", tt.word, tt.index, tt.tone, string(got), tt.want)
			}
		})
	}
}

func TestApplyToneOnConsonant(t *testing.T) {
	if _, ok := ApplyTone([]rune("ba"), 0, charset.ToneAcute); ok {
		t.Error("a tone on a consonant should be rejected")
	}
}

func TestRemoveTone(t *testing.T) {
	word := []rune("người")
	got := RemoveTone(word)
	if string(got) != "ngươi" {
		t.Errorf("RemoveTone(người) = %q", string(got))
	}
	if string(word) != "người" {
		t.Error("RemoveTone modified its argument")
	}
	if HasTone(got) || !HasTone(word) {
		t.Error("HasTone disagrees with RemoveTone")
	}
	if ToneOf(word) != charset.ToneGrave {
		t.Errorf("ToneOf(người) = %v", ToneOf(word))
	}
}

func TestApplyQuality(t *testing.T) {
	tests := []struct {
		word  string
		index int
		q     charset.Quality
		want  string
	}{
		{"viẹt", 2, charset.Circumflex, "việt"},
		{"mùa", 1, charset.Horn, "mừa"},
		{"Dai", 0, charset.Stroke, "Đai"},
		{"hoa", 2, charset.Breve, "hoă"},
	}

	for _, tt := range tests {
		got, ok := ApplyQuality([]rune(tt.word), tt.index, tt.q)
		if !ok || string(got) != tt.want {
			t.Errorf("ApplyQuality(%q, %d, %v) = %q, %v, want %q", tt.word, tt.index, tt.q, string(got), ok, tt.want)
		}
	}

	got, ok := RemoveQuality([]rune("tấ"), 1)
	if !ok || string(got) != "tá" {
		t.Errorf("RemoveQuality(tấ) = %q, %v", string(got), ok)
	}
}

func TestHorn(t *testing.T) {
	tests := []struct {
		word string
		i    int
		want string
	}{
		{"thuong", 2, "thương"},
		{"Uo", 0, "Ươ"},
		{"UO", 0, "ƯƠ"},
		{"uô", 0, "ươ"},
		{"thuòng", 2, "thường"},
		{"ươ", 0, "uo"},
	}

	for _, tt := range tests {
		got, ok := Horn([]rune(tt.word), tt.i)
		if !ok || string(got) != tt.want {
			t.Errorf("Horn(%q, %d) = %q, %v, want %q", tt.word, tt.i, string(got), ok, tt.want)
		}
	}
}

func TestClearAll(t *testing.T) {
	got, changed := ClearAll([]rune("Đường"))
	if string(got) != "Duong" || !changed {
		t.Errorf("ClearAll(Đường) = %q, %v", string(got), changed)
	}
	got, changed = ClearAll([]rune("xy"))
	if string(got) != "xy" || changed {
		t.Errorf("ClearAll(xy) = %q, %v", string(got), changed)
	}
}

func TestRelocate(t *testing.T) {
	tests := []struct {
		word  string
		style syllable.Style
		want  string
	}{
		{"thừơng", syllable.Modern, "thường"},
		{"mừa", syllable.Modern, "mừa"},
		{"hòa", syllable.Modern, "hoà"},
		{"hòa", syllable.Classic, "hòa"},
		{"tuyệt", syllable.Modern, "tuyệt"},
		{"tuỵêt", syllable.Modern, "tuyệt"},
		{"ba", syllable.Modern, "ba"},
	}

	for _, tt := range tests {
		got := Relocate([]rune(tt.word), tt.style)
		if string(got) != tt.want {
			t.Errorf("Relocate(%q, %v) = %q, want %q", tt.word, tt.style, string(got), tt.want)
		}
	}
}
