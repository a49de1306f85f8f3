package charset

import (
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		input rune
		want  Letter
	}{
		{"bare vowel", 'a', Letter{'a', QualityNone, ToneNone}},
		{"upper bare", 'E', Letter{'E', QualityNone, ToneNone}},
		{"acute", 'á', Letter{'a', QualityNone, ToneAcute}},
		{"circumflex acute", 'ấ', Letter{'a', Circumflex, ToneAcute}},
		{"breve dot", 'ặ', Letter{'a', Breve, ToneDot}},
		{"horn grave", 'ờ', Letter{'o', Horn, ToneGrave}},
		{"upper horn tilde", 'Ữ', Letter{'U', Horn, ToneTilde}},
		{"circumflex hook", 'ể', Letter{'e', Circumflex, ToneHook}},
		{"y dot", 'ỵ', Letter{'y', QualityNone, ToneDot}},
		{"stroke", 'đ', Letter{'d', Stroke, ToneNone}},
		{"upper stroke", 'Đ', Letter{'D', Stroke, ToneNone}},
		{"consonant", 'n', Letter{'n', QualityNone, ToneNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.input)
			if got != tt.want {
				t.Errorf("Decompose(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComposeRoundTrip(t *testing.T) {
	letters := []rune("aàáảãạăằắẳẵặâầấẩẫậeèéẻẽẹêềếểễệiìíỉĩịoòóỏõọôồốổỗộơờớởỡợuùúủũụưừứửữựyỳýỷỹỵđ")
	letters = append(letters, []rune("AÀÁẢÃẠĂẰẮẲẴẶÂẦẤẨẪẬEÈÉẺẼẸÊỀẾỂỄỆIÌÍỈĨỊOÒÓỎÕỌÔỒỐỔỖỘƠỜỚỞỠỢUÙÚỦŨỤƯỪỨỬỮỰYỲÝỶỸỴĐ")...)

	for _, r := range letters {
		got, ok := Compose(Decompose(r))
		if !ok || got != r {
			t.Errorf("Compose(Decompose(%q)) = %q, %v", r, got, ok)
		}
	}
}

func TestComposeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		letter Letter
	}{
		{"horn on e", Letter{'e', Horn, ToneNone}},
		{"breve on o", Letter{'o', Breve, ToneNone}},
		{"tone on consonant", Letter{'n', QualityNone, ToneAcute}},
		{"stroke on a", Letter{'a', Stroke, ToneNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Compose(tt.letter); ok {
				t.Errorf("Compose(%+v) should fail", tt.letter)
			}
		})
	}
}

func TestWithTonePreservesQuality(t *testing.T) {
	tones := []Tone{ToneAcute, ToneGrave, ToneHook, ToneTilde, ToneDot}
	bases := []rune{'â', 'ă', 'ê', 'ô', 'ơ', 'ư', 'Â', 'Ư'}

	for _, b := range bases {
		for _, t1 := range tones {
			for _, t2 := range tones {
				if t1 == t2 {
					continue
				}
				first, ok := WithTone(b, t1)
				if !ok {
					t.Fatalf("WithTone(%q, %v) failed", b, t1)
				}
				second, ok := WithTone(first, t2)
				if !ok {
					t.Fatalf("WithTone(%q, %v) failed", first, t2)
				}
				if QualityOf(second) != QualityOf(b) || Base(second) != Base(b) {
					t.Errorf("%q: %v then %v gave %q, quality lost", b, t1, t2, second)
				}
				if ToneOf(second) != t2 {
					t.Errorf("%q: tone = %v, want %v", second, ToneOf(second), t2)
				}
			}
		}
	}
}

func TestWithQuality(t *testing.T) {
	tests := []struct {
		input   rune
		quality Quality
		want    rune
	}{
		{'a', Circumflex, 'â'},
		{'A', Circumflex, 'Â'},
		{'á', Circumflex, 'ấ'},
		{'ấ', Breve, 'ắ'},
		{'ọ', Horn, 'ợ'},
		{'Ù', Horn, 'Ừ'},
		{'ơ', QualityNone, 'o'},
		{'ờ', QualityNone, 'ò'},
		{'d', Stroke, 'đ'},
		{'D', Stroke, 'Đ'},
		{'đ', QualityNone, 'd'},
	}

	for _, tt := range tests {
		got, ok := WithQuality(tt.input, tt.quality)
		if !ok || got != tt.want {
			t.Errorf("WithQuality(%q, %v) = %q, %v, want %q", tt.input, tt.quality, got, ok, tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		input     rune
		vowel     bool
		consonant bool
	}{
		{'a', true, false},
		{'Y', true, false},
		{'ự', true, false},
		{'Ễ', true, false},
		{'b', false, true},
		{'đ', false, true},
		{'W', false, true},
		{'1', false, false},
		{'\'', false, false},
		{'ä', false, false},
	}

	for _, tt := range tests {
		if got := IsVowel(tt.input); got != tt.vowel {
			t.Errorf("IsVowel(%q) = %v, want %v", tt.input, got, tt.vowel)
		}
		if got := IsConsonant(tt.input); got != tt.consonant {
			t.Errorf("IsConsonant(%q) = %v, want %v", tt.input, got, tt.consonant)
		}
	}
}

func TestToneMarks(t *testing.T) {
	want := map[Tone]rune{
		ToneAcute: '\u0301',
		ToneGrave: '\u0300',
		ToneHook:  '\u0309',
		ToneTilde: '\u0303',
		ToneDot:   '\u0323',
	}
	for tone, mark := range want {
		if tone.Mark() != mark {
			t.Errorf("%v.Mark() = %U, want %U", tone, tone.Mark(), mark)
		}
		if !IsToneMark(mark) {
			t.Errorf("IsToneMark(%U) = false", mark)
		}
	}
	if ToneNone.Mark() != 0 {
		t.Errorf("ToneNone.Mark() = %U, want 0", ToneNone.Mark())
	}
}

func BenchmarkDecompose(b *testing.B) {
	letters := []rune("việtnamđượcngười")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range letters {
			Decompose(r)
		}
	}
}
