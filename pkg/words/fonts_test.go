package words

import (
	"testing"
	"unicode/utf8"
)

func TestFontConvert(t *testing.T) {
	if got := SerifBold.Convert('A'); got != '𝐀' {
		t.Errorf("SerifBold.Convert('A') = %q", got)
	}
	// Characters outside the font pass through unchanged.
	if got := SerifBold.Convert('!'); got != '!' {
		t.Errorf("SerifBold.Convert('!') = %q", got)
	}
}

func TestFontApply(t *testing.T) {
	tests := []struct {
		name string
		font Font
		in   string
		want string
	}{
		{"serif bold", SerifBold, "Abc 123", "𝐀𝐛𝐜 𝟏𝟐𝟑"},
		{"monospace", Monospace, "go2", "𝚐𝚘𝟸"},
		{"doublestruck", Doublestruck, "NZQR", "ℕℤℚℝ"},
		{"script", Script, "Be", "ℬℯ"},
		{"fraktur", Fraktur, "CHIRZ", "ℭℌℑℜℨ"},
		{"italic planck h", SerifItalic, "h", "ℎ"},
		{"greek bold", SerifBold, "απ", "𝛂𝛑"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.font.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFontTablesComplete(t *testing.T) {
	// Every prebuilt font must cover all 52 ASCII letters.
	fonts := map[string]Font{
		"SerifBold":           SerifBold,
		"SerifItalic":         SerifItalic,
		"SerifBoldItalic":     SerifBoldItalic,
		"SansSerif":           SansSerif,
		"SansSerifBold":       SansSerifBold,
		"SansSerifItalic":     SansSerifItalic,
		"SansSerifBoldItalic": SansSerifBoldItalic,
		"Script":              Script,
		"Fraktur":             Fraktur,
		"Monospace":           Monospace,
		"Doublestruck":        Doublestruck,
	}

	for name, font := range fonts {
		t.Run(name, func(t *testing.T) {
			for _, r := range ASCIIUppercase + ASCIILowercase {
				styled, ok := font[r]
				if !ok {
					t.Fatalf("%s missing mapping for %q", name, r)
				}
				if !utf8.ValidRune(styled) {
					t.Fatalf("%s maps %q to invalid rune", name, r)
				}
			}
		})
	}
}

func TestWordList(t *testing.T) {
	all := List(0, -1)
	if len(all) == 0 {
		t.Fatal("embedded word list is empty")
	}

	short := List(0, 3)
	for _, w := range short {
		if len(w) > 3 {
			t.Errorf("List(0, 3) returned %q", w)
		}
	}

	long := List(8, -1)
	for _, w := range long {
		if len(w) < 8 {
			t.Errorf("List(8, -1) returned %q", w)
		}
	}
}

func TestRandom(t *testing.T) {
	w := Random(4, 6)
	if len(w) < 4 || len(w) > 6 {
		t.Errorf("Random(4, 6) = %q", w)
	}

	// Impossible bounds yield the empty string rather than panicking.
	if got := Random(100, -1); got != "" {
		t.Errorf("Random(100, -1) = %q, want empty", got)
	}
}
