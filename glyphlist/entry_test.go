package glyphlist

import (
	"strings"
	"testing"
)

// TestUnicodeString tests decoding entries to native strings
func TestUnicodeString(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		glyph string
		want  string
	}{
		{"single code", "Aacute 00C1", "Aacute", "Á"},
		{"symbol plus diacritic", "Aringacute 00C5 0301", "Aringacute", "\u00C5\u0301"},
		{"two diacritics", "shindageshshindot 05E9 05BC 05C1", "shindageshshindot", "\u05E9\u05BC\u05C1"},
		{"supplementary plane", "u1040C 1040C", "u1040C", "\U0001040C"},
		{"supplementary diacritic", "weird 0041 1D165", "weird", "A\U0001D165"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Parse(strings.NewReader(tt.line))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if got := list.Get(tt.glyph).UnicodeString(); got != tt.want {
				t.Errorf("UnicodeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDiacriticCodesCopy verifies callers cannot mutate table data
func TestDiacriticCodesCopy(t *testing.T) {
	list, err := Parse(strings.NewReader("Aringacute 00C5 0301"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	codes := list.Get("Aringacute").DiacriticCodes()
	codes[0] = 0xFFFD

	if got := list.Get("Aringacute").DiacriticCodes()[0]; got != 0x0301 {
		t.Errorf("table data mutated through DiacriticCodes(): got U+%04X", got)
	}
}
