package font

import "testing"

// TestGlyphToString tests the AGL text-recovery algorithm
func TestGlyphToString(t *testing.T) {
	tests := []struct {
		name  string
		glyph string
		want  string
	}{
		{"plain letter", "A", "A"},
		{"named glyph", "space", " "},
		{"accented glyph", "Lcommaaccent", "Ļ"},
		{"decomposed glyph", "Aringacute", "Ǻ"},
		{"uni single", "uni013B", "Ļ"},
		{"uni multiple groups", "uni20AC0308", "\u20AC\u0308"},
		{"uni lowercase hex rejected", "uni20ac", ""},
		{"uni surrogate pair rejected", "uniD801DC0C", ""},
		{"uni wrong length", "uni13B", ""},
		{"u four digits", "u013B", "Ļ"},
		{"u five digits", "u1040C", "\U0001040C"},
		{"u too long", "u0001040C", ""},
		{"variant suffix stripped", "f.alternate", "f"},
		{"notdef", ".notdef", ""},
		{"ligature components", "f_f_l", "ffl"},
		{"mixed ligature", "Lcommaaccent_uni20AC0308_u1040C.alternate", "\u013B\u20AC\u0308\U0001040C"},
		{"unknown name", "foo", ""},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlyphToString(tt.glyph); got != tt.want {
				t.Errorf("GlyphToString(%q) = %q, want %q", tt.glyph, got, tt.want)
			}
		})
	}
}
