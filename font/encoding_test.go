package font

import (
	"testing"
)

// TestWinAnsiEncoding tests Windows CP1252 decoding through glyph names
func TestWinAnsiEncoding(t *testing.T) {
	enc := WinAnsiEncoding

	tests := []struct {
		name     string
		input    byte
		expected rune
	}{
		{"space", 0x20, ' '},
		{"uppercase A", 0x41, 'A'},
		{"lowercase a", 0x61, 'a'},
		{"euro sign", 0x80, '€'},
		{"smart quote left", 0x91, '‘'},
		{"smart quote right", 0x92, '’'},
		{"lowercase e-acute", 0xE9, 'é'},
		{"lowercase c-cedilla", 0xE7, 'ç'},
		{"uppercase A-grave", 0xC0, 'À'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enc.Decode(tt.input)
			if got != tt.expected {
				t.Errorf("WinAnsiEncoding.Decode(0x%02X) = U+%04X, want U+%04X", tt.input, got, tt.expected)
			}
		})
	}
}

// TestMacRomanEncoding tests Mac Roman decoding
func TestMacRomanEncoding(t *testing.T) {
	enc := MacRomanEncoding

	tests := []struct {
		name     string
		input    byte
		expected rune
	}{
		{"space", 0x20, ' '},
		{"uppercase A", 0x41, 'A'},
		{"A-umlaut", 0x80, 'Ä'},
		{"e-acute", 0x8E, 'é'},
		{"e-grave", 0x8F, 'è'},
		{"degrees", 0xA1, '°'},
		{"copyright", 0xA9, '©'},
		{"trademark", 0xAA, '™'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enc.Decode(tt.input)
			if got != tt.expected {
				t.Errorf("MacRomanEncoding.Decode(0x%02X) = U+%04X, want U+%04X", tt.input, got, tt.expected)
			}
		})
	}
}

// TestStandardEncoding tests Adobe standard encoding
func TestStandardEncoding(t *testing.T) {
	enc := StandardEncoding

	tests := []struct {
		name     string
		input    byte
		expected rune
	}{
		{"space", 0x20, ' '},
		{"apostrophe is quoteright", 0x27, '’'},
		{"grave is quoteleft", 0x60, '‘'},
		{"exclamation inverted", 0xA1, '¡'},
		{"fraction slash", 0xA4, '⁄'},
		{"fi ligature", 0xAE, 'ﬁ'},
		{"fl ligature", 0xAF, 'ﬂ'},
		{"emdash", 0xD0, '—'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enc.Decode(tt.input)
			if got != tt.expected {
				t.Errorf("StandardEncoding.Decode(0x%02X) = U+%04X, want U+%04X", tt.input, got, tt.expected)
			}
		})
	}
}

// TestDecodeFallback verifies unmapped codes fall back to the code itself
func TestDecodeFallback(t *testing.T) {
	// 0x7F has no glyph in any builtin encoding
	if got := WinAnsiEncoding.Decode(0x7F); got != 0x7F {
		t.Errorf("Decode(0x7F) = U+%04X, want U+007F", got)
	}
}

// TestGlyphName tests name lookup including the Differences overlay
func TestGlyphName(t *testing.T) {
	enc := WinAnsiEncoding.WithDifferences(map[byte]string{
		0x41: "Aringacute",
	})

	if got := enc.GlyphName(0x41); got != "Aringacute" {
		t.Errorf("GlyphName(0x41) = %q, want %q (differences take priority)", got, "Aringacute")
	}
	if got := enc.GlyphName(0x42); got != "B" {
		t.Errorf("GlyphName(0x42) = %q, want %q (base table)", got, "B")
	}
	// The original encoding is untouched
	if got := WinAnsiEncoding.GlyphName(0x41); got != "A" {
		t.Errorf("base encoding mutated: GlyphName(0x41) = %q", got)
	}
}

// TestDecodeString tests decoding byte sequences to strings
func TestDecodeString(t *testing.T) {
	tests := []struct {
		name     string
		encoding *Encoding
		input    []byte
		expected string
	}{
		{
			name:     "WinAnsi: Hello",
			encoding: WinAnsiEncoding,
			input:    []byte{0x48, 0x65, 0x6C, 0x6C, 0x6F},
			expected: "Hello",
		},
		{
			name:     "WinAnsi: café",
			encoding: WinAnsiEncoding,
			input:    []byte{0x63, 0x61, 0x66, 0xE9},
			expected: "café",
		},
		{
			name:     "MacRoman: naïve",
			encoding: MacRomanEncoding,
			input:    []byte{0x6E, 0x61, 0x95, 0x76, 0x65}, // 0x95 = idieresis
			expected: "naïve",
		},
		{
			name:     "Standard: fi ligature",
			encoding: StandardEncoding,
			input:    []byte{0xAE, 0x6E},
			expected: "ﬁn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.encoding.DecodeString(tt.input)
			if got != tt.expected {
				t.Errorf("DecodeString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestDecodeStringDiacritics verifies multi-code-point glyphs survive
// decoding and come out NFC-composed
func TestDecodeStringDiacritics(t *testing.T) {
	enc := WinAnsiEncoding.WithDifferences(map[byte]string{
		0x80: "Aringacute",
	})

	// A-ring + combining acute composes to U+01FA under NFC
	got := enc.DecodeString([]byte{0x80})
	if got != "Ǻ" {
		t.Errorf("DecodeString() = %q, want %q", got, "Ǻ")
	}
}

// TestGetEncoding tests the encoding lookup function
func TestGetEncoding(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		expected string
	}{
		{"WinAnsiEncoding", "WinAnsiEncoding", "WinAnsiEncoding"},
		{"MacRomanEncoding", "MacRomanEncoding", "MacRomanEncoding"},
		{"StandardEncoding", "StandardEncoding", "StandardEncoding"},
		{"Unknown defaults to WinAnsi", "UnknownEncoding", "WinAnsiEncoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := GetEncoding(tt.encoding)
			if enc.Name != tt.expected {
				t.Errorf("GetEncoding(%q).Name = %q, want %q", tt.encoding, enc.Name, tt.expected)
			}
		})
	}
}
