package font

import (
	"testing"

	"github.com/tsawler/glyphtext/stream"
)

const bfCharCMap = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
4 beginbfchar
<0003> <0020>
<0004> <0041>
<0005> <0042>
<0006> <0043>
endbfchar
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`

func TestCMapBfChar(t *testing.T) {
	cmap, err := ParseToUnicode([]byte(bfCharCMap))
	if err != nil {
		t.Fatalf("ParseToUnicode returned error: %v", err)
	}

	tests := []struct {
		code     uint32
		expected string
	}{
		{0x0003, " "},
		{0x0004, "A"},
		{0x0005, "B"},
		{0x0006, "C"},
		{0x0007, ""}, // Not mapped, caller handles fallback
	}

	for _, tt := range tests {
		if got := cmap.Lookup(tt.code); got != tt.expected {
			t.Errorf("Lookup(%04X) = %q, want %q", tt.code, got, tt.expected)
		}
	}
}

func TestCMapBfRange(t *testing.T) {
	cmapData := `2 beginbfrange
<0020> <007E> <0020>
<00A0> <00A2> <00A0>
endbfrange
`

	cmap, err := ParseToUnicode([]byte(cmapData))
	if err != nil {
		t.Fatalf("ParseToUnicode returned error: %v", err)
	}

	tests := []struct {
		code     uint32
		expected string
	}{
		{0x0020, " "},                  // Start of range
		{0x0041, "A"},                  // Middle
		{0x007E, "~"},                  // End
		{0x00A0, string(rune(0x00A0))},
		{0x00A2, string(rune(0x00A2))},
		{0x00A3, ""}, // Past the end
	}

	for _, tt := range tests {
		if got := cmap.Lookup(tt.code); got != tt.expected {
			t.Errorf("Lookup(%04X) = %q, want %q", tt.code, got, tt.expected)
		}
	}
}

func TestCMapBfRangeArray(t *testing.T) {
	cmapData := `1 beginbfrange
<0010> <0013> [<0041> <0042> <0043> <0044>]
endbfrange
`

	cmap, err := ParseToUnicode([]byte(cmapData))
	if err != nil {
		t.Fatalf("ParseToUnicode returned error: %v", err)
	}

	for i, want := range []string{"A", "B", "C", "D"} {
		if got := cmap.Lookup(uint32(0x0010 + i)); got != want {
			t.Errorf("Lookup(%04X) = %q, want %q", 0x0010+i, got, want)
		}
	}
	if got := cmap.Lookup(0x0014); got != "" {
		t.Errorf("Lookup(0014) = %q, want \"\"", got)
	}
}

func TestCMapSurrogateTarget(t *testing.T) {
	// A bfchar target above the BMP arrives as a UTF-16BE surrogate pair
	cmapData := `1 beginbfchar
<0001> <D801DC0C>
endbfchar
`

	cmap, err := ParseToUnicode([]byte(cmapData))
	if err != nil {
		t.Fatalf("ParseToUnicode returned error: %v", err)
	}
	if got := cmap.Lookup(0x0001); got != "\U0001040C" {
		t.Errorf("Lookup(0001) = %q, want %q", got, "\U0001040C")
	}
}

func TestCMapDecodeString(t *testing.T) {
	cmap, err := ParseToUnicode([]byte(bfCharCMap))
	if err != nil {
		t.Fatalf("ParseToUnicode returned error: %v", err)
	}

	// Two-byte codes: 0004 0003 0005 -> "A B"
	got := cmap.DecodeString([]byte{0x00, 0x04, 0x00, 0x03, 0x00, 0x05})
	if got != "A B" {
		t.Errorf("DecodeString() = %q, want %q", got, "A B")
	}
}

func TestCMapEmptyData(t *testing.T) {
	if _, err := ParseToUnicode(nil); err == nil {
		t.Error("ParseToUnicode accepted empty data")
	}
}

func TestParseToUnicodeStream(t *testing.T) {
	cmap, err := ParseToUnicodeStream(stream.FromBytes([]byte(bfCharCMap)))
	if err != nil {
		t.Fatalf("ParseToUnicodeStream returned error: %v", err)
	}
	if got := cmap.Lookup(0x0004); got != "A" {
		t.Errorf("Lookup(0004) = %q, want %q", got, "A")
	}
}
