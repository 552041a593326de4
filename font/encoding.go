package font

import "strings"

// Encoding maps single-byte character codes to glyph names: a base table of
// 256 slots plus an optional Differences overlay, the structure a PDF simple
// font's /Encoding entry describes. Unicode text is recovered by resolving
// the glyph names through the glyph list.
type Encoding struct {
	// Name is the encoding's PDF name (e.g. "WinAnsiEncoding").
	Name string

	base        *[256]string
	differences map[byte]string
}

// Builtin encodings.
var (
	StandardEncoding = &Encoding{Name: "StandardEncoding", base: &standardNames}
	WinAnsiEncoding  = &Encoding{Name: "WinAnsiEncoding", base: &winAnsiNames}
	MacRomanEncoding = &Encoding{Name: "MacRomanEncoding", base: &macRomanNames}
)

// GetEncoding returns the builtin encoding with the given PDF name. Unknown
// names fall back to WinAnsiEncoding, the most common default in practice.
func GetEncoding(name string) *Encoding {
	switch name {
	case "StandardEncoding":
		return StandardEncoding
	case "MacRomanEncoding":
		return MacRomanEncoding
	case "WinAnsiEncoding":
		return WinAnsiEncoding
	default:
		return WinAnsiEncoding
	}
}

// WithDifferences returns a copy of the encoding with the given overlay of
// code-to-glyph-name overrides, as produced by an /Encoding dictionary's
// /Differences array. The receiver is not modified.
func (e *Encoding) WithDifferences(diffs map[byte]string) *Encoding {
	out := &Encoding{Name: e.Name, base: e.base}
	if len(diffs) > 0 {
		out.differences = make(map[byte]string, len(diffs))
		for code, name := range diffs {
			out.differences[code] = name
		}
	}
	return out
}

// GlyphName returns the glyph name for a character code, or "" if the code
// has no glyph in this encoding. Differences take priority over the base
// table.
func (e *Encoding) GlyphName(code byte) string {
	if name, ok := e.differences[code]; ok {
		return name
	}
	if e.base != nil {
		return e.base[code]
	}
	return ""
}

// Decode returns the primary Unicode code point for a character code. If the
// code's glyph name cannot be resolved, the code itself is returned as a
// best-effort fallback, matching how unmapped bytes are surfaced elsewhere
// during extraction.
func (e *Encoding) Decode(code byte) rune {
	if s := GlyphToString(e.GlyphName(code)); s != "" {
		for _, r := range s {
			return r
		}
	}
	return rune(code)
}

// DecodeString decodes a string of character codes to Unicode text,
// including any combining diacritics the glyph names carry. The result is
// normalized to NFC so downstream comparison and search behave consistently.
func (e *Encoding) DecodeString(data []byte) string {
	var sb strings.Builder
	for _, code := range data {
		if s := GlyphToString(e.GlyphName(code)); s != "" {
			sb.WriteString(s)
		} else {
			sb.WriteRune(rune(code))
		}
	}
	return NormalizeUnicode(sb.String())
}
