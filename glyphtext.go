// Package glyphtext recovers Unicode text from PostScript glyph names, the
// identifiers PDF and Type 1 fonts use when they carry no explicit Unicode
// mapping.
//
// Basic usage:
//
//	u := glyphtext.Lookup("Aacute")
//	if !u.IsEmpty() {
//	    fmt.Println(u.UnicodeString()) // "Á"
//	}
//
// Whole name sequences decode in one call, with ligatures, uniXXXX names,
// and variant suffixes handled:
//
//	text := glyphtext.DecodeGlyphs("f_i", "uni006E", "Aringacute") // "finǺ"
//
// For lower-level control the glyphlist, font, and stream packages are also
// available.
package glyphtext

import (
	"strings"

	"github.com/tsawler/glyphtext/font"
	"github.com/tsawler/glyphtext/glyphlist"
)

// Lookup resolves a glyph name against the Adobe Glyph List. A miss returns
// the empty entry, never an error.
func Lookup(name string) glyphlist.AGLUnicode {
	return glyphlist.Get(name)
}

// Has reports whether the Adobe Glyph List contains the given glyph name.
func Has(name string) bool {
	return glyphlist.Contains(name)
}

// DecodeGlyphs decodes a sequence of glyph names to NFC-normalized text.
// Names with no recoverable text contribute nothing to the result.
func DecodeGlyphs(names ...string) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(font.GlyphToString(name))
	}
	return font.NormalizeUnicode(sb.String())
}
