// Package font recovers Unicode text from PDF simple-font character codes.
//
// A simple font addresses glyphs with single-byte codes; its /Encoding entry
// names a base encoding and may overlay per-code glyph-name overrides via a
// /Differences array. This package models that structure and resolves the
// glyph names to text through the glyphlist package.
//
// # Encodings
//
// Three builtin base encodings are provided, each a 256-slot glyph-name
// table per the PDF specification's Annex D:
//
//   - [StandardEncoding]
//   - [WinAnsiEncoding]
//   - [MacRomanEncoding]
//
// Custom encodings are derived with [Encoding.WithDifferences]:
//
//	enc := font.GetEncoding("WinAnsiEncoding").
//	    WithDifferences(map[byte]string{0x80: "Aringacute"})
//	text := enc.DecodeString(codes)
//
// # Glyph name resolution
//
// [GlyphToString] implements the Adobe Glyph List recovery algorithm:
// variant suffixes are stripped, underscore ligatures are split, and
// components resolve through the glyph list or the algorithmic uniXXXX and
// uXXXX name forms.
//
// # Text utilities
//
// Decoded text is normalized to NFC ([NormalizeUnicode]); [DecodeUTF16BE],
// [DecodeUTF16LE], and [DecodeTextString] handle UTF-16 material such as PDF
// text strings with byte order marks.
package font
