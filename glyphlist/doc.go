// Package glyphlist resolves PostScript glyph names to Unicode using the
// Adobe Glyph List (AGL).
//
// PDF simple fonts frequently identify characters by glyph name ("Aacute",
// "ampersand") rather than by Unicode value. The AGL is the standard table
// for recovering text from those names when the font carries no ToUnicode
// mapping of its own.
//
// # Usage
//
// The common path is the package-level API, backed by a table built from an
// embedded copy of the list on first use:
//
//	u := glyphlist.Get("Aacute")
//	if !u.IsEmpty() {
//	    text := u.UnicodeString() // "Á"
//	}
//
// An entry carries a primary symbol code plus zero or more combining
// diacritic codes, because some glyph names decompose to multi-code-point
// sequences:
//
//	u := glyphlist.Get("Aringacute")
//	u.SymbolCode()      // U+00C5
//	u.DiacriticCodes()  // [U+0301]
//
// # Custom tables
//
// [Parse] builds a [List] from any reader using the same line format as the
// bundled file, which is useful for tests and for alternative glyph lists:
//
//	list, err := glyphlist.Parse(strings.NewReader("Aacute 00C1\n"))
//
// # Error handling
//
// Lookup misses are expected and are not errors: [List.Get] returns the
// shared empty entry (symbol code [NoMapping]). Build failures degrade to an
// empty or partial table rather than failing the process. Diagnostics are
// silent unless a logger is installed with [SetLogger].
package glyphlist
