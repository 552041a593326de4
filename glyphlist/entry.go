package glyphlist

import "strings"

// NoMapping is the symbol code of the shared empty entry, returned when a
// glyph name has no Adobe Glyph List mapping.
const NoMapping rune = -1

// AGLUnicode is the value a glyph name resolves to: a primary Unicode code
// point plus zero or more combining diacritic code points applied in order.
// Values are immutable once created.
type AGLUnicode struct {
	symbolCode     rune
	diacriticCodes []rune
}

// empty is the single shared "no mapping" sentinel.
// Invariant: a NoMapping symbol code never carries diacritics.
var empty = AGLUnicode{symbolCode: NoMapping}

// newEntry builds an entry for the parser. The diacritics slice is owned by
// the table after this call.
func newEntry(symbol rune, diacritics []rune) AGLUnicode {
	return AGLUnicode{symbolCode: symbol, diacriticCodes: diacritics}
}

// SymbolCode returns the primary Unicode code point, or NoMapping for the
// empty entry.
func (u AGLUnicode) SymbolCode() rune {
	return u.symbolCode
}

// DiacriticCodes returns the combining diacritic code points in rendering
// order. The returned slice is a copy; mutating it does not affect the table.
func (u AGLUnicode) DiacriticCodes() []rune {
	if len(u.diacriticCodes) == 0 {
		return nil
	}
	out := make([]rune, len(u.diacriticCodes))
	copy(out, u.diacriticCodes)
	return out
}

// HasDiacritic reports whether this entry carries combining diacritics.
func (u AGLUnicode) HasDiacritic() bool {
	return len(u.diacriticCodes) != 0
}

// IsEmpty reports whether this is the "no mapping" sentinel.
func (u AGLUnicode) IsEmpty() bool {
	return u.symbolCode == NoMapping
}

// UnicodeString returns the entry decoded to a string: the symbol code
// followed by each diacritic code, in order. Code points above U+FFFF are
// encoded the same way any Go string encodes them (multi-byte UTF-8, the
// analog of a surrogate pair in UTF-16 systems). The empty entry decodes to
// the empty string.
func (u AGLUnicode) UnicodeString() string {
	if u.symbolCode == NoMapping {
		return ""
	}
	var sb strings.Builder
	sb.WriteRune(u.symbolCode)
	for _, d := range u.diacriticCodes {
		sb.WriteRune(d)
	}
	return sb.String()
}
