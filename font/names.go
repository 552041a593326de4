package font

import (
	"strings"

	"github.com/tsawler/glyphtext/glyphlist"
)

// GlyphToString resolves a PostScript glyph name to its Unicode text using
// the Adobe Glyph List recovery algorithm:
//
//  1. Anything after the first period is a variant suffix and is dropped
//     ("f.alternate" resolves as "f").
//  2. The remainder is split on underscores into ligature components
//     ("f_f_l" resolves as "ffl").
//  3. Each component is looked up in the glyph list; failing that, "uniXXXX"
//     names (one or more 4-digit uppercase hex groups) and "uXXXX" names
//     (4 to 6 hex digits) are decoded directly.
//
// Returns "" if the name carries no recoverable text (e.g. ".notdef").
func GlyphToString(name string) string {
	if name == "" {
		return ""
	}
	if i := strings.IndexByte(name, '.'); i == 0 {
		// Names like ".notdef" have no text content
		return ""
	} else if i > 0 {
		name = name[:i]
	}

	if strings.ContainsRune(name, '_') {
		var sb strings.Builder
		for _, part := range strings.Split(name, "_") {
			sb.WriteString(resolveComponent(part))
		}
		return sb.String()
	}

	return resolveComponent(name)
}

// resolveComponent resolves a single glyph name with no suffix or ligature
// structure.
func resolveComponent(name string) string {
	if u := glyphlist.Get(name); !u.IsEmpty() {
		return u.UnicodeString()
	}
	if strings.HasPrefix(name, "uni") {
		return decodeUniName(name[3:])
	}
	if strings.HasPrefix(name, "u") {
		return decodeUName(name[1:])
	}
	return ""
}

// decodeUniName decodes the hex part of a uniXXXX name: one or more 4-digit
// groups, each a UTF-16 code unit. Surrogate values are not valid scalar
// values and make the whole name unrecoverable.
func decodeUniName(hex string) string {
	if len(hex) == 0 || len(hex)%4 != 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < len(hex); i += 4 {
		r, ok := parseHexRune(hex[i : i+4])
		if !ok || isSurrogate(r) {
			return ""
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// decodeUName decodes the hex part of a uXXXX name: 4 to 6 digits, one
// scalar value.
func decodeUName(hex string) string {
	if len(hex) < 4 || len(hex) > 6 {
		return ""
	}
	r, ok := parseHexRune(hex)
	if !ok || isSurrogate(r) || r > 0x10FFFF {
		return ""
	}
	return string(r)
}

// parseHexRune parses uppercase hex digits only, per the AGL specification;
// "uni20ac" is not a valid uni name.
func parseHexRune(s string) (rune, bool) {
	var v rune
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | rune(c-'0')
		case c >= 'A' && c <= 'F':
			v = v<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}
	return v, true
}

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}
