package font

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/glyphtext/stream"
)

// CMap is a ToUnicode character map: character codes to Unicode strings.
// It complements glyph-name resolution; composite fonts carry a CMap instead
// of per-code glyph names.
type CMap struct {
	// Single character mappings: charCode -> unicode string
	charMappings map[uint32]string

	// Range mappings for efficiency
	rangeMappings []CMapRange
}

// CMapRange represents a contiguous run of character codes mapped to
// consecutive Unicode values.
type CMapRange struct {
	StartCode    uint32
	EndCode      uint32
	StartUnicode uint32
}

// NewCMap creates a new empty CMap
func NewCMap() *CMap {
	return &CMap{
		charMappings: make(map[uint32]string),
	}
}

// ParseToUnicode parses ToUnicode CMap data (the decoded stream contents).
// Only the beginbfchar and beginbfrange sections carry mappings; the
// PostScript scaffolding around them is ignored.
func ParseToUnicode(data []byte) (*CMap, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty CMap data")
	}

	cmap := NewCMap()
	content := string(data)
	cmap.parseBfChar(content)
	cmap.parseBfRange(content)
	return cmap, nil
}

// ParseToUnicodeStream reads and parses a ToUnicode CMap from a seekable
// stream. The stream is not closed.
func ParseToUnicodeStream(s stream.Stream) (*CMap, error) {
	data, err := ReadProgram(s)
	if err != nil {
		return nil, fmt.Errorf("reading CMap: %w", err)
	}
	return ParseToUnicode(data)
}

// parseBfChar collects all beginbfchar/endbfchar sections.
// Entry format: <srcCode> <dstUnicode>
func (cm *CMap) parseBfChar(content string) {
	forEachSection(content, "beginbfchar", "endbfchar", func(section string) {
		for _, line := range strings.Split(section, "\n") {
			parts := strings.Fields(line)
			if len(parts) < 2 {
				continue
			}
			src, ok := parseHexToken(parts[0])
			if !ok {
				continue
			}
			if unicode, ok := hexTokenToString(parts[1]); ok {
				cm.charMappings[src] = unicode
			}
		}
	})
}

// parseBfRange collects all beginbfrange/endbfrange sections.
// Entry formats:
//
//	<start> <end> <dstStart>
//	<start> <end> [<u1> <u2> ...]
func (cm *CMap) parseBfRange(content string) {
	forEachSection(content, "beginbfrange", "endbfrange", func(section string) {
		lines := strings.Split(section, "\n")
		for i := 0; i < len(lines); i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}

			// Array form may continue onto following lines
			if strings.Contains(line, "[") {
				for !strings.Contains(line, "]") && i+1 < len(lines) {
					i++
					line += " " + strings.TrimSpace(lines[i])
				}
				cm.parseRangeArray(line)
				continue
			}

			parts := strings.Fields(line)
			if len(parts) < 3 {
				continue
			}
			start, ok1 := parseHexToken(parts[0])
			end, ok2 := parseHexToken(parts[1])
			dst, ok3 := parseHexToken(parts[2])
			if !ok1 || !ok2 || !ok3 || end < start {
				continue
			}
			cm.rangeMappings = append(cm.rangeMappings, CMapRange{
				StartCode:    start,
				EndCode:      end,
				StartUnicode: dst,
			})
		}
	})
}

// parseRangeArray handles <start> <end> [<u1> <u2> ...]: each code in the
// range maps to the corresponding array element.
func (cm *CMap) parseRangeArray(line string) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return
	}
	start, ok1 := parseHexToken(parts[0])
	end, ok2 := parseHexToken(parts[1])
	if !ok1 || !ok2 {
		return
	}

	lb := strings.Index(line, "[")
	rb := strings.Index(line, "]")
	if lb == -1 || rb == -1 || rb < lb {
		return
	}

	code := start
	for _, tok := range strings.Fields(line[lb+1 : rb]) {
		if code > end {
			break
		}
		if unicode, ok := hexTokenToString(tok); ok {
			cm.charMappings[code] = unicode
		}
		code++
	}
}

// Lookup returns the Unicode string for a character code, or "" if the code
// is unmapped; the caller decides on a fallback.
func (cm *CMap) Lookup(charCode uint32) string {
	if unicode, ok := cm.charMappings[charCode]; ok {
		return unicode
	}
	for _, r := range cm.rangeMappings {
		if charCode >= r.StartCode && charCode <= r.EndCode {
			return string(rune(r.StartUnicode + (charCode - r.StartCode)))
		}
	}
	return ""
}

// DecodeString decodes character-code bytes to NFC-normalized Unicode text.
// Two-byte codes are tried first (the common case for composite fonts), then
// single bytes; unmapped bytes pass through best-effort.
func (cm *CMap) DecodeString(data []byte) string {
	var sb strings.Builder
	i := 0
	for i < len(data) {
		if i+1 < len(data) {
			code := uint32(data[i])<<8 | uint32(data[i+1])
			if unicode := cm.Lookup(code); unicode != "" {
				sb.WriteString(unicode)
				i += 2
				continue
			}
		}
		if unicode := cm.Lookup(uint32(data[i])); unicode != "" {
			sb.WriteString(unicode)
		} else {
			sb.WriteRune(rune(data[i]))
		}
		i++
	}
	return NormalizeUnicode(sb.String())
}

// forEachSection invokes fn with the content of every begin/end section pair.
func forEachSection(content, begin, end string, fn func(section string)) {
	pos := 0
	for {
		b := strings.Index(content[pos:], begin)
		if b == -1 {
			return
		}
		b += pos + len(begin)
		e := strings.Index(content[b:], end)
		if e == -1 {
			return
		}
		fn(content[b : b+e])
		pos = b + e + len(end)
	}
}

// parseHexToken parses a <ABCD> hex token to its numeric value.
func parseHexToken(tok string) (uint32, bool) {
	h, ok := trimAngles(tok)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// hexTokenToString parses a <...> hex token to a Unicode string. Two or more
// bytes are UTF-16BE (the ToUnicode convention); one byte is a direct code.
func hexTokenToString(tok string) (string, bool) {
	h, ok := trimAngles(tok)
	if !ok {
		return "", false
	}
	if len(h)%2 != 0 {
		h = "0" + h
	}
	raw, err := hex.DecodeString(h)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	if len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF {
		raw = raw[2:]
	}
	if len(raw) == 1 {
		return string(rune(raw[0])), true
	}
	return DecodeUTF16BE(raw), true
}

// trimAngles strips the <> delimiters from a hex token.
func trimAngles(tok string) (string, bool) {
	tok = strings.TrimSpace(tok)
	if len(tok) < 2 || tok[0] != '<' || tok[len(tok)-1] != '>' {
		return "", false
	}
	return tok[1 : len(tok)-1], true
}
