package font

import (
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode normalizes decoded text to NFC. PDF text arrives in
// whatever composition the producing application used; normalizing makes
// extracted text consistent for comparison, search, and embeddings.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// DecodeUTF16BE decodes big-endian UTF-16 bytes to a string. Surrogate pairs
// are combined; unpaired surrogates become U+FFFD. A trailing odd byte is
// ignored.
func DecodeUTF16BE(data []byte) string {
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, uint16(data[i])<<8|uint16(data[i+1]))
	}
	return string(utf16.Decode(units))
}

// DecodeUTF16LE decodes little-endian UTF-16 bytes to a string.
func DecodeUTF16LE(data []byte) string {
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, uint16(data[i+1])<<8|uint16(data[i]))
	}
	return string(utf16.Decode(units))
}

// DecodeTextString decodes a PDF text string: UTF-16 if it starts with a
// byte order mark, raw bytes otherwise. The result is NFC-normalized.
func DecodeTextString(data []byte) string {
	if len(data) >= 2 {
		if data[0] == 0xFE && data[1] == 0xFF {
			return NormalizeUnicode(DecodeUTF16BE(data[2:]))
		}
		if data[0] == 0xFF && data[1] == 0xFE {
			return NormalizeUnicode(DecodeUTF16LE(data[2:]))
		}
	}
	return NormalizeUnicode(string(data))
}
