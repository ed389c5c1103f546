// Package encoder percent-encodes raw URL lines for sitemap <loc> elements.
package encoder

import (
	"fmt"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// Mode selects how a raw line is turned into a sitemap location.
type Mode string

const (
	// ModeBytes encodes every byte outside the unreserved set, including
	// URL delimiters such as ':' and '/'.
	ModeBytes Mode = "bytes"
	// ModeStructural keeps the structure of absolute URLs intact.
	ModeStructural Mode = "structural"
)

// ParseMode converts a configuration value into a Mode. The empty string
// selects ModeBytes.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeBytes:
		return ModeBytes, nil
	case ModeStructural:
		return ModeStructural, nil
	default:
		return "", fmt.Errorf("unknown encoding mode %q (want %q or %q)", s, ModeBytes, ModeStructural)
	}
}

// Func returns the encoding function for the mode.
func (m Mode) Func() func(string) string {
	if m == ModeStructural {
		return EncodeStructural
	}
	return Encode
}

func (m Mode) String() string {
	return string(m)
}

// Encode percent-encodes s byte by byte. ASCII letters, digits and
// "-_.~" are copied; every other byte becomes '%' followed by two
// uppercase hex digits.
func Encode(s string) string {
	return escape(s, "")
}

// IsUnreserved reports whether c is copied unchanged by Encode.
func IsUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}

// escape encodes s like Encode, but also copies the bytes listed in keep.
// When keep contains '%', only well-formed %XX triplets are copied.
func escape(s, keep string) string {
	keepPct := strings.IndexByte(keep, '%') >= 0

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case IsUnreserved(c):
			b.WriteByte(c)
		case c == '%' && keepPct:
			if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
				b.WriteByte(c)
			} else {
				writeEscaped(&b, c)
			}
		case c != '%' && strings.IndexByte(keep, c) >= 0:
			b.WriteByte(c)
		default:
			writeEscaped(&b, c)
		}
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&0x0F])
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
