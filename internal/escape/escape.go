// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the \uXXXX escapes of JSON strings.
package escape

import (
	"fmt"

	"go4.org/mem"
)

// Surrogate ranges of UTF-16.
const (
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF
)

// ParseHex4 decodes exactly four hexadecimal digits from the front of data.
func ParseHex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, fmt.Errorf("want 4 hex digits, have %d bytes", data.Len())
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

// IsHighSurrogate reports whether r is the leading half of a surrogate pair.
func IsHighSurrogate(r rune) bool { return r >= HighSurrogateMin && r <= HighSurrogateMax }

// IsLowSurrogate reports whether r is the trailing half of a surrogate pair.
func IsLowSurrogate(r rune) bool { return r >= LowSurrogateMin && r <= LowSurrogateMax }

// Combine joins a high and low surrogate into a supplementary code point.
// The caller must ensure hi and lo are in range.
func Combine(hi, lo rune) rune {
	return 0x10000 + (hi-HighSurrogateMin)<<10 + (lo - LowSurrogateMin)
}

// EncodedLen reports the number of bytes in the UTF-8 encoding of r, which
// must be at most 0x10FFFF.
func EncodedLen(r rune) int {
	switch {
	case r <= 0x7F:
		return 1
	case r <= 0x7FF:
		return 2
	case r <= 0xFFFF:
		return 3
	default:
		return 4
	}
}

// EncodeRune writes the UTF-8 encoding of r into dst, which must have room
// for EncodedLen(r) bytes, and returns the number of bytes written.
//
// Unlike utf8.EncodeRune, surrogate code points are encoded as-is rather than
// replaced, since the caller has already rejected unpaired surrogates.
func EncodeRune(dst []byte, r rune) int {
	switch n := EncodedLen(r); n {
	case 1:
		dst[0] = byte(r)
		return 1
	case 2:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r&0x3F)
		return 2
	case 3:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte((r>>6)&0x3F)
		dst[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte((r>>12)&0x3F)
		dst[2] = 0x80 | byte((r>>6)&0x3F)
		dst[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}

// Control maps the character following a backslash to the byte it denotes,
// for the single-character escapes of JSON. It reports false for 'u' and for
// characters that are not valid escapes.
func Control(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}
