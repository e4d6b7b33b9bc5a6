// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"math"
	"strconv"

	"github.com/creachadair/jvalue/internal/escape"
	"github.com/creachadair/jvalue/internal/scratch"
	"go4.org/mem"
)

// A Buffer is the scratch stack into which ScanString decodes string
// contents. The zero value is ready for use.
type Buffer = scratch.Buffer

// An Input is a cursor into JSON source text. Each Scan method recognizes a
// single lexical element at the cursor and advances past it, or reports a
// *SyntaxError. The source is not copied; it must not be modified while the
// Input is in use.
type Input struct {
	src mem.RO
	pos int
}

// NewInput constructs an Input positioned at the beginning of src.
func NewInput(src mem.RO) *Input { return &Input{src: src} }

// Pos reports the byte offset of the cursor.
func (in *Input) Pos() int { return in.pos }

// AtEnd reports whether the cursor has consumed the entire source.
func (in *Input) AtEnd() bool { return in.pos >= in.src.Len() }

// Peek returns the byte at the cursor without consuming it.
// It reports false at the end of the input.
func (in *Input) Peek() (byte, bool) {
	if in.AtEnd() {
		return 0, false
	}
	return in.src.At(in.pos), true
}

// Advance moves the cursor forward by n bytes, stopping at the end of input.
func (in *Input) Advance(n int) { in.pos = min(in.pos+n, in.src.Len()) }

// Fail returns a *SyntaxError for code at the current cursor position.
func (in *Input) Fail(code Code) *SyntaxError { return newSyntaxError(in.src, in.pos, code) }

func (in *Input) failAt(pos int, code Code) *SyntaxError { return newSyntaxError(in.src, pos, code) }

// at returns the byte at offset i of the source, or 0 past the end.
// The parser never treats NUL as significant, so 0 serves as a sentinel.
func (in *Input) at(i int) byte {
	if i < in.src.Len() {
		return in.src.At(i)
	}
	return 0
}

// SkipSpace consumes zero or more JSON whitespace characters.
func (in *Input) SkipSpace() {
	for in.pos < in.src.Len() && isSpace(in.src.At(in.pos)) {
		in.pos++
	}
}

// ScanLiteral consumes the keyword lit ("null", "true", or "false").
// If the input at the cursor does not spell lit, it reports InvalidValue.
func (in *Input) ScanLiteral(lit string) error {
	if !mem.HasPrefix(in.src.SliceFrom(in.pos), mem.S(lit)) {
		return in.Fail(InvalidValue)
	}
	in.pos += len(lit)
	return nil
}

// ScanNumber consumes a JSON number and returns its value.
//
// The grammar is checked before conversion: an optional minus sign, an
// integer part without redundant leading zeroes, an optional fraction and an
// optional exponent. A violation reports InvalidValue. A well-formed number
// whose magnitude does not fit in a float64 reports NumberTooBig; one that
// underflows converts to zero.
func (in *Input) ScanNumber() (float64, error) {
	start, p := in.pos, in.pos
	if in.at(p) == '-' {
		p++
	}

	// Integer part: a lone 0, or a nonzero digit followed by digits.
	switch c := in.at(p); {
	case c == '0':
		p++
		if isDigit(in.at(p)) {
			return 0, in.failAt(start, InvalidValue) // extra leading zeroes
		}
	case isDigit1to9(c):
		for p++; isDigit(in.at(p)); p++ {
		}
	default:
		return 0, in.failAt(start, InvalidValue)
	}

	if in.at(p) == '.' {
		p++
		if !isDigit(in.at(p)) {
			return 0, in.failAt(start, InvalidValue) // no digits after decimal point
		}
		for p++; isDigit(in.at(p)); p++ {
		}
	}

	if c := in.at(p); c == 'e' || c == 'E' {
		p++
		if c := in.at(p); c == '+' || c == '-' {
			p++
		}
		if !isDigit(in.at(p)) {
			return 0, in.failAt(start, InvalidValue) // missing exponent digits
		}
		for p++; isDigit(in.at(p)); p++ {
		}
	}

	v, err := mem.ParseFloat(in.src.Slice(start, p), 64)
	if math.IsInf(v, 0) {
		return 0, in.failAt(start, NumberTooBig)
	} else if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, in.failAt(start, InvalidValue)
	}
	in.pos = p
	return v, nil
}

// ScanString consumes a quoted JSON string, decoding its escapes into buf.
// On success, the decoded bytes are popped from buf and a copy is returned.
// On failure, buf is restored to its state before the call.
func (in *Input) ScanString(buf *Buffer) ([]byte, error) {
	if in.at(in.pos) != '"' {
		return nil, in.Fail(InvalidValue)
	}
	head := buf.Top()
	n, err := in.scanStringBody(buf)
	if err != nil {
		buf.Truncate(head)
		return nil, err
	}
	out := make([]byte, n)
	copy(out, buf.Pop(n))
	return out, nil
}

// scanStringBody pushes the decoded contents of the string whose opening
// quote is at the cursor onto buf, and reports the number of bytes pushed.
func (in *Input) scanStringBody(buf *Buffer) (int, error) {
	head := buf.Top()
	p := in.pos + 1
	for {
		// Copy a run of plain bytes in one push.
		q := p
		for q < in.src.Len() {
			if c := in.src.At(q); c == '"' || c == '\\' || c < ' ' {
				break
			}
			q++
		}
		if q > p {
			in.src.Slice(p, q).Copy(buf.Push(q - p))
			p = q
		}

		if p >= in.src.Len() {
			return 0, in.failAt(p, MissQuotationMark)
		}
		switch c := in.src.At(p); {
		case c == '"':
			in.pos = p + 1
			return buf.Top() - head, nil

		case c < ' ':
			return 0, in.failAt(p, InvalidStringChar)

		default: // c == '\\'
			esc := p
			p++
			if p >= in.src.Len() {
				return 0, in.failAt(p, MissQuotationMark)
			}
			if b, ok := escape.Control(in.src.At(p)); ok {
				buf.PushByte(b)
				p++
				continue
			} else if in.src.At(p) != 'u' {
				return 0, in.failAt(esc, InvalidStringEscape)
			}
			r, next, err := in.scanUnicode(esc)
			if err != nil {
				return 0, err
			}
			escape.EncodeRune(buf.Push(escape.EncodedLen(r)), r)
			p = next
		}
	}
}

// scanUnicode decodes the \uXXXX escape beginning at offset esc, together
// with its trailing low surrogate if the first unit is a high surrogate. It
// returns the decoded code point and the offset following the escape.
func (in *Input) scanUnicode(esc int) (rune, int, error) {
	r, err := escape.ParseHex4(in.src.SliceFrom(esc + 2))
	if err != nil {
		return 0, 0, in.failAt(esc, InvalidUnicodeHex)
	}
	p := esc + 6
	if escape.IsLowSurrogate(r) {
		return 0, 0, in.failAt(esc, InvalidUnicodeSurrogate)
	} else if !escape.IsHighSurrogate(r) {
		return r, p, nil
	}

	if in.at(p) != '\\' || in.at(p+1) != 'u' {
		return 0, 0, in.failAt(p, InvalidUnicodeSurrogate)
	}
	lo, err := escape.ParseHex4(in.src.SliceFrom(p + 2))
	if err != nil {
		return 0, 0, in.failAt(p, InvalidUnicodeHex)
	} else if !escape.IsLowSurrogate(lo) {
		return 0, 0, in.failAt(p, InvalidUnicodeSurrogate)
	}
	return escape.Combine(r, lo), p + 6, nil
}

func isSpace(c byte) bool     { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDigit(c byte) bool     { return '0' <= c && c <= '9' }
func isDigit1to9(c byte) bool { return '1' <= c && c <= '9' }
