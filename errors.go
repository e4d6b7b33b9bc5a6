// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// A Code classifies the outcome of scanning or parsing JSON text.
// Every Code other than OK also satisfies the error interface, so a Code may
// be compared against the result of a parse with errors.Is:
//
//	if errors.Is(err, jvalue.NumberTooBig) { ... }
type Code byte

// Constants defining the valid Code values.
const (
	OK                       Code = iota // success
	ExpectValue                          // input is empty or all whitespace
	InvalidValue                         // malformed literal or number, or unexpected character
	RootNotSingular                      // non-whitespace follows the top-level value
	NumberTooBig                         // number magnitude overflows a float64
	MissQuotationMark                    // string not terminated before end of input
	InvalidStringEscape                  // unknown character after a backslash
	InvalidStringChar                    // unescaped control character in a string
	InvalidUnicodeHex                    // \u not followed by four hex digits
	InvalidUnicodeSurrogate              // unpaired or misordered UTF-16 surrogate
	MissCommaOrSquareBracket             // array element not followed by "," or "]"
	MissKey                              // object member does not begin with a string key
	MissColon                            // object key not followed by ":"
	MissCommaOrCurlyBracket              // object member not followed by "," or "}"
	NestingTooDeep                       // arrays and objects nested beyond the parser limit
	Unknown                              // an error not produced by this package
)

var codeStr = [...]string{
	OK:                       "ok",
	ExpectValue:              "expect value",
	InvalidValue:             "invalid value",
	RootNotSingular:          "root not singular",
	NumberTooBig:             "number too big",
	MissQuotationMark:        "missing quotation mark",
	InvalidStringEscape:      "invalid string escape",
	InvalidStringChar:        "invalid string char",
	InvalidUnicodeHex:        "invalid unicode hex",
	InvalidUnicodeSurrogate:  "invalid unicode surrogate",
	MissCommaOrSquareBracket: `missing "," or "]"`,
	MissKey:                  "missing key",
	MissColon:                `missing ":"`,
	MissCommaOrCurlyBracket:  `missing "," or "}"`,
	NestingTooDeep:           "nesting too deep",
	Unknown:                  "unknown error",
}

func (c Code) String() string {
	if int(c) >= len(codeStr) {
		return codeStr[Unknown]
	}
	return codeStr[c]
}

// Error satisfies the error interface.
func (c Code) Error() string { return c.String() }

// CodeOf reports the Code associated with err. It returns OK if err == nil,
// and Unknown if err does not wrap a Code.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Unknown
}

// SyntaxError is the concrete type of errors reported by the scanners and the
// parser. It unwraps to its Code.
type SyntaxError struct {
	Code     Code
	Offset   int // byte offset of the error in the input, 0-based
	Location LineCol
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Code)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.Code }

func newSyntaxError(src mem.RO, offset int, code Code) *SyntaxError {
	return &SyntaxError{
		Code:     code,
		Offset:   offset,
		Location: lineColAt(src, offset),
	}
}
