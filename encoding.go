// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "go4.org/mem"

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unlike a lenient decoder, Unquote rejects invalid escapes and unpaired
// surrogates. Surrounding whitespace is permitted; any other text after the
// closing quotation mark is reported as RootNotSingular.
func Unquote(src string) ([]byte, error) { return unquote(mem.S(src)) }

// UnquoteBytes is as Unquote, but accepts its input as a byte slice.
func UnquoteBytes(src []byte) ([]byte, error) { return unquote(mem.B(src)) }

func unquote(src mem.RO) ([]byte, error) {
	var buf Buffer
	in := NewInput(src)
	in.SkipSpace()
	if in.AtEnd() {
		return nil, in.Fail(ExpectValue)
	}
	dec, err := in.ScanString(&buf)
	if err != nil {
		return nil, err
	}
	in.SkipSpace()
	if !in.AtEnd() {
		return nil, in.Fail(RootNotSingular)
	}
	return dec, nil
}
