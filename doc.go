// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements the lexical layer of a strict JSON parser.
//
// # Scanning
//
// The Input type is a cursor into JSON source text. Construct an input from
// a mem.RO view of the source and call its Scan methods to recognize one
// lexical element at a time:
//
//	in := jvalue.NewInput(mem.S(`-1.5e3`))
//	v, err := in.ScanNumber()
//
// Scanners either consume exactly the element they recognize, or report an
// error of concrete type *jvalue.SyntaxError and leave the cursor in place.
// String scanning decodes escapes into a caller-provided Buffer, which
// is restored to its prior state if the string is malformed.
//
// # Errors
//
// Each failure is classified by a Code. A *SyntaxError unwraps to its Code, so
// callers may test for a specific failure with errors.Is:
//
//	if errors.Is(err, jvalue.MissQuotationMark) {
//	   log.Print("Unterminated string")
//	}
//
// Use CodeOf to recover the Code from an arbitrary error.
//
// # Values
//
// The ast subpackage defines the value tree and the recursive-descent parser
// built on these scanners:
//
//	v, err := ast.Parse(`[12, 22, false, "hello"]`)
//
// The grammar is strict RFC 8259 JSON: comments, trailing commas, and other
// extensions are rejected.
package jvalue
