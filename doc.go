// Copyright (C) 2024 M. Felian. All Rights Reserved.

// Package jval implements a recursive-descent JSON parser that produces an
// in-memory tree of typed values.
//
// # Parsing
//
// Call Parse with the complete input text. It returns the single top-level
// value, or an error of concrete type *ParseError describing the first
// grammar violation encountered:
//
//	v, err := jval.Parse(`{"a": [1, 2, 3]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parse requires the whole input to be consumed: trailing non-whitespace
// content after a complete value is an error of kind ExpectedEndOfInput.
//
// # Values
//
// A parsed tree is made of the closed set of Value implementations:
//
//	JSON type  | Go type           | Payload
//	---------- | ----------------- | ---------------------------------
//	object     | Object            | map[string]Value (keys unordered)
//	array      | Array             | []Value (order preserved)
//	string     | String            | decoded text, escapes undone
//	number     | Number            | float64
//	true/false | Bool (True/False) | bool
//	null       | Null              | --
//
// A tree returned by Parse is never modified by the package afterward, and
// no mutation API is provided.
//
// Use As to narrow a generic Value to a concrete type, or Must when the
// shape has already been established by the caller:
//
//	obj, err := jval.As[jval.Object](v)    // fails with *TypeError
//	arr := jval.Must[jval.Array](obj["a"]) // panics on mismatch
//
// Must is intended for tests and for call sites that have already verified
// the shape of the value. Do not use it on untrusted data.
//
// # Errors
//
// Every *ParseError carries a Kind identifying the violated expectation and
// a human-readable diagnostic. No line or column information is reported.
package jval
