// Copyright (C) 2024 M. Felian. All Rights Reserved.

package jval

import "fmt"

// Kind identifies the grammar expectation violated by a malformed input.
type Kind byte

// Constants defining the valid Kind values.
const (
	UnexpectedEndOfInput  Kind = iota // input ended inside a value
	ExpectedEndOfInput                // trailing content after the top-level value
	ExpectedObjectKey                 // a string key did not follow "{" or ","
	ExpectedToken                     // a required delimiter was missing
	UnexpectedToken                   // no value can begin at the current character
	ExpectedDigit                     // a digit was required by the number grammar
	ExpectedEscapeChar                // invalid character after "\" in a string
	ExpectedUnicodeEscape             // "\u" not followed by 4 hex digits
)

var kindStr = [...]string{
	UnexpectedEndOfInput:  "unexpected end of input",
	ExpectedEndOfInput:    "expected end of input",
	ExpectedObjectKey:     "expected object key",
	ExpectedToken:         "expected token",
	UnexpectedToken:       "unexpected token",
	ExpectedDigit:         "expected digit",
	ExpectedEscapeChar:    "expected escape char",
	ExpectedUnicodeEscape: "expected unicode escape",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("invalid kind %d", k)
	}
	return kindStr[k]
}

// A ParseError is the concrete type of all errors reported by Parse. It
// identifies the violated expectation and carries a human-readable
// diagnostic. No position information is recorded.
type ParseError struct {
	Kind Kind   // the expectation that was violated
	Msg  string // a description of the failure
}

func (e *ParseError) Error() string { return e.Kind.String() + ": " + e.Msg }

// parseErrorf constructs a *ParseError of the given kind.
func parseErrorf(kind Kind, msg string, args ...any) error {
	return &ParseError{Kind: kind, Msg: fmt.Sprintf(msg, args...)}
}
