// Copyright (C) 2024 M. Felian. All Rights Reserved.

package jval

import (
	"errors"
	"strconv"

	"github.com/mfelian/jval/internal/escape"

	"go4.org/mem"
)

// Parse parses text as a single JSON value and returns the resulting tree.
// The whole input must be consumed: content other than whitespace remaining
// after the value is an error of kind ExpectedEndOfInput. All errors have
// concrete type *ParseError.
func Parse(text string) (Value, error) {
	c := newCursor(text)
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	c.skipSpace()
	if c.more() {
		return nil, parseErrorf(ExpectedEndOfInput, "trailing %q after value", c.window(10))
	}
	return v, nil
}

// parseValue parses the next value from the input. It skips leading
// whitespace, then tries each production in a fixed order; the first one
// that matches or fails outright decides the result.
func (c *cursor) parseValue() (Value, error) {
	c.skipSpace()
	if v, ok, err := c.parseString(); err != nil {
		return nil, err
	} else if ok {
		return v, nil
	}
	if v, ok, err := c.parseNumber(); err != nil {
		return nil, err
	} else if ok {
		return v, nil
	}
	if v, ok, err := c.parseObject(); err != nil {
		return nil, err
	} else if ok {
		return v, nil
	}
	if v, ok, err := c.parseArray(); err != nil {
		return nil, err
	} else if ok {
		return v, nil
	}
	for _, kw := range [...]struct {
		name  string
		value Value
	}{{"true", True}, {"false", False}, {"null", Null{}}} {
		if v, ok := c.parseKeyword(kw.name, kw.value); ok {
			return v, nil
		}
	}
	if !c.more() {
		return nil, parseErrorf(UnexpectedEndOfInput, "no value before end of input")
	}
	return nil, parseErrorf(UnexpectedToken, "unexpected %q, want a value", c.peek())
}

// parseObject parses an object. Repeated keys are legal; the value of the
// last occurrence wins.
func (c *cursor) parseObject() (Value, bool, error) {
	if c.peek() != '{' {
		return nil, false, nil
	}
	c.advance(1)
	result := make(Object)
	first := true
	for {
		c.skipSpace()
		if !c.more() {
			return nil, false, parseErrorf(UnexpectedEndOfInput, "missing %q in object", '}')
		}
		if c.peek() == '}' {
			c.advance(1)
			return result, true, nil
		}
		if !first {
			if err := c.eat(','); err != nil {
				return nil, false, err
			}
			c.skipSpace()
		}
		key, ok, err := c.parseString()
		if err != nil {
			return nil, false, err
		} else if !ok {
			return nil, false, parseErrorf(ExpectedObjectKey,
				"no object key at %q (trailing comma?)", c.window(10))
		}
		c.skipSpace()
		if err := c.eat(':'); err != nil {
			return nil, false, err
		}
		value, err := c.parseValue()
		if err != nil {
			return nil, false, err
		}
		result[string(key)] = value
		first = false
	}
}

// parseArray parses an array, preserving element order.
func (c *cursor) parseArray() (Value, bool, error) {
	if c.peek() != '[' {
		return nil, false, nil
	}
	c.advance(1)
	result := Array{}
	first := true
	for {
		c.skipSpace()
		if !c.more() {
			return nil, false, parseErrorf(UnexpectedEndOfInput, "missing %q in array", ']')
		}
		if c.peek() == ']' {
			c.advance(1)
			return result, true, nil
		}
		if !first {
			if err := c.eat(','); err != nil {
				return nil, false, err
			}
		}
		value, err := c.parseValue()
		if err != nil {
			return nil, false, err
		}
		result = append(result, value)
		first = false
	}
}

// parseString parses a string literal. The raw body is scanned up to the
// first unescaped closing quote, then decoded as a unit.
func (c *cursor) parseString() (String, bool, error) {
	if c.peek() != '"' {
		return "", false, nil
	}
	c.advance(1)
	start := c.pos
	esc := false
	for {
		ch := c.peek()
		if ch == eof {
			return "", false, parseErrorf(UnexpectedEndOfInput, "unterminated string")
		}
		if ch == '"' && !esc {
			break
		}
		esc = !esc && ch == '\\'
		c.advance(1)
	}
	body := string(c.in[start:c.pos])
	c.advance(1) // closing quote

	dec, err := escape.Unquote(mem.S(body))
	if err != nil {
		kind := ExpectedEscapeChar
		if errors.Is(err, escape.ErrUnicodeEscape) {
			kind = ExpectedUnicodeEscape
		}
		return "", false, parseErrorf(kind, "%v", err)
	}
	return String(dec), true, nil
}

// parseNumber parses a number: an optional minus sign, an integer part, an
// optional fraction, and an optional exponent. The maximal matching
// substring is converted with strconv.ParseFloat.
func (c *cursor) parseNumber() (Value, bool, error) {
	if ch := c.peek(); ch != '-' && !isDigit(ch) {
		return nil, false, nil
	}
	n := 0
	if c.peekAt(n) == '-' {
		n++
	}
	if !isDigit(c.peekAt(n)) {
		return nil, false, c.expectDigit(n)
	}
	for isDigit(c.peekAt(n)) {
		n++
	}
	if c.peekAt(n) == '.' {
		n++
		if !isDigit(c.peekAt(n)) {
			return nil, false, c.expectDigit(n)
		}
		for isDigit(c.peekAt(n)) {
			n++
		}
	}
	// The eof sentinel folds "input remains" into the marker comparison, so
	// an exponent marker or sign as the final character of the input falls
	// through to the digit requirement below.
	if ch := c.peekAt(n); ch == 'e' || ch == 'E' {
		n++
		if ch := c.peekAt(n); ch == '-' || ch == '+' {
			n++
		}
		if !isDigit(c.peekAt(n)) {
			return nil, false, c.expectDigit(n)
		}
		for isDigit(c.peekAt(n)) {
			n++
		}
	}
	text := c.window(n)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false, parseErrorf(ExpectedDigit, "invalid number %q: %v", text, err)
	}
	c.advance(n)
	return Number(f), true, nil
}

// parseKeyword matches the literal keyword at the current position and, on
// a match, consumes exactly its length. No word-boundary check is made; any
// following character is left for the caller to reject.
func (c *cursor) parseKeyword(keyword string, value Value) (Value, bool) {
	if !c.hasPrefix(keyword) {
		return nil, false
	}
	c.advance(len(keyword)) // keywords are ASCII, so bytes count runes
	return value, true
}

// eat consumes the single required rune want, or fails.
func (c *cursor) eat(want rune) error {
	if !c.more() {
		return parseErrorf(UnexpectedEndOfInput, "input ended, want %q", want)
	}
	if ch := c.peek(); ch != want {
		return parseErrorf(ExpectedToken, "got %q, want %q", ch, want)
	}
	c.advance(1)
	return nil
}

// expectDigit reports a missing required digit n positions ahead, naming
// the partial number scanned so far.
func (c *cursor) expectDigit(n int) error {
	if ch := c.peekAt(n); ch != eof {
		return parseErrorf(ExpectedDigit, "got %q after numeric %q", ch, c.window(n))
	}
	return parseErrorf(ExpectedDigit, "input ended after numeric %q", c.window(n))
}
