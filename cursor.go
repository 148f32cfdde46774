// Copyright (C) 2024 M. Felian. All Rights Reserved.

package jval

// eof is the sentinel returned by peek and peekAt past the end of input.
// It compares unequal to every valid rune, so boundary checks fold into
// the ordinary character comparisons at each call site.
const eof rune = -1

// A cursor owns the decoded input and the current scan position. The
// position ranges over [0, len]; no operation can move it before the start
// or past the end.
type cursor struct {
	in  []rune
	pos int
}

func newCursor(text string) *cursor { return &cursor{in: []rune(text)} }

// more reports whether any input remains.
func (c *cursor) more() bool { return c.pos < len(c.in) }

// peek returns the rune at the current position, or eof.
func (c *cursor) peek() rune { return c.peekAt(0) }

// peekAt returns the rune n positions past the current one, or eof.
func (c *cursor) peekAt(n int) rune {
	if p := c.pos + n; p < len(c.in) {
		return c.in[p]
	}
	return eof
}

// advance moves the position forward by n, stopping at the end of input.
func (c *cursor) advance(n int) {
	if c.pos+n >= len(c.in) {
		c.pos = len(c.in)
	} else {
		c.pos += n
	}
}

// skipSpace advances past consecutive ASCII whitespace. Unicode space
// characters are not part of the JSON grammar and are not skipped.
func (c *cursor) skipSpace() {
	for isSpace(c.peek()) {
		c.pos++
	}
}

// hasPrefix reports whether the input at the current position begins with
// the (ASCII) string want.
func (c *cursor) hasPrefix(want string) bool {
	for i, ch := range want {
		if c.peekAt(i) != ch {
			return false
		}
	}
	return true
}

// window returns the n runes starting at the current position, truncated
// at the end of input.
func (c *cursor) window(n int) string {
	end := c.pos + n
	if end > len(c.in) {
		end = len(c.in)
	}
	return string(c.in[c.pos:end])
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
