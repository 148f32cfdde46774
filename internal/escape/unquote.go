// Copyright (C) 2024 M. Felian. All Rights Reserved.

// Package escape decodes the escape sequences of JSON string literals.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Sentinel errors reported by Unquote. Errors are wrapped; match them with
// errors.Is.
var (
	// ErrEscapeChar means a backslash was followed by a character that does
	// not begin a valid escape sequence.
	ErrEscapeChar = errors.New("invalid escape character")

	// ErrUnicodeEscape means a "\u" escape was not followed by exactly four
	// hexadecimal digits.
	ErrUnicodeEscape = errors.New("invalid Unicode escape")
)

// Unquote decodes a string containing the JSON encoding of a string body.
// The input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A pair of
// consecutive "\u" escapes encoding a UTF-16 high and low surrogate decodes
// to the single code point the pair denotes; an unpaired surrogate decodes
// to the Unicode replacement rune.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the rune after the backslash to find out what to substitute.
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, fmt.Errorf("%w: input ends in a bare backslash", ErrEscapeChar)
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			v, err := hex4(src)
			if err != nil {
				return nil, err
			}
			src = src.SliceFrom(4)
			if utf16.IsSurrogate(v) {
				if r, ok := pairSurrogate(v, src); ok {
					putRune(r)
					src = src.SliceFrom(6)
				} else {
					putRune(utf8.RuneError)
				}
			} else {
				putRune(v)
			}
		default:
			return nil, fmt.Errorf("%w: %q after backslash", ErrEscapeChar, r)
		}

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// pairSurrogate reports whether src begins with a "\uXXXX" escape that
// combines with hi into a valid surrogate pair, and if so returns the code
// point the pair denotes. The caller is responsible for consuming the six
// input bytes on success.
func pairSurrogate(hi rune, src mem.RO) (rune, bool) {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, false
	}
	lo, err := hex4(src.SliceFrom(2))
	if err != nil {
		return 0, false
	}
	r := utf16.DecodeRune(hi, lo)
	return r, r != utf8.RuneError
}

// hex4 decodes exactly four hexadecimal digits from the front of data.
func hex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, fmt.Errorf("%w: not enough input for 4 hex digits", ErrUnicodeEscape)
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
			return 0, fmt.Errorf("%w: %q is not a hex digit", ErrUnicodeEscape, b)
		}
	}
	return v, nil
}
