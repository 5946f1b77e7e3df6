// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import "unicode"

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isLDH reports whether c is an ASCII letter, digit, or hyphen.
func isLDH(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-'
}

// isScheme reports whether c is a scheme character.
func isScheme(c byte) bool {
	return isLetterDigit(c) || c == '+' || c == '.' || c == '-'
}

// isURL reports whether r can appear in a linked URL.
// A URL ends at a space or control character, at < or > (markup),
// or at a quote or backquote. Non-ASCII letters are kept,
// so paths like /wiki/Köln are linked whole.
func isURL(r rune) bool {
	switch r {
	case '<', '>', '"', '\'', '`':
		return false
	}
	return !unicode.IsSpace(r) && !unicode.IsControl(r)
}

// isSpace reports whether c is an ASCII space character.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// lowerEq reports whether strings.ToLower(s) == lower
// assuming lower has no ASCII upper-case letters.
func lowerEq(s, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}

// hasPrefixFold reports whether s begins with prefix,
// ignoring ASCII case in s. Prefix must be lower-case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && lowerEq(s[:len(prefix)], prefix)
}
