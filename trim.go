// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

// trim returns the end of the URL in the candidate c of s,
// after dropping the trailing characters that belong to the
// surrounding sentence rather than to the URL:
//
//   - closing ) and ] not matched (by count only) inside the URL,
//     so that "(see http://example.com)" keeps its ) as text
//     while "http://en.wikipedia.org/wiki/Honor_(Southern)" keeps it in the URL;
//   - sentence punctuation ? ! . , and :, and the * of **emphasis**;
//   - a trailing entity reference such as &gt;, or else a lone ;.
//
// The rules are applied repeatedly until none applies,
// so "(http://example.com)." loses both the . and the ).
// If nothing is left past the scheme, trim returns c.host.
func trim(s string, c span) int {
	paren, bracket := 0, 0
	for i := c.host; i < c.end; i++ {
		switch s[i] {
		case '(':
			paren++
		case ')':
			paren--
		case '[':
			bracket++
		case ']':
			bracket--
		}
	}

	i := c.end
Trim:
	for i > c.host {
		switch s[i-1] {
		case '?', '!', '.', ',', ':', '*':
			i--
			continue Trim

		case ')':
			if paren < 0 {
				paren++
				i--
				continue Trim
			}

		case ']':
			if bracket < 0 {
				bracket++
				i--
				continue Trim
			}

		case ';':
			// Trim entity reference, or else just the semicolon.
			// Either way the scan below is not repeated over the
			// same letters, so trimming stays linear.
			for j := i - 2; j > c.host; j-- {
				if j < i-2 && s[j] == '&' {
					i = j
					continue Trim
				}
				if !isLetterDigit(s[j]) {
					break
				}
			}
			i--
			continue Trim
		}
		break Trim
	}
	return i
}
