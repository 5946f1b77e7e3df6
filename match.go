// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// defaultSchemes are the schemes recognized by a Linker with nil Schemes.
var defaultSchemes = []string{"http", "https", "ftp"}

// A span is a URL occurrence s[start:end] in the text being linked.
// The host begins at s[host], just past the "://".
type span struct {
	start int
	host  int
	end   int
}

// candidates returns the URL-shaped runs of s in order.
//
// A candidate is a recognized scheme followed by "://",
// a host starting with a letter or digit, and then everything
// up to the first rune that cannot appear in a URL (see [isURL])
// or the first byte that is not valid UTF-8.
// The scheme must not directly follow an ASCII letter or digit,
// so that "xhttp://" and "4ftp://" are not links.
//
// Candidates do not overlap, and the end of each is the raw end
// of the run, before any trimming. The sequence can be ranged over
// any number of times; each range scans s afresh.
func (l *Linker) candidates(s string) iter.Seq[span] {
	schemes := l.schemes()
	return func(yield func(span) bool) {
		for i := 0; i < len(s); i++ {
			if !isLetter(s[i]) || i > 0 && isLetterDigit(s[i-1]) {
				continue
			}
			n := matchScheme(s[i:], schemes)
			if n == 0 {
				continue
			}
			host := i + n
			if host >= len(s) || !isLetterDigit(s[host]) {
				// A bare scheme is not a link.
				continue
			}
			end := host + 1
			for end < len(s) {
				r, size := utf8.DecodeRuneInString(s[end:])
				if r == utf8.RuneError && size <= 1 || !isURL(r) {
					break
				}
				end += size
			}
			if !yield(span{i, host, end}) {
				return
			}
			i = end - 1
		}
	}
}

// matchScheme returns the length of the "scheme://" prefix of s
// for one of the given lower-case schemes, or 0 if there is none.
func matchScheme(s string, schemes []string) int {
	for _, scheme := range schemes {
		if hasPrefixFold(s, scheme) && strings.HasPrefix(s[len(scheme):], "://") {
			return len(scheme) + len("://")
		}
	}
	return 0
}

// schemes returns the lower-cased schemes l recognizes.
func (l *Linker) schemes() []string {
	if l.Schemes == nil {
		return defaultSchemes
	}
	list := make([]string, len(l.Schemes))
	for i, scheme := range l.Schemes {
		list[i] = strings.ToLower(scheme)
	}
	return list
}
