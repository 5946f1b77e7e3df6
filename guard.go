// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import "strings"

// A tagScanner tracks just enough HTML structure to tell whether
// an offset in s is ordinary text or lies inside markup that
// already represents a link (an attribute value, an anchor's content)
// or that must not be touched at all (comments, script and style text).
//
// It is not a parser. It assumes the common well-formed case:
// at most one open anchor at a time, quotes balanced inside tags.
//
// The scanner only moves forward. Each call to linkable resumes
// where the previous one stopped, so classifying every candidate
// in a string costs a single pass over it. A backward walk from
// each candidate would be quadratic on inputs like "http://a " repeated.
type tagScanner struct {
	s     string
	skip  []string // further elements whose content is not linked
	pos   int      // next byte to examine
	state scanState

	// Valid in stateTag.
	name   string // tag name as written; "" for <! and <? markup
	close  bool   // tag is an end tag
	quote  byte   // open attribute quote, or 0
	sawEq  bool   // last non-space byte in the tag was =
	anchor bool   // inside <a ...> ... </a>
	raw    string // in stateRaw: lower-case name of the element to close
	inSkip string // name of the open skip element, or ""
}

type scanState int

const (
	stateText    scanState = iota
	stateTag               // between < and >
	stateComment           // between <!-- and -->
	stateRaw               // content of script, style, or textarea
)

// rawTags are the elements whose content is never linked.
var rawTags = []string{"script", "style", "textarea"}

// linkable reports whether a URL starting at s[i] is in ordinary text,
// outside any tag, comment, raw-text element, or anchor content.
// Offsets must be passed in increasing order.
func (t *tagScanner) linkable(i int) bool {
	for t.pos < i {
		t.step()
	}
	return t.state == stateText && !t.anchor && t.inSkip == ""
}

// step advances the scanner past at least one byte.
// It never advances past a byte where a URL could begin
// without first recording the state that byte is in,
// except for the letters of a tag name, which are markup anyway.
func (t *tagScanner) step() {
	s := t.s
	c := s[t.pos]
	switch t.state {
	case stateText:
		if c != '<' || t.pos+1 >= len(s) {
			t.pos++
			return
		}
		switch next := s[t.pos+1]; {
		case strings.HasPrefix(s[t.pos:], "<!--"):
			t.pos += len("<!--")
			switch rest := s[t.pos:]; {
			case strings.HasPrefix(rest, ">"):
				// <!--> is an empty comment.
				t.pos += len(">")
			case strings.HasPrefix(rest, "->"):
				t.pos += len("->")
			default:
				t.state = stateComment
			}
		case next == '!' || next == '?':
			t.openTag("", false, t.pos+2)
		case next == '/' && t.pos+2 < len(s) && isLetter(s[t.pos+2]):
			name, end := tagName(s, t.pos+2)
			t.openTag(name, true, end)
		case isLetter(next):
			name, end := tagName(s, t.pos+1)
			t.openTag(name, false, end)
		default:
			// a < b, <3, and so on are text.
			t.pos++
		}

	case stateTag:
		switch {
		case t.quote != 0:
			if c == t.quote {
				t.quote = 0
			}
		case (c == '"' || c == '\'') && t.sawEq:
			t.quote = c
		case c == '>':
			t.closeTag()
		}
		if !isSpace(c) {
			t.sawEq = c == '='
		}
		t.pos++

	case stateComment:
		if strings.HasPrefix(s[t.pos:], "-->") {
			t.state = stateText
			t.pos += len("-->")
			return
		}
		t.pos++

	case stateRaw:
		if c == '<' && t.pos+1 < len(s) && s[t.pos+1] == '/' {
			end := t.pos + 2 + len(t.raw)
			if hasPrefixFold(s[t.pos+2:], t.raw) && (end >= len(s) || !isLDH(s[end])) {
				t.openTag(s[t.pos+2:end], true, end)
				return
			}
		}
		t.pos++
	}
}

// openTag enters stateTag for a tag with the given name
// whose remaining markup starts at s[end].
func (t *tagScanner) openTag(name string, close bool, end int) {
	t.state = stateTag
	t.name = name
	t.close = close
	t.quote = 0
	t.sawEq = false
	t.pos = end
}

// closeTag handles the > that ends the current tag.
func (t *tagScanner) closeTag() {
	t.state = stateText
	if lowerEq(t.name, "a") {
		t.anchor = !t.close
		return
	}
	if t.close {
		if t.inSkip != "" && lowerEq(t.name, t.inSkip) {
			t.inSkip = ""
		}
		return
	}
	for _, raw := range rawTags {
		if lowerEq(t.name, raw) {
			t.state = stateRaw
			t.raw = raw
			return
		}
	}
	if t.inSkip == "" {
		for _, name := range t.skip {
			if lowerEq(t.name, name) {
				t.inSkip = name
				return
			}
		}
	}
}

// tagName parses a leading tag name from s[start:],
// returning the name and the end location.
// The caller has checked that s[start] is a letter.
func tagName(s string, start int) (name string, end int) {
	// “A tag name consists of an ASCII letter followed by zero or more ASCII letters, digits, or hyphens (-).”
	end = start + 1
	for end < len(s) && isLDH(s[end]) {
		end++
	}
	return s[start:end], end
}
