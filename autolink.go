// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package autolink turns plain URLs in text into HTML links.
//
// It rewrites text like
//
//	Visit http://example.com!
//
// into
//
//	Visit <a href='http://example.com'>http://example.com</a>!
//
// leaving alone URLs that are already part of markup:
// attribute values such as href and src, the content of existing
// <a> elements, comments, and script, style, and textarea text.
// It does not parse HTML, validate URLs, or escape anything;
// input markup is copied through byte for byte.
package autolink

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// A Linker links URLs in text.
// The zero value links http, https, and ftp URLs with plain <a> tags.
//
// A Linker is not modified by its methods and
// may be used by multiple goroutines simultaneously.
type Linker struct {
	// Target and Rel, if non-empty, are added as target= and rel=
	// attributes, in that order, to every default-rendered link.
	Target string
	Rel    string

	// Attrs are added after Target and Rel, in order.
	Attrs []Attr

	// Schemes lists the URL schemes to recognize, such as "http".
	// Matching ignores ASCII case. If Schemes is nil,
	// the schemes are http, https, and ftp.
	Schemes []string

	// Skip lists elements, such as "code" and "pre", whose content
	// is left unlinked, in addition to a, script, style, and textarea.
	// Names must be lower-case.
	Skip []string

	// Render, if non-nil, is called for each URL to be linked.
	// If it returns ok == true, html replaces the URL verbatim,
	// and Target, Rel, and Attrs are not used.
	// If it returns ok == false, the URL gets the default <a> rendering.
	// Render is called synchronously, in document order.
	Render func(url string) (html string, ok bool)
}

// An Attr is an extra attribute for default-rendered links.
type Attr struct {
	Name  string
	Value string
}

// ErrInvalidOption is returned (wrapped) by [Linker.Validate].
var ErrInvalidOption = errors.New("invalid autolink option")

// Link returns s with URLs linked by the zero [Linker].
func Link(s string) string {
	var l Linker
	return l.Link(s)
}

// Extract returns the URLs that [Link] would link in s, in order.
func Extract(s string) []string {
	var l Linker
	return slices.Collect(l.URLs(s))
}

// Link returns s with each plain URL replaced by its rendering.
// Text between URLs, and URLs that are already linked, are copied unchanged.
// If nothing is linked, Link returns s itself.
//
// A panic in l.Render propagates to the caller; no partial result is returned.
func (l *Linker) Link(s string) string {
	var b strings.Builder // allocated lazily when we find the first URL
	found := false
	last := 0
	for m := range l.matches(s) {
		if !found {
			found = true
			b.Grow(len(s) + 64)
		}
		b.WriteString(s[last:m.start])
		l.render(&b, s[m.start:m.end])
		last = m.end
	}
	if !found {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// URLs returns the URLs that l.Link would link in s, in order,
// without rendering them.
func (l *Linker) URLs(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for m := range l.matches(s) {
			if !yield(s[m.start:m.end]) {
				return
			}
		}
	}
}

// matches returns the candidates in s that are in ordinary text,
// with their ends trimmed.
func (l *Linker) matches(s string) iter.Seq[span] {
	return func(yield func(span) bool) {
		t := tagScanner{s: s, skip: l.Skip}
		for c := range l.candidates(s) {
			if !t.linkable(c.start) {
				continue
			}
			c.end = trim(s, c)
			if c.end <= c.host {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// render writes the replacement for url to b.
func (l *Linker) render(b *strings.Builder, url string) {
	if l.Render != nil {
		if html, ok := l.Render(url); ok {
			b.WriteString(html)
			return
		}
	}
	b.WriteString("<a")
	writeAttr(b, "href", url)
	if l.Target != "" {
		writeAttr(b, "target", l.Target)
	}
	if l.Rel != "" {
		writeAttr(b, "rel", l.Rel)
	}
	for _, a := range l.Attrs {
		writeAttr(b, a.Name, a.Value)
	}
	b.WriteString(">")
	b.WriteString(url)
	b.WriteString("</a>")
}

// writeAttr writes a single-quoted attribute. The value is not escaped.
func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("='")
	b.WriteString(value)
	b.WriteString("'")
}

// Validate reports whether l's fields can produce well-formed links.
// Link does not call Validate: it inserts Target, Rel, and Attrs as given.
// Callers building a Linker from configuration should call Validate first.
func (l *Linker) Validate() error {
	if err := checkValue("target", l.Target); err != nil {
		return err
	}
	if err := checkValue("rel", l.Rel); err != nil {
		return err
	}
	for _, a := range l.Attrs {
		if !isAttrName(a.Name) {
			return fmt.Errorf("attribute name %q: %w", a.Name, ErrInvalidOption)
		}
		switch strings.ToLower(a.Name) {
		case "href", "target", "rel":
			return fmt.Errorf("attribute %q duplicates a built-in attribute: %w", a.Name, ErrInvalidOption)
		}
		if err := checkValue(a.Name, a.Value); err != nil {
			return err
		}
	}
	if l.Schemes != nil && len(l.Schemes) == 0 {
		return fmt.Errorf("empty scheme list: %w", ErrInvalidOption)
	}
	for _, scheme := range l.Schemes {
		if !isSchemeName(scheme) {
			return fmt.Errorf("scheme %q: %w", scheme, ErrInvalidOption)
		}
	}
	for _, name := range l.Skip {
		if !isTagName(name) || strings.ToLower(name) != name {
			return fmt.Errorf("skip element %q: %w", name, ErrInvalidOption)
		}
	}
	return nil
}

// checkValue reports an error if value cannot be single-quoted.
func checkValue(name, value string) error {
	if strings.ContainsAny(value, "'<>") {
		return fmt.Errorf("%s value %q contains a quote or angle bracket: %w", name, value, ErrInvalidOption)
	}
	return nil
}

// isAttrName reports whether s is an HTML attribute name.
func isAttrName(s string) bool {
	// “An attribute name consists of an ASCII letter, _, or :,
	// followed by zero or more ASCII letters, digits, _, ., :, or -.”
	if s == "" || !isLetter(s[0]) && s[0] != '_' && s[0] != ':' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; !isLDH(c) && c != '_' && c != '.' && c != ':' {
			return false
		}
	}
	return true
}

// isTagName reports whether s is an HTML tag name.
func isTagName(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	_, end := tagName(s, 0)
	return end == len(s)
}

// isSchemeName reports whether s is a URL scheme:
// an ASCII letter followed by letters, digits, +, ., or -.
func isSchemeName(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isScheme(s[i]) {
			return false
		}
	}
	return true
}
