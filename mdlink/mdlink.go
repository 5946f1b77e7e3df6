// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdlink converts Markdown to HTML and links the bare URLs
// left in the result.
//
// Markdown links and autolinks (<http://...>) are rendered by the
// Markdown converter; URLs written as plain text in paragraphs,
// list items, and table cells are then linked by an [autolink.Linker].
// Code spans and code blocks are never linked.
package mdlink

import (
	"bytes"
	"slices"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"rsc.io/autolink"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	goldmark.WithRendererOptions(ghtml.WithUnsafe()),
)

// ToHTML converts the Markdown src to HTML and links its bare URLs with l.
// A nil l links like the zero [autolink.Linker].
// Raw HTML in src is passed through.
func ToHTML(src []byte, l *autolink.Linker) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(replaceTabs(src), &buf); err != nil {
		return "", err
	}
	var ml autolink.Linker
	if l != nil {
		ml = *l
	}
	ml.Skip = append(slices.Clip(ml.Skip), "code", "pre")
	return ml.Link(buf.String()), nil
}

// replaceTabs expands tabs in text to spaces, up to the next 4-column
// tab stop, the Markdown rule for indentation. Columns are counted
// in runes; other bytes, including invalid UTF-8, are copied unchanged.
func replaceTabs(text []byte) []byte {
	if bytes.IndexByte(text, '\t') < 0 {
		return text
	}
	out := make([]byte, 0, len(text)+len(text)/4)
	col := 0
	for len(text) > 0 {
		switch text[0] {
		case '\t':
			n := 4 - col%4
			out = append(out, "    "[:n]...)
			col += n
			text = text[1:]
		case '\n':
			out = append(out, '\n')
			col = 0
			text = text[1:]
		default:
			_, size := utf8.DecodeRune(text)
			out = append(out, text[:size]...)
			col++
			text = text[size:]
		}
	}
	return out
}
