// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"slices"
	"testing"
)

var candidateTests = []struct {
	schemes []string
	in      string
	out     []string
}{
	{nil, "", nil},
	{nil, "http://a.example", []string{"http://a.example"}},
	{nil, "see http://a.example!", []string{"http://a.example!"}},
	{nil, "http://a.example,http://b.example", []string{"http://a.example,http://b.example"}},
	{nil, "http://a.example http://b.example", []string{"http://a.example", "http://b.example"}},
	{nil, "<a href='http://a.example'>", []string{"http://a.example"}},
	{nil, "http://a.example<br>https://b.example\nftp://c.example", []string{"http://a.example", "https://b.example", "ftp://c.example"}},
	{nil, "http://a.example/x y", []string{"http://a.example/x"}},
	{nil, "http://a.example/café", []string{"http://a.example/café"}},
	{nil, "see http://de.wikipedia.org/wiki/Köln today", []string{"http://de.wikipedia.org/wiki/Köln"}},
	{nil, "http://a.example/Syria’s_Women", []string{"http://a.example/Syria’s_Women"}},
	{nil, "http://a.example/x\u00a0y", []string{"http://a.example/x"}},
	{nil, "http://a.example/x\u3000y", []string{"http://a.example/x"}},
	{nil, "http://a.example/x\xffy", []string{"http://a.example/x"}},
	{nil, "http://a.example/{x}^y", []string{"http://a.example/{x}^y"}},
	{nil, "`http://a.example`", []string{"http://a.example"}},
	{nil, "http://a.example/x\x00y", []string{"http://a.example/x"}},
	{nil, "xhttp://a.example", nil},
	{nil, "9http://a.example", nil},
	{nil, "_http://a.example", []string{"http://a.example"}},
	{nil, "http://", nil},
	{nil, "http:// a", nil},
	{nil, "http://-a", nil},
	{nil, "http:/a.example", nil},
	{nil, "mailto:a@b.example", nil},
	{nil, "HtTp://A.example", []string{"HtTp://A.example"}},
	{nil, "gopher://a.example", nil},
	{[]string{"Gopher"}, "gopher://a.example http://b.example", []string{"gopher://a.example"}},
	{[]string{"git+ssh"}, "git+ssh://git@a.example/r.git", []string{"git+ssh://git@a.example/r.git"}},
}

func TestCandidates(t *testing.T) {
	for _, tt := range candidateTests {
		l := Linker{Schemes: tt.schemes}
		var out []string
		for c := range l.candidates(tt.in) {
			out = append(out, tt.in[c.start:c.end])
		}
		if !slices.Equal(out, tt.out) {
			t.Errorf("candidates(%q) with schemes %q = %q, want %q", tt.in, tt.schemes, out, tt.out)
		}
	}
}

func TestCandidatesRestart(t *testing.T) {
	var l Linker
	seq := l.candidates("http://a.example http://b.example")
	n1, n2 := 0, 0
	for range seq {
		n1++
	}
	for range seq {
		n2++
	}
	if n1 != 2 || n2 != 2 {
		t.Errorf("two scans found %d and %d candidates, want 2 and 2", n1, n2)
	}
}
