// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"strings"
	"testing"
)

var trimTests = []struct {
	in  string
	out string
}{
	{"http://example.com", "http://example.com"},
	{"http://example.com!", "http://example.com"},
	{"http://example.com.", "http://example.com"},
	{"http://example.com/?", "http://example.com/"},
	{"http://example.com/?!.,:", "http://example.com/"},
	{"http://example.com/#!/x", "http://example.com/#!/x"},
	{"http://example.com/a?b=c", "http://example.com/a?b=c"},
	{"http://example.com)", "http://example.com"},
	{"http://example.com))", "http://example.com"},
	{"http://example.com).", "http://example.com"},
	{"http://example.com/a_(b)", "http://example.com/a_(b)"},
	{"http://example.com/a_(b))", "http://example.com/a_(b)"},
	{"http://example.com/a_(b)).", "http://example.com/a_(b)"},
	{"http://example.com/a)(b)", "http://example.com/a)(b"}, // balance is by count only
	{"http://example.com/(a", "http://example.com/(a"},
	{"http://example.com/x]", "http://example.com/x"},
	{"http://example.com/x[0]", "http://example.com/x[0]"},
	{"http://example.com;", "http://example.com"},
	{"http://example.com/&gt;", "http://example.com/"},
	{"http://example.com/&gt;.", "http://example.com/"},
	{"http://example.com/a&b;", "http://example.com/a"},
	{"http://example.com/a&;", "http://example.com/a&"},
	{"http://example.com/;;", "http://example.com/"},
	{"http://abc;", "http://abc"},
	{"http://a...", "http://a"},
	{"http://a)", "http://a"},
	{"http://example.com**", "http://example.com"},
	{"http://example.com/a*b", "http://example.com/a*b"},
	{"http://example.com/*).", "http://example.com/"},
	{"http://example.com/Köln.", "http://example.com/Köln"},
}

func TestTrim(t *testing.T) {
	for _, tt := range trimTests {
		c := span{0, strings.Index(tt.in, "://") + 3, len(tt.in)}
		if out := tt.in[:trim(tt.in, c)]; out != tt.out {
			t.Errorf("trim(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func TestTrimToNothing(t *testing.T) {
	// candidates never start a host with punctuation,
	// but trim must still stop at the host.
	s := "http://..."
	c := span{0, len("http://"), len(s)}
	if end := trim(s, c); end != c.host {
		t.Errorf("trim(%q) = %d, want %d", s, end, c.host)
	}
}
