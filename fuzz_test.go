// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func FuzzLink(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			f.Add(decode(string(a.Files[i].Data)))
		}
	}
	f.Fuzz(func(t *testing.T, s string) {
		out := Link(s)
		if again := Link(out); again != out {
			t.Fatalf("not idempotent:\nin:    %q\nonce:  %q\ntwice: %q", s, out, again)
		}
		urls := Extract(s)
		if (len(urls) == 0) != (out == s) {
			t.Fatalf("Extract(%q) = %q but Link changed=%v", s, urls, out != s)
		}
		for _, u := range urls {
			if !strings.Contains(u, "://") || strings.ContainsAny(u, " \t\n<>'\"") {
				t.Fatalf("Extract(%q) returned bad URL %q", s, u)
			}
		}
	})
}
