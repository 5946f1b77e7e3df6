// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Linktext links the plain URLs in HTML or text.
//
// Usage:
//
//	linktext [flags] [file...]
//
// Linktext reads the named files, or else standard input, and prints
// the same text to standard output with each plain http, https, or ftp URL
// wrapped in an <a> tag. URLs in attribute values and inside existing
// <a> elements, comments, and script, style, and textarea elements
// are left alone.
//
// The flags are:
//
//	-w
//		Rewrite the files in place instead of printing them.
//	--target name, --rel value
//		Add target= and rel= attributes to each link.
//	--attr name=value
//		Add another attribute to each link. May be repeated.
//	--scheme name
//		Link URLs with this scheme. May be repeated.
//		The default is http, https, and ftp.
//	--skip element
//		Leave the content of element unlinked. May be repeated.
//	--format markdown
//		Write links as Markdown [url](url) instead of HTML.
//	--images
//		Write URLs ending in .gif, .png, .jpg, or .jpeg as images.
//	--markdown
//		Treat the input as Markdown and convert it to HTML first.
//	--encoding charset
//		Decode the input from charset, such as windows-1252 or shift_jis,
//		and encode the output back to it.
//	--config file
//		Read settings from file.
//
// Settings other than -w and --config may also be given in
// a YAML file linktext.yaml, found in $HOME/.config/linktext, $HOME,
// or the current directory, or in environment variables
// LINKTEXT_TARGET, LINKTEXT_REL, and so on. Flags override
// the environment, which overrides the file.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"rsc.io/autolink"
	"rsc.io/autolink/mdlink"
)

// errFailed reports that some files could not be converted.
// The individual errors have already been logged.
var errFailed = errors.New("exit status 1")

func main() {
	log.SetPrefix("linktext: ")
	log.SetFlags(0)

	cmd := newCommand(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "linktext [flags] [file...]",
		Short: "Link the plain URLs in HTML or text",
		Long: `Linktext reads the named files, or else standard input,
and prints them with each plain URL wrapped in an <a> tag.
URLs that are already part of markup are left alone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			c, err := newConverter(cfg)
			if err != nil {
				return err
			}
			write, _ := cmd.Flags().GetBool("write")
			return c.run(args, write, stdin, stdout)
		},
	}

	f := cmd.Flags()
	f.BoolP("write", "w", false, "write result to files instead of standard output")
	f.String("config", "", "read settings from `file`")
	f.String("target", "", "target attribute for links")
	f.String("rel", "", "rel attribute for links")
	f.StringArray("attr", nil, "extra link attribute `name=value` (repeatable)")
	f.StringArray("scheme", nil, "URL `scheme` to link (repeatable; default http, https, ftp)")
	f.StringArray("skip", nil, "`element` whose content is not linked (repeatable)")
	f.String("format", "html", "link format: html or markdown")
	f.Bool("images", false, "write image URLs as images")
	f.Bool("markdown", false, "convert Markdown input to HTML")
	f.String("encoding", "", "input and output `charset` (default no conversion)")
	return cmd
}

// A converter links the URLs in one input.
type converter struct {
	l        *autolink.Linker
	markdown bool
	enc      encoding.Encoding // nil for no conversion
}

func newConverter(cfg *config) (*converter, error) {
	l, err := cfg.linker()
	if err != nil {
		return nil, err
	}
	c := &converter{l: l, markdown: cfg.Markdown}
	if cfg.Encoding != "" {
		enc, err := htmlindex.Get(cfg.Encoding)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", cfg.Encoding, err)
		}
		c.enc = enc
	}
	return c, nil
}

// run converts the named files, or else stdin.
// Errors for individual files are logged, and run returns errFailed.
func (c *converter) run(files []string, write bool, stdin io.Reader, stdout io.Writer) error {
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		out, err := c.convert(data)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	failed := false
	for _, file := range files {
		if err := c.convertFile(file, write, stdout); err != nil {
			log.Print(err)
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func (c *converter) convertFile(file string, write bool, stdout io.Writer) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	out, err := c.convert(data)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if !write {
		_, err := stdout.Write(out)
		return err
	}
	if bytes.Equal(out, data) {
		return nil
	}
	return os.WriteFile(file, out, 0666)
}

// convert returns data with its URLs linked.
func (c *converter) convert(data []byte) ([]byte, error) {
	if c.enc != nil {
		var err error
		if data, err = c.enc.NewDecoder().Bytes(data); err != nil {
			return nil, err
		}
	}

	var out string
	if c.markdown {
		var err error
		if out, err = mdlink.ToHTML(data, c.l); err != nil {
			return nil, err
		}
	} else {
		out = c.l.Link(string(data))
	}

	if c.enc != nil {
		return c.enc.NewEncoder().Bytes([]byte(out))
	}
	return []byte(out), nil
}
