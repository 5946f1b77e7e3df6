// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"rsc.io/autolink"
)

// config holds the settings for one run,
// merged from flags, LINKTEXT_* variables, and linktext.yaml.
type config struct {
	Target   string   `mapstructure:"target"`
	Rel      string   `mapstructure:"rel"`
	Attrs    []string `mapstructure:"attrs"`
	Schemes  []string `mapstructure:"schemes"`
	Skip     []string `mapstructure:"skip"`
	Format   string   `mapstructure:"format"`
	Images   bool     `mapstructure:"images"`
	Markdown bool     `mapstructure:"markdown"`
	Encoding string   `mapstructure:"encoding"`
}

// flagKeys maps configuration keys to the flags that set them.
var flagKeys = map[string]string{
	"target":   "target",
	"rel":      "rel",
	"attrs":    "attr",
	"schemes":  "scheme",
	"skip":     "skip",
	"format":   "format",
	"images":   "images",
	"markdown": "markdown",
	"encoding": "encoding",
}

// loadConfig reads the configuration into v and returns it.
// An explicit --config file must exist; the default linktext.yaml is optional.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (*config, error) {
	v.SetDefault("target", "")
	v.SetDefault("rel", "")
	v.SetDefault("attrs", []string{})
	v.SetDefault("schemes", []string{})
	v.SetDefault("skip", []string{})
	v.SetDefault("format", "html")
	v.SetDefault("images", false)
	v.SetDefault("markdown", false)
	v.SetDefault("encoding", "")

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("LINKTEXT")
	v.AutomaticEnv()

	if file, _ := flags.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("linktext")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "linktext"))
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

var imageRE = regexp.MustCompile(`(?i)\.(gif|png|jpe?g)$`)

// linker returns the Linker described by c.
// The Linker has been validated.
func (c *config) linker() (*autolink.Linker, error) {
	l := &autolink.Linker{
		Target: c.Target,
		Rel:    c.Rel,
		Skip:   c.Skip,
	}
	if len(c.Schemes) > 0 {
		l.Schemes = c.Schemes
	}
	for _, a := range c.Attrs {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("attribute %q: want name=value: %w", a, autolink.ErrInvalidOption)
		}
		l.Attrs = append(l.Attrs, autolink.Attr{Name: name, Value: value})
	}

	switch c.Format {
	case "html":
	case "markdown":
		if c.Markdown {
			return nil, errors.New("--format markdown cannot be used with --markdown input")
		}
	default:
		return nil, fmt.Errorf("unknown format %q (want html or markdown)", c.Format)
	}
	l.Render = render(c.Format, c.Images)

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// render returns the Render callback for the given format,
// or nil if every URL gets the default <a> rendering.
func render(format string, images bool) func(string) (string, bool) {
	if format != "markdown" && !images {
		return nil
	}
	return func(url string) (string, bool) {
		img := images && imageRE.MatchString(url)
		switch {
		case format == "markdown" && img:
			return "![" + url + "](" + url + ")", true
		case format == "markdown":
			return "[" + url + "](" + url + ")", true
		case img:
			return "<img src='" + url + "' alt='" + url + "'>", true
		}
		return "", false
	}
}
