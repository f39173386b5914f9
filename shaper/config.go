// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"strings"

	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xlanguage "golang.org/x/text/language"
)

// Config carries the tunables the surrounding terminal emulator exposes to
// the shaping engine. Loading a Config from a file or environment is
// outside this package; Config is just the validated value type the
// driver consumes.
type Config struct {
	// Language is the BCP 47 tag shaping assumes when a run does not
	// override it. Defaults to "en".
	Language string
	// Features lists textual OpenType feature descriptors (e.g. "liga",
	// "-calt"). Entries that don't parse to a 4-byte tag are silently
	// dropped.
	Features []string
}

func (c Config) language() language.Language {
	tag := c.Language
	if tag == "" {
		tag = "en"
	}
	if _, err := xlanguage.Parse(tag); err != nil {
		tag = "en"
	}
	return language.NewLanguage(tag)
}

func (c Config) features() []shaping.FontFeature {
	var out []shaping.FontFeature
	for _, raw := range c.Features {
		f, ok := parseFeature(raw)
		if !ok {
			continue
		}
		out = append(out, f)
	}
	return out
}

// parseFeature parses a textual OpenType feature descriptor of the form
// "tag", "+tag", or "-tag" into a shaping.FontFeature. Unparsable strings
// report ok=false so the caller can drop them silently.
func parseFeature(raw string) (f shaping.FontFeature, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return shaping.FontFeature{}, false
	}
	value := uint32(1)
	switch {
	case strings.HasPrefix(s, "-"):
		value = 0
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if len(s) != 4 {
		return shaping.FontFeature{}, false
	}
	return shaping.FontFeature{Tag: tsfont.Tag(tagFromString(s)), Value: value}, true
}

func tagFromString(s string) uint32 {
	return uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3])
}
