// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import "testing"

func TestParseFeature(t *testing.T) {
	cases := []struct {
		in      string
		wantOK  bool
		wantVal uint32
	}{
		{"liga", true, 1},
		{"+liga", true, 1},
		{"-calt", true, 0},
		{"", false, 0},
		{"toolong", false, 0},
		{"ab", false, 0},
	}
	for _, c := range cases {
		f, ok := parseFeature(c.in)
		if ok != c.wantOK {
			t.Errorf("parseFeature(%q) ok = %v, want %v", c.in, ok, c.wantOK)
			continue
		}
		if ok && f.Value != c.wantVal {
			t.Errorf("parseFeature(%q).Value = %d, want %d", c.in, f.Value, c.wantVal)
		}
	}
}

func TestConfigFeaturesDropsUnparsableEntriesSilently(t *testing.T) {
	cfg := Config{Features: []string{"liga", "", "nope-too-long", "-calt"}}
	got := cfg.features()
	if len(got) != 2 {
		t.Fatalf("got %d features, want 2 (unparsable entries dropped)", len(got))
	}
}

func TestConfigLanguageDefaultsToEnglish(t *testing.T) {
	cfg := Config{}
	lang := cfg.language()
	if got := string(lang); got != "en" {
		t.Errorf("default language tag = %q, want %q", got, "en")
	}
}

func TestConfigLanguageFallsBackOnInvalidTag(t *testing.T) {
	cfg := Config{Language: "not a valid bcp47 tag!!"}
	// Must not panic; Config.language falls back to "en" for a tag that
	// golang.org/x/text/language cannot parse.
	_ = cfg.language()
}
