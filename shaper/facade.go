// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"fmt"
	"time"

	"github.com/go-text/typesetting/shaping"
	"github.com/pterm/pterm"
)

// Shaper is the entry point for turning a run of text into positioned
// glyphs against an ordered font stack. It is not safe for concurrent use:
// callers must serialize calls the way they would serialize access to any
// other single-threaded rendering resource.
type Shaper struct {
	cfg   Config
	lib   *Library
	pairs *fontPairCache

	metrics *metricsCache
	hb      shaping.HarfbuzzShaper

	// Debug gates populating GlyphInfo.Text with the literal source
	// fragment each glyph covers. Leave false outside development builds.
	Debug bool

	log               *pterm.Logger
	lastShapeDuration time.Duration

	// outBuf is the glyph output buffer reused across Shape calls so that
	// steady-state shaping does not allocate a fresh slice per call (§5).
	// Its contents are only valid until the next call to Shape.
	outBuf []GlyphInfo
}

// New builds a Shaper over stack, which must end with a last-resort font
// capable of producing some glyph for any codepoint.
func New(stack FontStack, cfg Config) *Shaper {
	lib := NewLibrary()
	s := &Shaper{
		cfg:     cfg,
		lib:     lib,
		pairs:   newFontPairCache(lib, stack),
		metrics: newMetricsCache(),
		log:     pterm.DefaultLogger.WithLevel(pterm.LogLevelWarn),
	}
	s.hb.SetFontCacheSize(64)
	return s
}

// Shape shapes text against the font stack, starting at slot 0. no_glyphs
// collects codepoints that reached the last-resort slot without a glyph,
// so the caller can trigger asynchronous font discovery.
func (s *Shaper) Shape(text string, size, dpi float64, noGlyphs *[]rune, presentation *Presentation) ([]GlyphInfo, error) {
	start := time.Now()
	s.outBuf = s.outBuf[:0]
	glyphs, err := s.doShape(0, text, size, dpi, presentation, noGlyphs)
	s.lastShapeDuration = time.Since(start)
	return glyphs, err
}

// LastShapeDuration reports the wall-clock duration of the most recent
// call to Shape. No histogram/metrics-emission library is present in this
// project's dependency stack, so callers that want a distribution should
// sample this themselves.
func (s *Shaper) LastShapeDuration() time.Duration { return s.lastShapeDuration }

func (s *Shaper) logRecursiveFallbackFailure(fragment string, err error) {
	s.log.Warn(fmt.Sprintf("recursive fallback failed for %q: %v", fragment, err))
}
