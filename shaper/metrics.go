// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

var probeRunes = []rune{'M'}

// sizeFace derives the pixel geometry of pair's face at size/dpi by
// shaping a representative probe character, since go-text/typesetting has
// no mutable "set font size" call on a face: size is a property of each
// shaping.Input instead.
func (s *Shaper) sizeFace(pair *FontPair, size, dpi float64) (SelectedSize, error) {
	if math.IsNaN(size) {
		return SelectedSize{}, &SizeSetError{Size: size, DPI: dpi}
	}
	ppem := fixed.Int26_6(math.Round(size * dpi / 72 * 64))
	out := s.hb.Shape(shaping.Input{
		Text:      probeRunes,
		RunStart:  0,
		RunEnd:    len(probeRunes),
		Direction: di.DirectionLTR,
		Face:      pair.Face,
		Size:      ppem,
	})

	ascent := fixedToPixels(out.LineBounds.Ascent)
	descent := fixedToPixels(out.LineBounds.Descent)
	width := fixedToPixels(out.Advance)

	return SelectedSize{
		Width:              width,
		Height:             ascent + descent,
		Descender:          -descent,
		UnderlineThickness: descent / 5,
		UnderlinePosition:  -descent,
		IsScaled:           true,
	}, nil
}

// MetricsForIdx returns the FontMetrics for stack slot idx at size/dpi,
// consulting and populating the metrics cache.
func (s *Shaper) MetricsForIdx(idx int, size, dpi float64) (FontMetrics, error) {
	key := MetricsKey{FontIdx: idx, Size: size, DPI: uint32(dpi)}
	if m, ok := s.metrics.get(key); ok {
		return m, nil
	}

	pair, err, ok := s.pairs.load(idx)
	if !ok {
		return FontMetrics{}, &NoMoreFallbacks{}
	}
	if err != nil {
		return FontMetrics{}, err
	}

	selected, err := s.sizeFace(pair, size, dpi)
	if err != nil {
		return FontMetrics{}, &SizeSetError{Size: size, DPI: dpi, Err: err}
	}

	m := FontMetrics{
		CellHeight:         selected.Height,
		CellWidth:          selected.Width,
		Descender:          selected.Descender,
		UnderlineThickness: selected.UnderlineThickness,
		UnderlinePosition:  selected.UnderlinePosition,
		CapHeight:          selected.CapHeight,
		CapHeightRatio:     selected.CapHeightRatio,
		IsScaled:           selected.IsScaled,
		Presentation:       pair.Presentation,
	}
	if err := s.metrics.put(key, m); err != nil {
		return FontMetrics{}, err
	}
	return m, nil
}

// Metrics picks the stack slot whose cell height is plausible for
// size/dpi and returns its FontMetrics. This guards against a misconfigured
// emoji/bitmap font at slot 0 producing wildly wrong cell sizes.
func (s *Shaper) Metrics(size, dpi float64) (FontMetrics, error) {
	theoretical := size * dpi / 72
	last := s.pairs.len() - 1
	for idx := 0; idx <= last; idx++ {
		m, err := s.MetricsForIdx(idx, size, dpi)
		if err != nil {
			return FontMetrics{}, err
		}
		if theoretical == 0 || math.Abs(theoretical-m.CellHeight)/theoretical < 2.0 {
			return m, nil
		}
	}
	return s.MetricsForIdx(0, size, dpi)
}
