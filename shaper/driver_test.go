// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShapeEmptyInputYieldsNoGlyphsAndNoFallbackSignal(t *testing.T) {
	s := New(oneFontStack(), Config{})
	var noGlyphs []rune
	glyphs, err := s.Shape("", 10, 72, &noGlyphs, nil)
	require.NoError(t, err)
	require.Empty(t, glyphs)
	require.Empty(t, noGlyphs)
}

func TestShapeASCIIStaysOnPrimaryFont(t *testing.T) {
	s := New(oneFontStack(), Config{})
	var noGlyphs []rune
	glyphs, err := s.Shape("abc", 10, 72, &noGlyphs, nil)
	require.NoError(t, err)
	require.Empty(t, noGlyphs)
	require.NotEmpty(t, glyphs)
	for _, g := range glyphs {
		require.Equal(t, 0, g.FontIdx, "a Latin-script regular face should cover ASCII directly")
		require.Equal(t, 1, g.NumCells)
	}
}

func TestShapeClustersAreMonotoneAndInBounds(t *testing.T) {
	s := New(oneFontStack(), Config{})
	text := "hello world"
	var noGlyphs []rune
	glyphs, err := s.Shape(text, 10, 72, &noGlyphs, nil)
	require.NoError(t, err)

	last := -1
	for _, g := range glyphs {
		require.GreaterOrEqual(t, g.Cluster, last, "clusters must be non-decreasing")
		require.True(t, g.Cluster >= 0 && g.Cluster <= len(text))
		last = g.Cluster
	}
}

func TestShapeIdeographicSpaceIsNotASpace(t *testing.T) {
	s := New(oneFontStack(), Config{})
	text := "x　x"
	var noGlyphs []rune
	glyphs, err := s.Shape(text, 10, 72, &noGlyphs, nil)
	require.NoError(t, err)
	require.NotEmpty(t, glyphs)

	found := false
	for _, g := range glyphs {
		if g.Cluster == 1 {
			found = true
			require.False(t, g.IsSpace, "an ideographic space is not the ASCII space")
		}
	}
	require.True(t, found, "expected a glyph covering the ideographic space at byte offset 1")
}

func TestShapeASCIISpaceIsMarkedIsSpace(t *testing.T) {
	s := New(oneFontStack(), Config{})
	text := "x x"
	var noGlyphs []rune
	glyphs, err := s.Shape(text, 10, 72, &noGlyphs, nil)
	require.NoError(t, err)

	sawSpace := false
	for _, g := range glyphs {
		if g.IsSpace {
			sawSpace = true
			require.Equal(t, 1, g.NumCells)
		}
	}
	require.True(t, sawSpace, "expected one glyph flagged is_space for the single ASCII space")
}

func TestShapeIsDeterministicOnAnUnchangedShaper(t *testing.T) {
	s := New(oneFontStack(), Config{})
	text := "repeatable"
	var noGlyphs1, noGlyphs2 []rune
	first, err := s.Shape(text, 10, 72, &noGlyphs1, nil)
	require.NoError(t, err)
	// Shape's result aliases the reused output buffer; copy it before the
	// second call overwrites it.
	first = append([]GlyphInfo(nil), first...)
	second, err := s.Shape(text, 10, 72, &noGlyphs2, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestShapeRejectsNaNSize(t *testing.T) {
	s := New(oneFontStack(), Config{})
	var noGlyphs []rune
	_, err := s.Shape("a", nan(), 72, &noGlyphs, nil)
	require.Error(t, err)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestMetricsSanityFilterPicksPlausibleSlot(t *testing.T) {
	s := New(oneFontStack(), Config{})
	m, err := s.Metrics(10, 72)
	require.NoError(t, err)
	require.Greater(t, m.CellHeight, 0.0)
	require.Greater(t, m.CellWidth, 0.0)
}

func TestMetricsForIdxIsCached(t *testing.T) {
	s := New(oneFontStack(), Config{})
	first, err := s.MetricsForIdx(0, 10, 72)
	require.NoError(t, err)
	second, err := s.MetricsForIdx(0, 10, 72)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestShapePreservesPairAcrossCallsOnceItHasShaped(t *testing.T) {
	s := New(oneFontStack(), Config{})
	var noGlyphs []rune
	_, err := s.Shape("a", 10, 72, &noGlyphs, nil)
	require.NoError(t, err)

	pair, loadErr, ok := s.pairs.load(0)
	require.True(t, ok)
	require.NoError(t, loadErr)
	require.True(t, pair.shapedAny, "a slot that produced a glyph must be pinned")
}
