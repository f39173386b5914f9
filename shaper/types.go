// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import "golang.org/x/image/math/fixed"

// GlyphInfo is one positioned glyph, ready for cell-grid placement.
type GlyphInfo struct {
	// Cluster is the byte offset into the original top-level text this
	// glyph's cluster begins at.
	Cluster int
	// FontIdx is the font-stack slot that produced this glyph.
	FontIdx int
	// GlyphPos is the backend glyph id.
	GlyphPos uint32
	// NumCells is the terminal column width of the covered text fragment:
	// 0, 1, or 2. Always derived from the fragment's text, never from
	// advance width.
	NumCells int
	// IsSpace is true iff the covered text fragment is a single ASCII
	// space.
	IsSpace bool

	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64

	// Text holds the literal source fragment this glyph covers, or "__"
	// when that fragment is empty. Only populated while the owning
	// Shaper's Debug field is set.
	Text string
}

// FontMetrics describes the pixel dimensions of one font stack slot at one
// size and dpi.
type FontMetrics struct {
	CellHeight         float64
	CellWidth          float64
	Descender          float64
	UnderlineThickness float64
	UnderlinePosition  float64
	// CapHeight and CapHeightRatio are nil when the backend face does not
	// expose a cap-height metric independent of ascent.
	CapHeight      *float64
	CapHeightRatio *float64
	IsScaled       bool
	Presentation   Presentation
}

// SelectedSize is the pixel geometry returned by sizing a face at a given
// point size and dpi.
type SelectedSize struct {
	Width              float64
	Height             float64
	Descender          float64
	UnderlineThickness float64
	UnderlinePosition  float64
	CapHeight          *float64
	CapHeightRatio     *float64
	IsScaled           bool
}

// info is one glyph as reported by the shaping backend, before clustering.
// cluster is a byte offset into the current sub-run.
type info struct {
	cluster  int
	glyphID  uint32
	xAdvance float64
	yAdvance float64
	xOffset  float64
	yOffset  float64
}

// clusterGroup is one or more adjacent glyphs sharing a logical cluster,
// per §4.3 Step 5's partitioning and coalescing rules.
type clusterGroup struct {
	startByte int
	length    int
	glyphs    []info
}

func fixedToPixels(v fixed.Int26_6) float64 { return float64(v) / 64 }
