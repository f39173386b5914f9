// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"math"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/exp/slices"
	"golang.org/x/image/math/fixed"
)

func appendRunes(dst *[]rune, s string) {
	if dst == nil {
		return
	}
	*dst = append(*dst, []rune(s)...)
}

// runShape shapes text against face at the given size and returns the
// backend output together with a rune-index -> byte-offset table, since
// go-text/typesetting reports cluster indices in rune units but this
// package's contract is byte offsets.
func (s *Shaper) runShape(face tsfont.Face, text string, size, dpi float64) (shaping.Output, []int) {
	runes := []rune(text)
	runeToByte := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		runeToByte[i] = b
		b += utf8.RuneLen(r)
	}
	runeToByte[len(runes)] = b

	ppem := fixed.Int26_6(math.Round(size * dpi / 72 * 64))

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    di.DirectionLTR,
		Face:         face,
		Size:         ppem,
		Script:       guessScript(runes),
		Language:     s.cfg.language(),
		FontFeatures: s.cfg.features(),
	}
	return s.hb.Shape(input), runeToByte
}

func guessScript(runes []rune) language.Script {
	for _, r := range runes {
		sc := language.LookupScript(r)
		if sc != language.Common {
			return sc
		}
	}
	return language.Latin
}

// doShape is the recursive fallback algorithm: it attempts to shape text
// at slot idx, recursing into later slots for any cluster the current slot
// could not provide a glyph for.
func (s *Shaper) doShape(idx int, text string, size, dpi float64, presentation *Presentation, noGlyphs *[]rune) ([]GlyphInfo, error) {
	last := s.pairs.len() - 1
	if last < 0 || idx > last {
		appendRunes(noGlyphs, text)
		return nil, &NoMoreFallbacks{Text: text}
	}

	cur := idx
	for presentation != nil && cur < last {
		pair, err, ok := s.pairs.load(cur)
		if !ok {
			appendRunes(noGlyphs, text)
			return nil, &NoMoreFallbacks{Text: text}
		}
		if err != nil {
			return nil, err
		}
		if pair.Presentation == *presentation {
			break
		}
		cur++
	}

	pair, err, ok := s.pairs.load(cur)
	if !ok {
		appendRunes(noGlyphs, text)
		return nil, &NoMoreFallbacks{Text: text}
	}
	if err != nil {
		return nil, err
	}

	m, err := s.MetricsForIdx(cur, size, dpi)
	if err != nil {
		return nil, err
	}
	cellWidth := m.CellWidth

	output, runeToByte := s.runShape(pair.Face, text, size, dpi)
	glyphs := make([]info, len(output.Glyphs))
	for i, g := range output.Glyphs {
		glyphs[i] = info{
			cluster:  runeToByte[g.ClusterIndex],
			glyphID:  uint32(g.GlyphID),
			xAdvance: fixedToPixels(g.XAdvance),
			yAdvance: fixedToPixels(g.YAdvance),
			xOffset:  fixedToPixels(g.XOffset),
			yOffset:  fixedToPixels(g.YOffset),
		}
	}

	if cur == last && cur != 0 {
		appendRunes(noGlyphs, text)
		if presentation != nil {
			return s.doShape(idx, text, size, dpi, nil, noGlyphs)
		}
	}

	groups := partitionClusters(text, glyphs)
	direct := 0
	bufStart := len(s.outBuf)
	if err := s.emitClusters(cur, text, groups, cellWidth, size, dpi, presentation, noGlyphs, &direct); err != nil {
		return nil, err
	}
	out := s.outBuf[bufStart:]

	// The slot's pair may have been evicted by a nested replacement-string
	// recovery shaping back at idx 0 (emitClusters' failure path below), so
	// the eviction/promotion decision re-resolves the live pair for cur
	// rather than trusting the pointer captured before recursion.
	if livePair, err, ok := s.pairs.load(cur); ok && err == nil && !livePair.shapedAny {
		if direct == 0 {
			s.pairs.evict(cur)
		} else {
			livePair.shapedAny = true
		}
	}

	return out, nil
}

// emitClusters implements §4.3 Step 6: recurse on clusters with a missing
// glyph, otherwise carve the cluster's text fragment across its glyphs and
// emit one GlyphInfo per non-zero-advance glyph. Output is appended onto
// the Shaper's reusable outBuf rather than a fresh slice per call, per §5's
// steady-state allocation guidance.
func (s *Shaper) emitClusters(idx int, text string, groups []clusterGroup, cellWidth, size, dpi float64, presentation *Presentation, noGlyphs *[]rune, direct *int) error {
	s.outBuf = slices.Grow(s.outBuf, len(groups))

	for _, grp := range groups {
		fragment := text[grp.startByte : grp.startByte+grp.length]

		if groupHasMissing(grp) {
			subStart := len(s.outBuf)
			sub, err := s.doShape(idx+1, fragment, size, dpi, presentation, noGlyphs)
			if err != nil {
				s.logRecursiveFallbackFailure(fragment, err)
				s.outBuf = s.outBuf[:subStart]
				replacement := synthesizeReplacement(fragment)
				sub, err = s.doShape(0, replacement, size, dpi, presentation, noGlyphs)
				if err != nil {
					s.outBuf = s.outBuf[:subStart]
					return &recursiveFallbackFailure{Err: err}
				}
			}
			for i := range sub {
				sub[i].Cluster += grp.startByte
			}
			continue
		}

		offset := 0
		for _, g := range grp.glyphs {
			if g.xAdvance == 0 {
				continue
			}
			remainder := fragment[offset:]
			nom := 0
			if cellWidth > 0 {
				nom = int(math.Ceil(g.xAdvance / cellWidth))
			}

			var slice string
			switch {
			case nom > 0 && nom <= len(remainder) && isUTF8Boundary(remainder, nom):
				slice = remainder[:nom]
			case len(remainder) > 0:
				slice = firstGraphemeBytes(remainder)
			default:
				slice = ""
			}

			gi := GlyphInfo{
				Cluster:  grp.startByte + offset,
				FontIdx:  idx,
				GlyphPos: g.glyphID,
				NumCells: numCells(slice),
				IsSpace:  slice == " ",
				XAdvance: g.xAdvance,
				YAdvance: g.yAdvance,
				XOffset:  g.xOffset,
				YOffset:  g.yOffset,
			}
			if s.Debug {
				if slice == "" {
					gi.Text = "__"
				} else {
					gi.Text = slice
				}
			}

			s.outBuf = append(s.outBuf, gi)
			*direct++
			offset += len(slice)
		}
	}
	return nil
}
