// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
)

// partitionClusters groups glyphs (already converted to byte-offset
// clusters) into logical clusters: adjacent glyphs sharing a cluster start
// are grouped together, and a missing glyph (glyphID == 0) is additionally
// coalesced into a preceding cluster that also ends in a missing glyph, so
// that a sequence of unmapped codepoints can be handed to the next font in
// the stack as a single sub-run.
func partitionClusters(text string, glyphs []info) []clusterGroup {
	n := len(glyphs)
	if n == 0 {
		return nil
	}

	lens := make([]int, n)
	for i := range glyphs {
		next := len(text)
		if i+1 < n {
			next = glyphs[i+1].cluster
		}
		lens[i] = next - glyphs[i].cluster
	}

	var groups []clusterGroup
	i := 0
	for i < n {
		j := i + 1
		for j < n && glyphs[j].cluster == glyphs[i].cluster {
			j++
		}
		group := clusterGroup{startByte: glyphs[i].cluster}
		for k := i; k < j; k++ {
			group.length += lens[k]
			group.glyphs = append(group.glyphs, glyphs[k])
		}
		if len(groups) > 0 {
			prev := &groups[len(groups)-1]
			prevLast := prev.glyphs[len(prev.glyphs)-1]
			if prevLast.glyphID == 0 && group.glyphs[0].glyphID == 0 {
				prev.length += group.length
				prev.glyphs = append(prev.glyphs, group.glyphs...)
				i = j
				continue
			}
		}
		groups = append(groups, group)
		i = j
	}
	return groups
}

func groupHasMissing(g clusterGroup) bool {
	for _, gl := range g.glyphs {
		if gl.glyphID == 0 {
			return true
		}
	}
	return false
}

// isUTF8Boundary reports whether byte offset n within s falls on a UTF-8
// rune boundary.
func isUTF8Boundary(s string, n int) bool {
	if n == len(s) {
		return true
	}
	if n < 0 || n > len(s) {
		return false
	}
	return utf8.RuneStart(s[n])
}

// firstGraphemeBytes returns the first grapheme cluster of s, falling back
// to s itself if segmentation can't identify one.
func firstGraphemeBytes(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	var seg segmenter.Segmenter
	seg.Init(runes)
	it := seg.GraphemeIterator()
	if !it.Next() {
		return s
	}
	g := it.Grapheme()
	end := g.Offset + len(g.Text)
	if end <= 0 || end > len(runes) {
		return s
	}
	return string(runes[g.Offset:end])
}
