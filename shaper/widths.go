// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import "github.com/mattn/go-runewidth"

// numCells computes the terminal column width of s, clamped to the {0,1,2}
// range GlyphInfo.NumCells promises even for exotic combining sequences.
func numCells(s string) int {
	w := runewidth.StringWidth(s)
	switch {
	case w < 0:
		return 0
	case w > 2:
		return 2
	default:
		return w
	}
}
