// SPDX-License-Identifier: Unlicense OR MIT

// Package shaper turns a run of Unicode text into positioned glyphs against
// an ordered font stack, recovering from missing glyphs by recursing into
// later fonts in the stack and preserving the original byte offsets so
// callers can map glyphs back onto a terminal's cell grid.
package shaper
