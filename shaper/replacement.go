// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"strings"

	"github.com/go-text/typesetting/segmenter"
)

const replacementChar = '�'

// synthesizeReplacement builds a string of the same grapheme count as s,
// used to recover from a failed recursive fallback shape. If s already
// consists entirely of U+FFFD, '?' is used instead so that re-shaping the
// result can never recurse back into this same path.
func synthesizeReplacement(s string) string {
	n := graphemeCount(s)
	if n == 0 {
		return ""
	}
	fill := replacementChar
	if isReplacementOnly(s) {
		fill = '?'
	}
	return strings.Repeat(string(fill), n)
}

func isReplacementOnly(s string) bool {
	for _, r := range s {
		if r != replacementChar {
			return false
		}
	}
	return true
}

func graphemeCount(s string) int {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	var seg segmenter.Segmenter
	seg.Init(runes)
	it := seg.GraphemeIterator()
	n := 0
	for it.Next() {
		n++
	}
	return n
}
