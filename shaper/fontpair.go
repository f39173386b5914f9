// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import tsfont "github.com/go-text/typesetting/font"

// FontPair is the lazily-materialized state bound to one slot of a
// FontStack: its parsed face and whether it has ever produced a glyph.
type FontPair struct {
	Face         tsfont.Face
	Presentation Presentation
	shapedAny    bool
}

// fontPairCache owns one slot per entry in a FontStack, loading faces on
// first use. Callers never hold a slot across a recursive doShape call into
// a different slot, so no locking is needed beyond the single-threaded
// calling discipline the package as a whole requires.
type fontPairCache struct {
	lib   *Library
	stack FontStack
	slots []*FontPair
}

func newFontPairCache(lib *Library, stack FontStack) *fontPairCache {
	return &fontPairCache{lib: lib, stack: stack, slots: make([]*FontPair, len(stack))}
}

func (c *fontPairCache) len() int { return len(c.slots) }

// load materializes and returns the FontPair for idx. ok reports whether
// idx is within the stack; err is a FontLoadError from the underlying face
// parser when ok is true but loading failed.
func (c *fontPairCache) load(idx int) (pair *FontPair, err error, ok bool) {
	if idx < 0 || idx >= len(c.slots) {
		return nil, nil, false
	}
	if c.slots[idx] != nil {
		return c.slots[idx], nil, true
	}
	handle := c.stack[idx]
	face, err := c.lib.FaceFromLocator(handle)
	if err != nil {
		return nil, err, true
	}
	presentation := PresentationText
	if handle.AssumeEmojiPresentation() {
		presentation = PresentationEmoji
	}
	pair = &FontPair{Face: face, Presentation: presentation}
	c.slots[idx] = pair
	return pair, nil, true
}

// evict resets idx to empty, forcing the next load to re-materialize it.
func (c *fontPairCache) evict(idx int) {
	if idx >= 0 && idx < len(c.slots) {
		c.slots[idx] = nil
	}
}
