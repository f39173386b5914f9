// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"bytes"

	tsfont "github.com/go-text/typesetting/font"
)

// Presentation selects whether a stack slot's glyphs should be treated as
// Text or Emoji form.
type Presentation uint8

const (
	PresentationText Presentation = iota
	PresentationEmoji
)

func (p Presentation) String() string {
	switch p {
	case PresentationText:
		return "Text"
	case PresentationEmoji:
		return "Emoji"
	default:
		panic("shaper: invalid Presentation")
	}
}

// FontHandle is an opaque locator for a single font, produced by the font
// database that sits outside this package. The shaping engine never
// inspects a handle beyond these two methods.
type FontHandle interface {
	// Load returns the raw bytes of the font file this handle points to.
	Load() ([]byte, error)
	// AssumeEmojiPresentation reports whether glyphs from this font should
	// default to Emoji presentation rather than Text.
	AssumeEmojiPresentation() bool
}

// FontStack is the ordered list of handles tried for a shaping request.
// Index 0 is the caller's configured primary font; the final entry must be
// a last-resort font capable of producing some glyph for any codepoint.
type FontStack []FontHandle

// Library loads font faces from handles. The go-text/typesetting parser is
// stateless, so Library mainly exists to give face loading a clear seam.
type Library struct{}

// NewLibrary constructs a Library.
func NewLibrary() *Library { return &Library{} }

// FaceFromLocator parses the bytes behind handle into a shaping-ready face.
func (l *Library) FaceFromLocator(handle FontHandle) (tsfont.Face, error) {
	raw, err := handle.Load()
	if err != nil {
		return nil, &FontLoadError{Err: err}
	}
	face, err := tsfont.ParseTTF(bytes.NewReader(raw))
	if err != nil {
		return nil, &FontLoadError{Err: err}
	}
	return face, nil
}
