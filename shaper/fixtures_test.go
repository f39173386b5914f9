// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	nsareg "eliasnaur.com/font/noto/sans/arabic/regular"
	"golang.org/x/image/font/gofont/goregular"
)

// ttfHandle is a FontHandle over an in-memory TTF, used to exercise the
// shaper against real parsed faces without a font database.
type ttfHandle struct {
	data  []byte
	emoji bool
}

func (h ttfHandle) Load() ([]byte, error)         { return h.data, nil }
func (h ttfHandle) AssumeEmojiPresentation() bool { return h.emoji }

func regularHandle() ttfHandle { return ttfHandle{data: goregular.TTF} }

func arabicHandle() ttfHandle { return ttfHandle{data: nsareg.TTF} }

// oneFontStack builds a FontStack whose single slot is also the
// last-resort slot.
func oneFontStack() FontStack { return FontStack{regularHandle()} }

// twoFontStack builds a stack with a distinct primary and last-resort face.
func twoFontStack() FontStack { return FontStack{arabicHandle(), regularHandle()} }
