// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package display_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

// the glyph for zero in the built-in font
var glyph0 = []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

func countLit(p *display.Pixels) int {
	var n int
	for _, v := range p {
		n += int(v)
	}
	return n
}

func TestDrawSprite(t *testing.T) {
	fb := display.NewFramebuffer(display.EdgeClip)

	collision := fb.DrawSprite(10, 5, glyph0)
	test.ExpectEquality(t, collision, false)
	test.ExpectEquality(t, fb.DrawFlag, true)
	test.ExpectEquality(t, countLit(&fb.Pixels), 14)

	test.ExpectSuccess(t, fb.Pixels.Lit(10, 5))
	test.ExpectSuccess(t, fb.Pixels.Lit(13, 5))
	test.ExpectFailure(t, fb.Pixels.Lit(14, 5))
	test.ExpectSuccess(t, fb.Pixels.Lit(10, 6))
	test.ExpectFailure(t, fb.Pixels.Lit(11, 6))
}

func TestDrawSpriteSelfInverse(t *testing.T) {
	for _, edge := range []display.EdgeMode{display.EdgeClip, display.EdgeWrap, display.EdgeBleed} {
		fb := display.NewFramebuffer(edge)

		// a pre-existing pattern that must be restored
		fb.DrawSprite(0, 0, []uint8{0xaa, 0x55})
		before := fb.Pixels

		test.ExpectEquality(t, fb.DrawSprite(60, 30, glyph0), false, edge)
		test.ExpectEquality(t, fb.DrawSprite(60, 30, glyph0), true, edge)
		test.ExpectEquality(t, fb.Pixels, before, edge)
	}
}

func TestDrawSpriteZeroBytes(t *testing.T) {
	fb := display.NewFramebuffer(display.EdgeClip)
	fb.DrawSprite(0, 0, []uint8{0xff})
	before := fb.Pixels
	fb.DrawFlag = false

	collision := fb.DrawSprite(0, 0, []uint8{0x00, 0x00, 0x00})
	test.ExpectEquality(t, collision, false)
	test.ExpectEquality(t, fb.Pixels, before)
	test.ExpectEquality(t, fb.DrawFlag, true)
}

func TestClear(t *testing.T) {
	fb := display.NewFramebuffer(display.EdgeClip)
	fb.DrawSprite(0, 0, glyph0)
	fb.DrawFlag = false
	fb.Clear()
	test.ExpectEquality(t, countLit(&fb.Pixels), 0)
	test.ExpectEquality(t, fb.DrawFlag, true)
}

func TestEdgeClip(t *testing.T) {
	fb := display.NewFramebuffer(display.EdgeClip)

	// start coordinates wrap
	fb.DrawSprite(64+1, 32+2, []uint8{0x80})
	test.ExpectSuccess(t, fb.Pixels.Lit(1, 2))

	// pixels beyond the right and bottom edges are dropped
	fb.Clear()
	fb.DrawSprite(62, 31, []uint8{0xff, 0xff})
	test.ExpectEquality(t, countLit(&fb.Pixels), 2)
	test.ExpectSuccess(t, fb.Pixels.Lit(62, 31))
	test.ExpectSuccess(t, fb.Pixels.Lit(63, 31))
}

func TestEdgeWrap(t *testing.T) {
	fb := display.NewFramebuffer(display.EdgeWrap)
	fb.DrawSprite(62, 31, []uint8{0xff, 0xff})
	test.ExpectEquality(t, countLit(&fb.Pixels), 16)
	test.ExpectSuccess(t, fb.Pixels.Lit(63, 31))
	test.ExpectSuccess(t, fb.Pixels.Lit(0, 31))
	test.ExpectSuccess(t, fb.Pixels.Lit(5, 0))
}

func TestEdgeBleed(t *testing.T) {
	fb := display.NewFramebuffer(display.EdgeBleed)

	// pixels past the right edge appear at the start of the next row
	fb.DrawSprite(62, 0, []uint8{0xf0})
	test.ExpectSuccess(t, fb.Pixels.Lit(62, 0))
	test.ExpectSuccess(t, fb.Pixels.Lit(63, 0))
	test.ExpectSuccess(t, fb.Pixels.Lit(0, 1))
	test.ExpectSuccess(t, fb.Pixels.Lit(1, 1))

	// pixels beyond the end of the framebuffer are dropped
	fb.Clear()
	fb.DrawSprite(0, 31, []uint8{0xff, 0xff})
	test.ExpectEquality(t, countLit(&fb.Pixels), 8)

	// the start coordinate is not wrapped. an x of 70 is the seventh pixel
	// of the next row
	fb.Clear()
	fb.DrawSprite(70, 0, []uint8{0x80})
	test.ExpectSuccess(t, fb.Pixels.Lit(6, 1))
	test.ExpectEquality(t, countLit(&fb.Pixels), 1)

	// the same sprite in CLIP mode wraps the start coordinate
	fb = display.NewFramebuffer(display.EdgeClip)
	fb.DrawSprite(70, 0, []uint8{0x80})
	test.ExpectSuccess(t, fb.Pixels.Lit(6, 0))
}

func TestParseEdgeMode(t *testing.T) {
	m, err := display.ParseEdgeMode("wrap")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, display.EdgeWrap)
	test.ExpectEquality(t, m.String(), "WRAP")

	_, err = display.ParseEdgeMode("fold")
	test.ExpectFailure(t, err)
}

func TestPixelsString(t *testing.T) {
	var p display.Pixels
	p[0] = 1
	s := p.String()
	test.ExpectEquality(t, len(s), (display.Width+1)*display.Height)
	test.ExpectEquality(t, s[:3], "#..")
}
