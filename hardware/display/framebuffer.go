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

package display

import "strings"

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// Pixels is the raw content of the framebuffer. Each cell is zero or one.
type Pixels [Width * Height]uint8

// Lit returns true if the pixel at x, y is set. Coordinates outside the
// framebuffer are never lit.
func (p *Pixels) Lit(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return p[y*Width+x] == 1
}

// String renders the pixels as lines of '#' and '.' characters.
func (p *Pixels) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if p[y*Width+x] == 1 {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Framebuffer is the CHIP-8 display memory.
type Framebuffer struct {
	Pixels Pixels

	// DrawFlag is set whenever the framebuffer changes and should be cleared
	// by whatever presents the framebuffer
	DrawFlag bool

	// the edge mode used by DrawSprite()
	Edge EdgeMode
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer(edge EdgeMode) *Framebuffer {
	return &Framebuffer{Edge: edge}
}

// Clear every pixel and set the draw flag.
func (fb *Framebuffer) Clear() {
	fb.Pixels = Pixels{}
	fb.DrawFlag = true
}

// DrawSprite XORs the sprite onto the framebuffer at x, y. Each byte of the
// sprite is one row, most significant bit leftmost. Returns true if any lit
// pixel was turned off. The draw flag is always set.
func (fb *Framebuffer) DrawSprite(x, y uint8, sprite []uint8) bool {
	var collision bool

	for row, b := range sprite {
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>bit) == 0 {
				continue
			}

			idx, ok := fb.index(int(x), int(y), bit, row)
			if !ok {
				continue
			}

			if fb.Pixels[idx] == 1 {
				collision = true
			}
			fb.Pixels[idx] ^= 1
		}
	}

	fb.DrawFlag = true

	return collision
}

// index of the pixel for the bit/row of a sprite drawn at x, y. returns false
// if the pixel is not to be drawn
func (fb *Framebuffer) index(x, y, bit, row int) (int, bool) {
	switch fb.Edge {
	case EdgeWrap:
		px := (x + bit) % Width
		py := (y + row) % Height
		return py*Width + px, true

	case EdgeBleed:
		idx := (y+row)*Width + x + bit
		return idx, idx < len(fb.Pixels)
	}

	// clip
	px := x%Width + bit
	py := y%Height + row
	if px >= Width || py >= Height {
		return 0, false
	}
	return py*Width + px, true
}
