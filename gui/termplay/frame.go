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

package termplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Frame returns the pixels as text. Each line of text represents two rows of
// pixels. Lines are separated with a carriage-return and line-feed pair,
// which is necessary when the terminal is in raw mode.
func Frame(pixels display.Pixels) string {
	b := strings.Builder{}

	for y := 0; y < display.Height; y += 2 {
		if y > 0 {
			b.WriteString("\r\n")
		}
		for x := 0; x < display.Width; x++ {
			top := pixels.Lit(x, y)
			bot := pixels.Lit(x, y+1)
			switch {
			case top && bot:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bot:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
	}

	return b.String()
}
