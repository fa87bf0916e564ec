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

package termplay_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestFrame(t *testing.T) {
	var px display.Pixels

	// column 0 top row only, column 1 bottom row only, column 2 both
	px[0] = 1
	px[display.Width+1] = 1
	px[2] = 1
	px[display.Width+2] = 1

	frm := termplay.Frame(px)
	lines := strings.Split(frm, "\r\n")
	test.DemandEquality(t, len(lines), display.Height/2)

	first := []rune(lines[0])
	test.DemandEquality(t, len(first), display.Width)
	test.ExpectEquality(t, first[0], '▀')
	test.ExpectEquality(t, first[1], '▄')
	test.ExpectEquality(t, first[2], '█')
	test.ExpectEquality(t, first[3], ' ')

	test.ExpectEquality(t, strings.TrimSpace(lines[1]), "")
}
