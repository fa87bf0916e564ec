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

package hardware

import (
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
)

// Presentation receives a copy of the framebuffer whenever it changes.
type Presentation interface {
	Present(pixels display.Pixels) error
}

// Input provides the state of the keypad and reports when the user has asked
// to quit.
type Input interface {
	Keys() input.Snapshot
	QuitRequested() bool
}

// Audio is told when the tone should start and stop.
type Audio interface {
	StartTone()
	StopTone()
}
