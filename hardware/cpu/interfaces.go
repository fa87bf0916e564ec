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

package cpu

// Memory is the interface to the address space.
type Memory interface {
	Read(address uint16) (uint8, error)
	ReadBlock(address uint16, length int) ([]uint8, error)
	WriteBlock(address uint16, data []uint8) error
}

// Display is the interface to the framebuffer.
type Display interface {
	Clear()
	DrawSprite(x, y uint8, sprite []uint8) bool
}

// Timers is the interface to the delay and sound timers.
type Timers interface {
	DelayValue() uint8
	SetDelay(v uint8)
	SetSound(v uint8)
}

// Keypad is the interface to the key latch.
type Keypad interface {
	IsPressed(key uint8) bool
	AnyPressed() (uint8, bool)
}
