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

// Package termplay implements the gui.GUI interface for a text terminal. The
// framebuffer is drawn with unicode half-block characters, so that each line
// of text shows two rows of pixels, and the tone is signalled with the
// terminal bell.
//
// Terminals do not report key releases. A key is therefore considered to be
// held for HoldDuration after the most recent time the key was reported.
// Terminal key repeat keeps a key held for as long as it is pressed.
package termplay
