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

// Package sdlplay implements the gui.GUI interface with the SDL library. The
// framebuffer is shown in a window, scaled by an integer amount, and the tone
// is played through the default audio device.
//
// Key presses are mapped to the CHIP-8 keypad with the gui.Keyboard type.
//
// SDL requires that most of its functions are called from the main thread.
// NewSdlPlay(), Service() and Destroy() must therefore only be called from the
// main thread. Present(), the tone functions and SetFeature() are safe to call
// from the emulation goroutine.
package sdlplay
