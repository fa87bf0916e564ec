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

// Package gui is an abstraction layer for real GUI implementations. It defines
// the GUI interface, which is the emulation's view of the user interface, and
// the types that are useful to every implementation.
//
// The Keyboard type maps host keys onto the CHIP-8 hex keypad and is safe to
// use from both the GUI thread and the emulation thread.
//
// Implementations are found in the sub-packages sdlplay and termplay. The Stub
// type is a headless implementation.
package gui
