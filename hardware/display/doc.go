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

// Package display implements the 64x32 monochrome framebuffer of the CHIP-8.
//
// Pixels are stored row-major, one byte per pixel, each byte either zero or
// one. Sprites are drawn with XOR and the framebuffer reports whether any lit
// pixel was turned off by the drawing (a collision).
//
// How a sprite that crosses the edge of the screen is drawn is decided by the
// EdgeMode. See the EdgeMode type for details.
package display
