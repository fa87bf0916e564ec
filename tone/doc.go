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

// Package tone provides the sound played while the sound timer of the CHIP-8
// is running. By default this is a square wave but a sample can be loaded from
// a WAV or MP3 file instead.
//
// The tone is stored as unsigned 8-bit mono PCM data at SampleRate. The
// samples are intended to be played in a loop for as long as the tone is
// required.
package tone
