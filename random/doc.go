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

// Package random provides the source of random numbers for the emulation. It
// should be used in preference to the math/rand package so that the random
// numbers seen by a program can be reproduced by using the same seed.
//
// The Source interface is what the CPU requires. Tests can provide their own
// implementation of the interface to make the RND instruction predictable.
package random
