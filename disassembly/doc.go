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

// Package disassembly produces assembler listings of CHIP-8 programs.
//
// Every even offset of the program is decoded as though it were an
// instruction (a linear disassembly). Because CHIP-8 programs mix data and
// code this will produce many meaningless entries. To help with this, the
// flow of the program is followed from the program origin and every entry
// that can be reached is marked as blessed. Instructions reached by the flow
// at an odd address are also added.
//
// Jumps and calls to a fixed address are given a label. Jumps through the V0
// register cannot be followed.
package disassembly
