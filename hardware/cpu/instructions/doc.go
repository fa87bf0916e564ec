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

// Package instructions defines the CHIP-8 instruction set.
//
// Every instruction is two bytes, stored big-endian. Decode() classifies an
// opcode by its top nibble and then, for the classes that contain more than
// one instruction, by the low nibble or low byte. The operands are always in
// the same bit positions and are sliced from the opcode by NewOperands().
//
// The package is used by both the CPU and the disassembler.
package instructions
