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

// Package cpu emulates the CHIP-8 interpreter. The CPU type holds the
// registers and executes one instruction per call to ExecuteInstruction().
//
// The CPU reaches the rest of the machine through the interfaces defined in
// this package. Errors are fatal to the emulation and are always detected
// before any register or memory is changed, so the state of the machine after
// an error is the state as it was before the failing instruction.
//
// Flag writes to VF always happen after the result has been stored. If the
// destination register is also VF then the flag value is what remains.
package cpu
