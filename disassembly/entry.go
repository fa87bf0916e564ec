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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
const (
	// the opcode does not decode to a valid instruction
	EntryLevelUndecoded EntryLevel = iota

	// decoded as though the entry is an instruction
	EntryLevelDecoded

	// reached by following the flow of the program
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelUndecoded:
		return "undecoded"
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return ""
}

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Opcode  uint16
	Level   EntryLevel

	// nil if Level is EntryLevelUndecoded
	Defn *instructions.Definition
}

// Bytecode returns the opcode as two hex bytes.
func (e *Entry) Bytecode() string {
	return fmt.Sprintf("%02X %02X", e.Opcode>>8, e.Opcode&0xff)
}

// Instruction returns the instruction in assembler notation.
func (e *Entry) Instruction() string {
	if e.Defn == nil {
		return fmt.Sprintf("DW %#04x", e.Opcode)
	}
	return e.Defn.Format(e.Opcode)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%#03x %s", e.Address, e.Instruction())
}
