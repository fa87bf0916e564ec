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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors.
const (
	UnrecognisedOpcode = "instructions: unrecognised opcode (%04x)"
)

// Operator identifies an instruction. The CPU switches on the Operator to
// execute an instruction.
type Operator int

// List of operators. The comment for each is the opcode pattern.
const (
	ClearScreen     Operator = iota // 00E0
	Return                          // 00EE
	Jump                            // 1NNN
	Call                            // 2NNN
	SkipEqualImm                    // 3XNN
	SkipNotEqualImm                 // 4XNN
	SkipEqualReg                    // 5XY0
	LoadImm                         // 6XNN
	AddImm                          // 7XNN
	LoadReg                         // 8XY0
	Or                              // 8XY1
	And                             // 8XY2
	Xor                             // 8XY3
	AddReg                          // 8XY4
	Sub                             // 8XY5
	ShiftRight                      // 8XY6
	SubN                            // 8XY7
	ShiftLeft                       // 8XYE
	SkipNotEqualReg                 // 9XY0
	LoadIndex                       // ANNN
	JumpV0                          // BNNN
	Random                          // CXNN
	Draw                            // DXYN
	SkipKey                         // EX9E
	SkipNotKey                      // EXA1
	LoadDelay                       // FX07
	WaitKey                         // FX0A
	SetDelay                        // FX15
	SetSound                        // FX18
	AddIndex                        // FX1E
	LoadGlyph                       // FX29
	StoreBCD                        // FX33
	StoreRegs                       // FX55
	LoadRegs                        // FX65

	numOperators
)

// Definition describes each instruction in the instruction set.
type Definition struct {
	Operator Operator
	Pattern  string
	Mnemonic string

	// template for the operands in disassembly. the strings Vx, Vy, NNN, NN
	// and N are replaced with the operand values
	Operands string

	Effect Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %s [%s]", defn.Pattern, defn.Mnemonic, defn.Effect)
}

// Format the instruction in assembler notation with the operands taken from
// the opcode.
func (defn Definition) Format(opcode uint16) string {
	if defn.Operands == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, NewOperands(opcode).format(defn.Operands))
}

// Definitions for every operator, indexed by Operator.
var Definitions = [numOperators]Definition{
	ClearScreen:     {ClearScreen, "00E0", "CLS", "", Display},
	Return:          {Return, "00EE", "RET", "", Subroutine},
	Jump:            {Jump, "1NNN", "JP", "NNN", Flow},
	Call:            {Call, "2NNN", "CALL", "NNN", Subroutine},
	SkipEqualImm:    {SkipEqualImm, "3XNN", "SE", "Vx, NN", Flow},
	SkipNotEqualImm: {SkipNotEqualImm, "4XNN", "SNE", "Vx, NN", Flow},
	SkipEqualReg:    {SkipEqualReg, "5XY0", "SE", "Vx, Vy", Flow},
	LoadImm:         {LoadImm, "6XNN", "LD", "Vx, NN", Register},
	AddImm:          {AddImm, "7XNN", "ADD", "Vx, NN", Register},
	LoadReg:         {LoadReg, "8XY0", "LD", "Vx, Vy", Register},
	Or:              {Or, "8XY1", "OR", "Vx, Vy", Register},
	And:             {And, "8XY2", "AND", "Vx, Vy", Register},
	Xor:             {Xor, "8XY3", "XOR", "Vx, Vy", Register},
	AddReg:          {AddReg, "8XY4", "ADD", "Vx, Vy", Register},
	Sub:             {Sub, "8XY5", "SUB", "Vx, Vy", Register},
	ShiftRight:      {ShiftRight, "8XY6", "SHR", "Vx", Register},
	SubN:            {SubN, "8XY7", "SUBN", "Vx, Vy", Register},
	ShiftLeft:       {ShiftLeft, "8XYE", "SHL", "Vx", Register},
	SkipNotEqualReg: {SkipNotEqualReg, "9XY0", "SNE", "Vx, Vy", Flow},
	LoadIndex:       {LoadIndex, "ANNN", "LD", "I, NNN", Register},
	JumpV0:          {JumpV0, "BNNN", "JP", "V0, NNN", Flow},
	Random:          {Random, "CXNN", "RND", "Vx, NN", Register},
	Draw:            {Draw, "DXYN", "DRW", "Vx, Vy, N", Display},
	SkipKey:         {SkipKey, "EX9E", "SKP", "Vx", Input},
	SkipNotKey:      {SkipNotKey, "EXA1", "SKNP", "Vx", Input},
	LoadDelay:       {LoadDelay, "FX07", "LD", "Vx, DT", Timer},
	WaitKey:         {WaitKey, "FX0A", "LD", "Vx, K", Input},
	SetDelay:        {SetDelay, "FX15", "LD", "DT, Vx", Timer},
	SetSound:        {SetSound, "FX18", "LD", "ST, Vx", Timer},
	AddIndex:        {AddIndex, "FX1E", "ADD", "I, Vx", Register},
	LoadGlyph:       {LoadGlyph, "FX29", "LD", "F, Vx", Memory},
	StoreBCD:        {StoreBCD, "FX33", "LD", "B, Vx", Memory},
	StoreRegs:       {StoreRegs, "FX55", "LD", "[I], Vx", Memory},
	LoadRegs:        {LoadRegs, "FX65", "LD", "Vx, [I]", Memory},
}

// Decode the opcode. Returns the UnrecognisedOpcode error if the opcode does
// not match any instruction.
func Decode(opcode uint16) (Definition, error) {
	op, ok := classify(opcode)
	if !ok {
		return Definition{}, curated.Errorf(UnrecognisedOpcode, opcode)
	}
	return Definitions[op], nil
}

// classify by top nibble and then by low nibble or low byte
func classify(opcode uint16) (Operator, bool) {
	lowNibble := opcode & 0x000f
	lowByte := opcode & 0x00ff

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			return ClearScreen, true
		case 0x00ee:
			return Return, true
		}
	case 0x1:
		return Jump, true
	case 0x2:
		return Call, true
	case 0x3:
		return SkipEqualImm, true
	case 0x4:
		return SkipNotEqualImm, true
	case 0x5:
		if lowNibble == 0x0 {
			return SkipEqualReg, true
		}
	case 0x6:
		return LoadImm, true
	case 0x7:
		return AddImm, true
	case 0x8:
		switch lowNibble {
		case 0x0:
			return LoadReg, true
		case 0x1:
			return Or, true
		case 0x2:
			return And, true
		case 0x3:
			return Xor, true
		case 0x4:
			return AddReg, true
		case 0x5:
			return Sub, true
		case 0x6:
			return ShiftRight, true
		case 0x7:
			return SubN, true
		case 0xe:
			return ShiftLeft, true
		}
	case 0x9:
		if lowNibble == 0x0 {
			return SkipNotEqualReg, true
		}
	case 0xa:
		return LoadIndex, true
	case 0xb:
		return JumpV0, true
	case 0xc:
		return Random, true
	case 0xd:
		return Draw, true
	case 0xe:
		switch lowByte {
		case 0x9e:
			return SkipKey, true
		case 0xa1:
			return SkipNotKey, true
		}
	case 0xf:
		switch lowByte {
		case 0x07:
			return LoadDelay, true
		case 0x0a:
			return WaitKey, true
		case 0x15:
			return SetDelay, true
		case 0x18:
			return SetSound, true
		case 0x1e:
			return AddIndex, true
		case 0x29:
			return LoadGlyph, true
		case 0x33:
			return StoreBCD, true
		case 0x55:
			return StoreRegs, true
		case 0x65:
			return LoadRegs, true
		}
	}

	return 0, false
}
