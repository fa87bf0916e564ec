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
	"strings"
)

// Operands are the fields of an opcode. Not every instruction uses every
// field.
type Operands struct {
	X   uint8  // bits 8-11
	Y   uint8  // bits 4-7
	N   uint8  // bits 0-3
	NN  uint8  // bits 0-7
	NNN uint16 // bits 0-11
}

// NewOperands slices the opcode into its operand fields.
func NewOperands(opcode uint16) Operands {
	return Operands{
		X:   uint8((opcode & 0x0f00) >> 8),
		Y:   uint8((opcode & 0x00f0) >> 4),
		N:   uint8(opcode & 0x000f),
		NN:  uint8(opcode & 0x00ff),
		NNN: opcode & 0x0fff,
	}
}

// format the operand template of a definition with the operand values
func (ops Operands) format(template string) string {
	r := strings.NewReplacer(
		"Vx", fmt.Sprintf("V%X", ops.X),
		"Vy", fmt.Sprintf("V%X", ops.Y),
		"NNN", fmt.Sprintf("%#03x", ops.NNN),
		"NN", fmt.Sprintf("%#02x", ops.NN),
		"N", fmt.Sprintf("%d", ops.N),
	)
	return r.Replace(template)
}
