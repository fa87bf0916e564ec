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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the most recently executed instruction.
type Result struct {
	Address uint16
	Opcode  uint16
	Defn    instructions.Definition

	// the instruction is FX0A and no key was pressed. the PC has not moved
	Waiting bool
}

func (r Result) String() string {
	if r.Defn.Mnemonic == "" {
		return fmt.Sprintf("%#03x %04x ???", r.Address, r.Opcode)
	}
	return fmt.Sprintf("%#03x %04x %s", r.Address, r.Opcode, r.Defn.Format(r.Opcode))
}
