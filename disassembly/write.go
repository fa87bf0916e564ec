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
	"io"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool

	// only write entries that have been reached by following the program
	Blessed bool
}

// Write the disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries() {
		if attr.Blessed && e.Level < EntryLevelBlessed {
			continue
		}
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if l := dsm.Label(e.Address); l != "" {
		if _, err := fmt.Fprintf(output, "%s:\n", l); err != nil {
			return err
		}
	}

	var s string
	if attr.ByteCode {
		s = fmt.Sprintf("%#03x  %s  %s", e.Address, e.Bytecode(), e.Instruction())
	} else {
		s = fmt.Sprintf("%#03x  %s", e.Address, e.Instruction())
	}

	// name the label of jump and call targets
	if e.Defn != nil && (e.Defn.Operator == instructions.Jump || e.Defn.Operator == instructions.Call) {
		if l := dsm.Label(e.Opcode & 0x0fff); l != "" {
			s = fmt.Sprintf("%s ; %s", s, l)
		}
	}

	_, err := fmt.Fprintln(output, s)
	return err
}
