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
	"sort"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Disassembly is the disassembled program.
type Disassembly struct {
	// the program as it would be in memory
	mem [memory.MemorySize]uint8

	// address of the first byte after the program
	end int

	entries map[uint16]*Entry
	labels  map[uint16]string
}

// FromProgram disassembles the program image as it would be loaded into
// memory.
func FromProgram(program []uint8) (*Disassembly, error) {
	if len(program) > memory.MaxProgramLen {
		return nil, curated.Errorf("disassembly: %v", curated.Errorf(memory.ProgramTooLarge, len(program), memory.MaxProgramLen))
	}

	dsm := &Disassembly{
		end:     memory.ProgramOrigin + len(program),
		entries: make(map[uint16]*Entry),
		labels:  make(map[uint16]string),
	}
	copy(dsm.mem[memory.ProgramOrigin:], program)

	for a := memory.ProgramOrigin; a+1 < dsm.end; a += 2 {
		dsm.decode(uint16(a))
	}

	dsm.flow(memory.ProgramOrigin)

	return dsm, nil
}

// decode the address and add it to the list of entries. entries that already
// exist are not decoded again
func (dsm *Disassembly) decode(address uint16) *Entry {
	if e, ok := dsm.entries[address]; ok {
		return e
	}

	e := &Entry{
		Address: address,
		Opcode:  uint16(dsm.mem[address])<<8 | uint16(dsm.mem[address+1]),
		Level:   EntryLevelUndecoded,
	}

	if defn, err := instructions.Decode(e.Opcode); err == nil {
		e.Defn = &defn
		e.Level = EntryLevelDecoded
	}

	dsm.entries[address] = e

	return e
}

// inside reports whether an instruction at address is entirely inside the
// program
func (dsm *Disassembly) inside(address uint16) bool {
	return int(address) >= memory.ProgramOrigin && int(address)+1 < dsm.end
}

// flow follows the program from the start address, blessing every entry it
// reaches
func (dsm *Disassembly) flow(start uint16) {
	queue := []uint16{start}

	for len(queue) > 0 {
		address := queue[0]
		queue = queue[1:]

		if !dsm.inside(address) {
			continue
		}

		e := dsm.decode(address)
		if e.Level != EntryLevelDecoded {
			continue
		}
		e.Level = EntryLevelBlessed

		ops := instructions.NewOperands(e.Opcode)

		switch e.Defn.Operator {
		case instructions.Jump:
			dsm.label(ops.NNN, "L")
			queue = append(queue, ops.NNN)
		case instructions.Call:
			dsm.label(ops.NNN, "S")
			queue = append(queue, ops.NNN, address+2)
		case instructions.Return, instructions.JumpV0:
			// flow cannot be followed
		case instructions.SkipEqualImm, instructions.SkipNotEqualImm,
			instructions.SkipEqualReg, instructions.SkipNotEqualReg,
			instructions.SkipKey, instructions.SkipNotKey:
			queue = append(queue, address+2, address+4)
		default:
			queue = append(queue, address+2)
		}
	}
}

func (dsm *Disassembly) label(address uint16, prefix string) {
	if _, ok := dsm.labels[address]; !ok {
		dsm.labels[address] = fmt.Sprintf("%s%03X", prefix, address)
	}
}

// Get the entry at the address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.entries[address]
	return e, ok
}

// Label returns the label for the address. Empty string if there is no label.
func (dsm *Disassembly) Label(address uint16) string {
	return dsm.labels[address]
}

// Entries returns every entry in address order.
func (dsm *Disassembly) Entries() []*Entry {
	l := make([]*Entry, 0, len(dsm.entries))
	for _, e := range dsm.entries {
		l = append(l, e)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Address < l[j].Address
	})
	return l
}
