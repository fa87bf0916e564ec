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

// Package statedump writes the state of a CHIP-8 as a graph in the Graphviz
// DOT format. The graph is produced by github.com/bradleyjkemp/memviz.
//
// Memory and the framebuffer are not included in full. Only the memory
// surrounding the program counter and the index register is included.
package statedump

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// number of bytes either side of an address to include in a Window
const windowRadius = 8

// Window is a small region of memory.
type Window struct {
	Origin uint16
	Data   []uint8
}

func newWindow(mem *memory.Memory, addr uint16) Window {
	origin := uint16(0)
	if addr > windowRadius {
		origin = addr - windowRadius
	}
	l := windowRadius * 2
	if int(origin)+l > memory.MemorySize {
		l = memory.MemorySize - int(origin)
	}
	if l <= 0 {
		return Window{Origin: origin}
	}
	data, err := mem.ReadBlock(origin, l)
	if err != nil {
		return Window{Origin: origin}
	}
	return Window{Origin: origin, Data: data}
}

// Registers of the CPU. The stack only includes the values that are in use.
type Registers struct {
	V     [16]uint8
	I     uint16
	PC    uint16
	SP    uint8
	Stack []uint16
}

// State is the information included in the graph.
type State struct {
	Cycles    uint64
	State     string
	Halt      string
	Last      string
	Registers Registers
	Delay     uint8
	Sound     uint8
	Keys      string
	AtPC      Window
	AtI       Window
}

// NewState takes a snapshot of the emulation.
func NewState(c *hardware.Chip8) *State {
	s := &State{
		Cycles: c.Cycles,
		State:  c.State().String(),
		Last:   c.CPU.LastResult.String(),
		Registers: Registers{
			V:     c.CPU.V,
			I:     c.CPU.I,
			PC:    c.CPU.PC,
			SP:    c.CPU.SP,
			Stack: append([]uint16{}, c.CPU.Stack[:c.CPU.SP]...),
		},
		Delay: c.Timers.Delay,
		Sound: c.Timers.Sound,
		Keys:  c.Keypad.String(),
		AtPC:  newWindow(c.Mem, c.CPU.PC),
		AtI:   newWindow(c.Mem, c.CPU.I),
	}

	if err := c.HaltReason(); err != nil {
		s.Halt = err.Error()
	}

	return s
}

// Write the graph of the emulation state to w.
func Write(w io.Writer, c *hardware.Chip8) {
	memviz.Map(w, NewState(c))
}

// WriteFile writes the graph of the emulation state to the named file.
func WriteFile(filename string, c *hardware.Chip8) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("statedump: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("statedump: %v", err)
		}
	}()

	Write(f, c)

	return nil
}
