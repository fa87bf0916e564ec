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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type machine struct {
	mc   *cpu.CPU
	mem  *memory.Memory
	fb   *display.Framebuffer
	tmr  *timers.Timers
	keys *input.Keypad
	rnd  *random.Fixed
}

// newMachine creates a CPU with the opcodes loaded at the program origin
func newMachine(t *testing.T, opcodes ...uint16) *machine {
	t.Helper()

	m := &machine{
		mem:  memory.NewMemory(),
		fb:   display.NewFramebuffer(display.EdgeClip),
		tmr:  &timers.Timers{},
		keys: &input.Keypad{},
		rnd:  &random.Fixed{},
	}
	m.mc = cpu.NewCPU(m.mem, m.fb, m.tmr, m.keys, m.rnd)

	prog := make([]uint8, 0, len(opcodes)*2)
	for _, op := range opcodes {
		prog = append(prog, uint8(op>>8), uint8(op))
	}
	test.DemandSuccess(t, m.mem.LoadProgram(prog))

	return m
}

// step executes n instructions, failing the test on error
func (m *machine) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, m.mc.ExecuteInstruction())
	}
}

// setOpcode places an opcode at the current PC
func (m *machine) setOpcode(t *testing.T, opcode uint16) {
	t.Helper()
	test.DemandSuccess(t, m.mem.WriteBlock(m.mc.PC, []uint8{uint8(opcode >> 8), uint8(opcode)}))
}
