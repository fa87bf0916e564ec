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
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/random"
)

// Sentinal errors.
const (
	FetchError     = "cpu: fetch from beyond end of memory (%#04x)"
	StackOverflow  = "cpu: stack overflow (call to %#03x from %#03x)"
	StackUnderflow = "cpu: stack underflow (return from %#03x)"
)

// StackDepth is the number of entries in the call stack.
const StackDepth = 16

// the flag register
const vf = 0xf

// CPU implements the CHIP-8 interpreter.
type CPU struct {
	V     [16]uint8
	I     uint16
	PC    uint16
	Stack [StackDepth]uint16
	SP    uint8

	// the result of the last call to ExecuteInstruction(). not updated if the
	// instruction failed to execute
	LastResult Result

	mem  Memory
	disp Display
	tmr  Timers
	keys Keypad
	rnd  random.Source
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory, disp Display, tmr Timers, keys Keypad, rnd random.Source) *CPU {
	mc := &CPU{
		mem:  mem,
		disp: disp,
		tmr:  tmr,
		keys: keys,
		rnd:  rnd,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	for i, v := range mc.V {
		s.WriteString(fmt.Sprintf("V%X=%02x ", i, v))
	}
	s.WriteString(fmt.Sprintf("I=%03x PC=%03x SP=%d", mc.I, mc.PC, mc.SP))
	return s.String()
}

// Reset registers to their initial state.
func (mc *CPU) Reset() {
	mc.V = [16]uint8{}
	mc.I = 0
	mc.PC = memory.ProgramOrigin
	mc.Stack = [StackDepth]uint16{}
	mc.SP = 0
	mc.LastResult = Result{}
}

// Fetch the opcode at the PC. Does not change the state of the CPU.
func (mc *CPU) Fetch() (uint16, error) {
	if int(mc.PC)+1 >= memory.MemorySize {
		return 0, curated.Errorf(FetchError, mc.PC)
	}

	hi, err := mc.mem.Read(mc.PC)
	if err != nil {
		return 0, curated.Errorf(FetchError, mc.PC)
	}
	lo, err := mc.mem.Read(mc.PC + 1)
	if err != nil {
		return 0, curated.Errorf(FetchError, mc.PC)
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// the PC value for a skip instruction
func (mc *CPU) skip(cond bool) uint16 {
	if cond {
		return mc.PC + 4
	}
	return mc.PC + 2
}

func flag(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}

// ExecuteInstruction fetches, decodes and executes a single instruction. The
// PC is always updated unless an error is returned or the instruction is
// waiting for a key press.
func (mc *CPU) ExecuteInstruction() error {
	opcode, err := mc.Fetch()
	if err != nil {
		return err
	}

	defn, err := instructions.Decode(opcode)
	if err != nil {
		return err
	}

	result := Result{
		Address: mc.PC,
		Opcode:  opcode,
		Defn:    defn,
	}

	ops := instructions.NewOperands(opcode)
	x := ops.X
	y := ops.Y

	// the value of the PC after the instruction. the PC is only changed at
	// the end of the function so that it is untouched on error
	nextPC := mc.PC + 2

	switch defn.Operator {
	case instructions.ClearScreen:
		mc.disp.Clear()

	case instructions.Return:
		if mc.SP == 0 {
			return curated.Errorf(StackUnderflow, mc.PC)
		}
		mc.SP--
		nextPC = mc.Stack[mc.SP]

	case instructions.Jump:
		nextPC = ops.NNN

	case instructions.Call:
		if mc.SP >= StackDepth {
			return curated.Errorf(StackOverflow, ops.NNN, mc.PC)
		}
		mc.Stack[mc.SP] = mc.PC + 2
		mc.SP++
		nextPC = ops.NNN

	case instructions.SkipEqualImm:
		nextPC = mc.skip(mc.V[x] == ops.NN)

	case instructions.SkipNotEqualImm:
		nextPC = mc.skip(mc.V[x] != ops.NN)

	case instructions.SkipEqualReg:
		nextPC = mc.skip(mc.V[x] == mc.V[y])

	case instructions.LoadImm:
		mc.V[x] = ops.NN

	case instructions.AddImm:
		mc.V[x] += ops.NN

	case instructions.LoadReg:
		mc.V[x] = mc.V[y]

	case instructions.Or:
		mc.V[x] |= mc.V[y]

	case instructions.And:
		mc.V[x] &= mc.V[y]

	case instructions.Xor:
		mc.V[x] ^= mc.V[y]

	case instructions.AddReg:
		sum := uint16(mc.V[x]) + uint16(mc.V[y])
		mc.V[x] = uint8(sum)
		mc.V[vf] = flag(sum > 0xff)

	case instructions.Sub:
		vx, vy := mc.V[x], mc.V[y]
		mc.V[x] = vx - vy
		mc.V[vf] = flag(vx >= vy)

	case instructions.ShiftRight:
		vx := mc.V[x]
		mc.V[x] = vx >> 1
		mc.V[vf] = vx & 0x01

	case instructions.SubN:
		vx, vy := mc.V[x], mc.V[y]
		mc.V[x] = vy - vx
		mc.V[vf] = flag(vy >= vx)

	case instructions.ShiftLeft:
		vx := mc.V[x]
		mc.V[x] = vx << 1
		mc.V[vf] = vx >> 7

	case instructions.SkipNotEqualReg:
		nextPC = mc.skip(mc.V[x] != mc.V[y])

	case instructions.LoadIndex:
		mc.I = ops.NNN

	case instructions.JumpV0:
		nextPC = ops.NNN + uint16(mc.V[0])

	case instructions.Random:
		mc.V[x] = mc.rnd.Byte() & ops.NN

	case instructions.Draw:
		sprite, err := mc.mem.ReadBlock(mc.I, int(ops.N))
		if err != nil {
			return err
		}
		collision := mc.disp.DrawSprite(mc.V[x], mc.V[y], sprite)
		mc.V[vf] = flag(collision)

	case instructions.SkipKey:
		nextPC = mc.skip(mc.keys.IsPressed(mc.V[x]))

	case instructions.SkipNotKey:
		nextPC = mc.skip(!mc.keys.IsPressed(mc.V[x]))

	case instructions.LoadDelay:
		mc.V[x] = mc.tmr.DelayValue()

	case instructions.WaitKey:
		if k, ok := mc.keys.AnyPressed(); ok {
			mc.V[x] = k
		} else {
			nextPC = mc.PC
			result.Waiting = true
		}

	case instructions.SetDelay:
		mc.tmr.SetDelay(mc.V[x])

	case instructions.SetSound:
		mc.tmr.SetSound(mc.V[x])

	case instructions.AddIndex:
		mc.I += uint16(mc.V[x])

	case instructions.LoadGlyph:
		mc.I = memory.FontOrigin + memory.GlyphLen*uint16(mc.V[x]&0x0f)

	case instructions.StoreBCD:
		v := mc.V[x]
		if err := mc.mem.WriteBlock(mc.I, []uint8{v / 100, (v / 10) % 10, v % 10}); err != nil {
			return err
		}

	case instructions.StoreRegs:
		if err := mc.mem.WriteBlock(mc.I, mc.V[:x+1]); err != nil {
			return err
		}

	case instructions.LoadRegs:
		b, err := mc.mem.ReadBlock(mc.I, int(x)+1)
		if err != nil {
			return err
		}
		copy(mc.V[:], b)

	default:
		return curated.Errorf(instructions.UnrecognisedOpcode, opcode)
	}

	mc.PC = nextPC
	mc.LastResult = result

	return nil
}
