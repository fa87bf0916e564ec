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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecode(t *testing.T) {
	var cases = []struct {
		opcode   uint16
		operator instructions.Operator
	}{
		{0x00e0, instructions.ClearScreen},
		{0x00ee, instructions.Return},
		{0x1234, instructions.Jump},
		{0x2abc, instructions.Call},
		{0x3a12, instructions.SkipEqualImm},
		{0x4a12, instructions.SkipNotEqualImm},
		{0x5ab0, instructions.SkipEqualReg},
		{0x6005, instructions.LoadImm},
		{0x7001, instructions.AddImm},
		{0x8120, instructions.LoadReg},
		{0x8121, instructions.Or},
		{0x8122, instructions.And},
		{0x8123, instructions.Xor},
		{0x8124, instructions.AddReg},
		{0x8125, instructions.Sub},
		{0x8126, instructions.ShiftRight},
		{0x8127, instructions.SubN},
		{0x812e, instructions.ShiftLeft},
		{0x9120, instructions.SkipNotEqualReg},
		{0xa2f0, instructions.LoadIndex},
		{0xb300, instructions.JumpV0},
		{0xc3ff, instructions.Random},
		{0xd015, instructions.Draw},
		{0xe39e, instructions.SkipKey},
		{0xe3a1, instructions.SkipNotKey},
		{0xf307, instructions.LoadDelay},
		{0xf30a, instructions.WaitKey},
		{0xf315, instructions.SetDelay},
		{0xf318, instructions.SetSound},
		{0xf31e, instructions.AddIndex},
		{0xf329, instructions.LoadGlyph},
		{0xf333, instructions.StoreBCD},
		{0xf355, instructions.StoreRegs},
		{0xf365, instructions.LoadRegs},
	}

	for _, c := range cases {
		defn, err := instructions.Decode(c.opcode)
		if test.ExpectSuccess(t, err, c.opcode) {
			test.ExpectEquality(t, defn.Operator, c.operator, c.opcode)
		}
	}
}

func TestUnrecognised(t *testing.T) {
	for _, opcode := range []uint16{0x0000, 0x0123, 0x00e1, 0x5121, 0x8128, 0x812f, 0x9121, 0xe300, 0xf300, 0xffff} {
		_, err := instructions.Decode(opcode)
		test.ExpectSuccess(t, curated.Is(err, instructions.UnrecognisedOpcode), opcode)
	}
}

func TestOperands(t *testing.T) {
	ops := instructions.NewOperands(0xd12f)
	test.ExpectEquality(t, ops.X, uint8(0x1))
	test.ExpectEquality(t, ops.Y, uint8(0x2))
	test.ExpectEquality(t, ops.N, uint8(0xf))
	test.ExpectEquality(t, ops.NN, uint8(0x2f))
	test.ExpectEquality(t, ops.NNN, uint16(0x12f))
}

func TestFormat(t *testing.T) {
	var cases = []struct {
		opcode uint16
		asm    string
	}{
		{0x00e0, "CLS"},
		{0x1234, "JP 0x234"},
		{0x6a05, "LD VA, 0x05"},
		{0x8124, "ADD V1, V2"},
		{0xa2f0, "LD I, 0x2f0"},
		{0xd015, "DRW V0, V1, 5"},
		{0xf30a, "LD V3, K"},
		{0xf355, "LD [I], V3"},
	}

	for _, c := range cases {
		defn, err := instructions.Decode(c.opcode)
		test.DemandSuccess(t, err, c.opcode)
		test.ExpectEquality(t, defn.Format(c.opcode), c.asm)
	}
}
