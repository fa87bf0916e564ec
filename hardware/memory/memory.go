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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Sub-ranges of the address space.
const (
	MemorySize    = 4096
	FontOrigin    = 0x000
	FontLen       = 80
	GlyphLen      = 5
	ProgramOrigin = 0x200
	MaxProgramLen = MemorySize - ProgramOrigin
)

// Sentinal errors.
const (
	ProgramTooLarge = "memory: program too large (%d bytes, max %d)"
	AddressError    = "memory: address out of range (%#04x)"
)

// the built-in hexadecimal font. each glyph is four pixels wide, stored in
// the high nibble of each byte
var font = [FontLen]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Memory is the CHIP-8 address space.
type Memory struct {
	data [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// font is loaded and every other address is zero.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return "4096 bytes"
}

// Reset clears memory and reloads the font.
func (mem *Memory) Reset() {
	mem.data = [MemorySize]uint8{}
	copy(mem.data[FontOrigin:], font[:])
}

// LoadProgram copies the program image into memory at ProgramOrigin. Memory
// is unchanged if the image is too large.
func (mem *Memory) LoadProgram(program []uint8) error {
	if len(program) > MaxProgramLen {
		return curated.Errorf(ProgramTooLarge, len(program), MaxProgramLen)
	}
	copy(mem.data[ProgramOrigin:], program)
	return nil
}

// Read a single byte.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= MemorySize {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.data[address], nil
}

// Write a single byte.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= MemorySize {
		return curated.Errorf(AddressError, address)
	}
	mem.data[address] = data
	return nil
}

// ReadBlock returns a copy of length bytes beginning at address. The whole
// block must be inside memory.
func (mem *Memory) ReadBlock(address uint16, length int) ([]uint8, error) {
	if int(address)+length > MemorySize {
		return nil, curated.Errorf(AddressError, int(address)+length-1)
	}
	b := make([]uint8, length)
	copy(b, mem.data[address:])
	return b, nil
}

// WriteBlock copies data into memory beginning at address. Memory is
// unchanged if any part of the block is outside memory.
func (mem *Memory) WriteBlock(address uint16, data []uint8) error {
	if int(address)+len(data) > MemorySize {
		return curated.Errorf(AddressError, int(address)+len(data)-1)
	}
	copy(mem.data[address:], data)
	return nil
}

// Snapshot returns a copy of the entire address space.
func (mem *Memory) Snapshot() [MemorySize]uint8 {
	return mem.data
}
