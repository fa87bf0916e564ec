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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// Chip8 struct is the main container for the emulated components of the
// CHIP-8.
type Chip8 struct {
	Prefs *preferences.Preferences

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Framebuffer
	Timers  *timers.Timers
	Keypad  *input.Keypad

	// number of instructions executed
	Cycles uint64

	state govern.State

	// the error that caused the emulation to halt. nil if the emulation
	// halted because of a quit request
	haltReason error

	// whether the tone is currently sounding
	tone bool

	// the sound timer reached zero during a timer step. consumed by Run()
	toneStop bool
}

// NewChip8 creates a new CHIP-8 with the program loaded and ready to run. If
// prefs is nil then the default preferences are used.
func NewChip8(prf *preferences.Preferences, program []uint8, rnd random.Source) (*Chip8, error) {
	if prf == nil {
		var err error
		prf, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	c := &Chip8{
		Prefs:   prf,
		Mem:     memory.NewMemory(),
		Display: display.NewFramebuffer(prf.Edge()),
		Timers:  &timers.Timers{},
		Keypad:  &input.Keypad{},
		state:   govern.Initialising,
	}
	c.CPU = cpu.NewCPU(c.Mem, c.Display, c.Timers, c.Keypad, rnd)

	if err := c.Mem.LoadProgram(program); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "chip8", "program of %d bytes loaded at %#03x", len(program), memory.ProgramOrigin)

	return c, nil
}

func (c *Chip8) String() string {
	return fmt.Sprintf("%s %s [%s]", c.CPU, c.Timers, c.state)
}

// State returns the current state of the emulation.
func (c *Chip8) State() govern.State {
	return c.state
}

// HaltReason returns the error that caused the emulation to halt. Returns nil
// if the emulation has not halted or halted because of a quit request.
func (c *Chip8) HaltReason() error {
	return c.haltReason
}

func (c *Chip8) halt(err error) {
	c.state = govern.Halted
	c.haltReason = err
	if err != nil {
		logger.Log(logger.Allow, "chip8", err)
	}
}

// decrement the timers and latch the tone stop signal
func (c *Chip8) stepTimers() {
	if c.Timers.Step() {
		c.toneStop = true
	}
}
