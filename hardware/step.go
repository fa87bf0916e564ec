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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/preferences"
)

// Sentinal errors.
const (
	EmulationHalted = "chip8: emulation has halted"
)

// Step runs a single cycle of the emulation: fetch, decode and execute one
// instruction and then update the timers. Timers are not updated by Step() in
// the SyncFrame mode, they are updated once per frame by Run().
//
// An error is fatal and the emulation is halted. The state of the machine is
// unchanged by a failed Step().
func (c *Chip8) Step() error {
	if c.state == govern.Halted {
		return curated.Errorf(EmulationHalted)
	}

	if err := c.CPU.ExecuteInstruction(); err != nil {
		c.halt(err)
		return err
	}
	c.Cycles++

	if c.Prefs.Sync() == preferences.SyncCycle {
		c.stepTimers()
	}

	return nil
}
