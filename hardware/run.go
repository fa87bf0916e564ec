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
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// PerformanceBrake is the number of cycles between calls to the continueCheck
// function of RunForCycles().
const PerformanceBrake = 100

// Run the emulation until the user quits or an error occurs. The framebuffer
// is sent to the Presentation whenever it changes and the Audio is told when
// the tone starts and stops. Keys are latched from Input after every cycle.
//
// Returns nil if the emulation ended because of a quit request.
func (c *Chip8) Run(pres Presentation, in Input, aud Audio) error {
	if c.state == govern.Halted {
		return curated.Errorf(EmulationHalted)
	}

	c.Display.Edge = c.Prefs.Edge()
	sync := c.Prefs.Sync()

	rate := c.Prefs.CycleRate.Get().(int)
	perFrame := 1
	if sync == preferences.SyncFrame {
		perFrame = c.Prefs.CyclesPerFrame.Get().(int)
		if rate > 0 {
			rate = preferences.FrameRate
		}
	}

	lim := limiter.NewLimiter(rate)
	defer lim.Stop()

	logger.Logf(logger.Allow, "chip8", "running: timer sync %s, rate %d, sprite edge %s", sync, rate, c.Display.Edge)

	defer func() {
		if c.tone {
			aud.StopTone()
			c.tone = false
		}
	}()

	c.Keypad.Latch(in.Keys())
	c.toneStop = false
	c.state = govern.Running

	for c.state == govern.Running {
		if in.QuitRequested() {
			c.halt(nil)
			break // for loop
		}

		for i := 0; i < perFrame; i++ {
			if err := c.Step(); err != nil {
				return err
			}
		}

		if sync == preferences.SyncFrame {
			c.stepTimers()
		}

		if c.Display.DrawFlag {
			if err := pres.Present(c.Display.Pixels); err != nil {
				c.halt(err)
				return err
			}
			c.Display.DrawFlag = false
		}

		if c.toneStop {
			c.toneStop = false
			if c.tone {
				aud.StopTone()
				c.tone = false
			}
		}

		// the sound timer can also be set to zero, or to a non-zero value,
		// by an instruction
		if sounding := c.Timers.Sounding(); sounding != c.tone {
			if sounding {
				aud.StartTone()
			} else {
				aud.StopTone()
			}
			c.tone = sounding
		}

		c.Keypad.Latch(in.Keys())

		lim.Wait()
	}

	return nil
}

// RunForCycles runs the emulation without any collaborators for the number of
// instructions or until continueCheck returns a state other than
// govern.Running. The continueCheck function is called every PerformanceBrake
// cycles and may be nil. The emulation is not paced.
//
// Timers are updated as they would be by Run().
func (c *Chip8) RunForCycles(cycles uint64, continueCheck func() (govern.State, error)) error {
	if c.state == govern.Halted {
		return curated.Errorf(EmulationHalted)
	}

	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	sync := c.Prefs.Sync()
	perFrame := uint64(c.Prefs.CyclesPerFrame.Get().(int))

	c.state = govern.Running

	var brake int
	target := c.Cycles + cycles
	for c.Cycles < target {
		if err := c.Step(); err != nil {
			return err
		}

		if sync == preferences.SyncFrame && c.Cycles%perFrame == 0 {
			c.stepTimers()
		}

		brake++
		if brake >= PerformanceBrake {
			brake = 0
			state, err := continueCheck()
			if err != nil {
				c.halt(err)
				return err
			}
			if state != govern.Running {
				break // for loop
			}
		}
	}

	return nil
}
