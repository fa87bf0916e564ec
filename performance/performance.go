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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
)

// LeadTime is the amount of time the emulation runs before the measurement
// period begins.
const LeadTime = 500 * time.Millisecond

// effectively unlimited number of cycles for RunForCycles()
const unlimitedCycles = 1 << 62

// Check runs the emulation unpaced for the specified duration and writes the
// measured rate to output.
func Check(output io.Writer, profile Profile, c *hardware.Chip8, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startCycles := c.Cycles

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 1)

		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// the continueCheck function is only called every PerformanceBrake
		// cycles
		err := c.RunForCycles(unlimitedCycles, func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Halted, nil
				}
				// measurement has begun and we should record the start
				// cycle count
				startCycles = c.Cycles
			default:
			}
			return govern.Running, nil
		})
		return err
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// calculate performance
	numCycles := c.Cycles - startCycles
	rate, accuracy := CalcRate(c.Prefs, numCycles, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f cycles/sec (%d cycles in %.2f seconds) %.1f%%\n", rate, numCycles, dur.Seconds(), accuracy)))

	return nil
}
