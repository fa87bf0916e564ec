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

// Package timers implements the delay and sound timers of the CHIP-8. Both
// count down to zero, independently of each other, once per call to Step().
// A tone should sound for as long as the sound timer is non-zero.
package timers

import "fmt"

// Timers holds the two countdown timers.
type Timers struct {
	Delay uint8
	Sound uint8
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%d ST=%d", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Step decrements each timer that is above zero. Returns true if the sound
// timer reached zero during this step.
func (tmr *Timers) Step() (toneStop bool) {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
		toneStop = tmr.Sound == 0
	}
	return toneStop
}

// Sounding returns true if the tone should be audible.
func (tmr *Timers) Sounding() bool {
	return tmr.Sound > 0
}

// DelayValue returns the current value of the delay timer.
func (tmr *Timers) DelayValue() uint8 {
	return tmr.Delay
}

// SetDelay sets the delay timer.
func (tmr *Timers) SetDelay(v uint8) {
	tmr.Delay = v
}

// SetSound sets the sound timer.
func (tmr *Timers) SetSound(v uint8) {
	tmr.Sound = v
}
