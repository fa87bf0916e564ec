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
	"github.com/jetsetilly/gopher8/hardware/preferences"
)

// CalcRate returns the number of cycles per second over the duration (in
// seconds). The accuracy value is the rate as a percentage of the rate the
// emulation would run at with the supplied preferences when paced.
func CalcRate(prf *preferences.Preferences, cycles uint64, duration float64) (rate float64, accuracy float64) {
	rate = float64(cycles) / duration

	target := float64(prf.CycleRate.Get().(int))
	if prf.Sync() == preferences.SyncFrame {
		target = float64(prf.CyclesPerFrame.Get().(int) * preferences.FrameRate)
	}

	if target > 0 {
		accuracy = 100 * rate / target
	}

	return rate, accuracy
}
