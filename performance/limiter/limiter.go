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

// Package limiter provides a way of limiting events to a fixed rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function:
//
//	for {
//		lim.Wait()
//		step()
//	}
//
// A rate of zero or less means that Wait() never blocks.
package limiter

import (
	"sync"
	"time"
)

// Limiter will trigger at the requested rate per second.
type Limiter struct {
	crit   sync.Mutex
	rate   int
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(rate)
	return lim
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(rate int) {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.rate = rate

	if lim.ticker != nil {
		lim.ticker.Stop()
		lim.ticker = nil
	}

	if rate > 0 {
		lim.ticker = time.NewTicker(time.Second / time.Duration(rate))
	}
}

// Rate returns the current trigger rate.
func (lim *Limiter) Rate() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.rate
}

func (lim *Limiter) current() *time.Ticker {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.ticker
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	if t := lim.current(); t != nil {
		<-t.C
	}
}

// HasWaited returns true if the trigger has already happened. It never blocks.
func (lim *Limiter) HasWaited() bool {
	t := lim.current()
	if t == nil {
		return true
	}
	select {
	case <-t.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() will no longer block.
func (lim *Limiter) Stop() {
	lim.SetLimit(0)
}
