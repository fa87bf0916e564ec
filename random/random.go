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

package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the interface used by the emulation to request random values.
type Source interface {
	// Byte returns a uniformly distributed value in the range 0 to 255
	Byte() uint8
}

// Random is the default implementation of the Source interface.
type Random struct {
	crit sync.Mutex
	rnd  *rand.Rand
	seed int64
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero will cause a seed to be chosen based on the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rnd:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used to initialise the random number generator.
func (r *Random) Seed() int64 {
	return r.seed
}

// Byte implements the Source interface.
func (r *Random) Byte() uint8 {
	r.crit.Lock()
	defer r.crit.Unlock()
	return uint8(r.rnd.Intn(256))
}

// Fixed is an implementation of the Source interface that cycles through a
// fixed sequence of values. An empty sequence always returns zero.
type Fixed struct {
	Values []uint8
	idx    int
}

// Byte implements the Source interface.
func (f *Fixed) Byte() uint8 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.idx]
	f.idx = (f.idx + 1) % len(f.Values)
	return v
}
