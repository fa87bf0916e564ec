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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/test"
)

func TestUnlimited(t *testing.T) {
	lim := limiter.NewLimiter(0)
	defer lim.Stop()

	start := time.Now()
	for i := 0; i < 1000; i++ {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
	test.ExpectSuccess(t, lim.HasWaited())
}

func TestLimited(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 100)

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}

	// ten ticks at 100Hz is about 100ms
	test.ExpectSuccess(t, time.Since(start) >= 80*time.Millisecond)
}
