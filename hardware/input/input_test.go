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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	var kp input.Keypad

	_, ok := kp.AnyPressed()
	test.ExpectFailure(t, ok)

	var s input.Snapshot
	s[0xa] = true
	s[0x3] = true
	kp.Latch(s)

	test.ExpectSuccess(t, kp.IsPressed(0xa))
	test.ExpectSuccess(t, kp.IsPressed(0x1a))
	test.ExpectFailure(t, kp.IsPressed(0xb))

	k, ok := kp.AnyPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x3))

	test.ExpectEquality(t, kp.String(), "---3------A-----")

	// latch overwrites wholesale
	kp.Latch(input.Snapshot{})
	test.ExpectFailure(t, kp.IsPressed(0xa))
}
