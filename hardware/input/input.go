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

// Package input implements the 16 key hexadecimal keypad of the CHIP-8.
//
// The Keypad is a latch. It is overwritten once per cycle with a Snapshot of
// the keys as reported by the user interface and is read-only to the
// instructions.
package input

import "strings"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Snapshot is the state of every key at a single moment. Index is the key
// value 0x0 to 0xF.
type Snapshot [NumKeys]bool

func (s Snapshot) String() string {
	b := strings.Builder{}
	for k, p := range s {
		if p {
			b.WriteByte("0123456789ABCDEF"[k])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Keypad is the key latch as seen by the CPU.
type Keypad struct {
	keys Snapshot
}

func (kp *Keypad) String() string {
	return kp.keys.String()
}

// Latch overwrites the keypad state with the snapshot.
func (kp *Keypad) Latch(s Snapshot) {
	kp.keys = s
}

// IsPressed returns true if the key is pressed. Only the low nibble of key is
// used.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys[key&0x0f]
}

// AnyPressed returns the lowest numbered key that is pressed. The boolean
// return value is false if no key is pressed.
func (kp *Keypad) AnyPressed() (uint8, bool) {
	for k, p := range kp.keys {
		if p {
			return uint8(k), true
		}
	}
	return 0, false
}
