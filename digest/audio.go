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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware"
)

// Audio creates a digest of the sequence of tone starts and stops.
type Audio struct {
	next hardware.Audio

	digest [sha1.Size]byte
	buffer [sha1.Size + 1]byte
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// next argument can be nil.
func NewAudio(next hardware.Audio) *Audio {
	return &Audio{next: next}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

func (dig *Audio) add(v uint8) {
	copy(dig.buffer[:], dig.digest[:])
	dig.buffer[sha1.Size] = v
	dig.digest = sha1.Sum(dig.buffer[:])
}

// StartTone implements the hardware.Audio interface.
func (dig *Audio) StartTone() {
	dig.add(1)
	if dig.next != nil {
		dig.next.StartTone()
	}
}

// StopTone implements the hardware.Audio interface.
func (dig *Audio) StopTone() {
	dig.add(0)
	if dig.next != nil {
		dig.next.StopTone()
	}
}
