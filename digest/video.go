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
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video creates a digest of every framebuffer presented to it.
type Video struct {
	next hardware.Presentation

	digest [sha1.Size]byte

	// the previous digest followed by the pixels of the frame
	buffer [sha1.Size + display.Width*display.Height]byte

	Frames int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// next argument can be nil.
func NewVideo(next hardware.Presentation) *Video {
	return &Video{next: next}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.Frames = 0
}

// Present implements the hardware.Presentation interface.
func (dig *Video) Present(pixels display.Pixels) error {
	copy(dig.buffer[:], dig.digest[:])
	copy(dig.buffer[sha1.Size:], pixels[:])
	dig.digest = sha1.Sum(dig.buffer[:])
	dig.Frames++

	if dig.next != nil {
		return dig.next.Present(pixels)
	}
	return nil
}
