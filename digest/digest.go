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

// Package digest is used to create mathematical hashes of the emulation
// output. The hashes are chained, each hash is created from the previous hash
// and the new data, so the final hash represents the entire output of the
// emulation.
//
// Video implements the hardware.Presentation interface and Audio implements
// the hardware.Audio interface. Both pass the output on to another
// implementation if one is given.
package digest

// Digest implementations compute a hash of the emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
