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

package display

import (
	"fmt"
	"strings"
)

// EdgeMode describes what happens to sprite pixels that fall outside the
// framebuffer.
type EdgeMode int

// List of valid EdgeMode values.
const (
	// the start coordinates are wrapped to the screen but pixels that then
	// fall beyond the right or bottom edge are not drawn
	EdgeClip EdgeMode = iota

	// every pixel coordinate is wrapped to the opposite edge
	EdgeWrap

	// pixels are addressed as a single row-major array so pixels beyond the
	// right edge bleed into the next row. pixels beyond the end of the array
	// are not drawn
	EdgeBleed
)

// EdgeModeList is the list of edge modes as accepted by ParseEdgeMode().
var EdgeModeList = []string{"CLIP", "WRAP", "BLEED"}

func (m EdgeMode) String() string {
	if int(m) < len(EdgeModeList) && m >= 0 {
		return EdgeModeList[m]
	}
	return "unknown edge mode"
}

// ParseEdgeMode converts a string to an EdgeMode. Case insensitive.
func ParseEdgeMode(s string) (EdgeMode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, m := range EdgeModeList {
		if s == m {
			return EdgeMode(i), nil
		}
	}
	return EdgeClip, fmt.Errorf("unrecognised edge mode (%s)", s)
}
