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

package gui

import "github.com/jetsetilly/gopher8/hardware"

// GUI defines the operations that can be performed on visual user interfaces.
// A GUI is the Presentation, Input and Audio collaborator of the emulation.
type GUI interface {
	hardware.Presentation
	hardware.Input
	hardware.Audio

	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinal error returned if GUI does no support requested feature.
const (
	UnsupportedGuiFeature = "gui: unsupported feature: %v"
)
