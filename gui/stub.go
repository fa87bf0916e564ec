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

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Stub is a GUI that presents nothing and plays nothing. It is used when the
// emulation is run headless. The most recently presented pixels and the
// number of tone transitions are retained.
type Stub struct {
	Keyboard

	// the end of the emulation is requested once the deadline has passed. a
	// zero deadline means the stub never requests the end of the emulation
	deadline time.Time

	Pixels   display.Pixels
	Presents int
	Sounding bool
	Tones    int
}

// NewStub is the preferred method of initialisation for the Stub type. A
// duration of zero or less means that there is no deadline.
func NewStub(duration time.Duration) *Stub {
	stb := &Stub{}
	if duration > 0 {
		stb.deadline = time.Now().Add(duration)
	}
	return stb
}

// Present implements the hardware.Presentation interface.
func (stb *Stub) Present(pixels display.Pixels) error {
	stb.Pixels = pixels
	stb.Presents++
	return nil
}

// StartTone implements the hardware.Audio interface.
func (stb *Stub) StartTone() {
	stb.Sounding = true
	stb.Tones++
}

// StopTone implements the hardware.Audio interface.
func (stb *Stub) StopTone() {
	stb.Sounding = false
}

// QuitRequested implements the hardware.Input interface.
func (stb *Stub) QuitRequested() bool {
	if !stb.deadline.IsZero() && time.Now().After(stb.deadline) {
		return true
	}
	return stb.Keyboard.QuitRequested()
}

// SetFeature implements the GUI interface.
func (stb *Stub) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	switch request {
	case ReqSetTitle, ReqSetScale, ReqSetVisibility:
		return nil
	}
	return curated.Errorf(UnsupportedGuiFeature, request)
}
