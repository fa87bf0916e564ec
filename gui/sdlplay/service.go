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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.RequestQuit()

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				scr.Press(sdl.GetKeyName(ev.Keysym.Sym), true)
			case sdl.KEYUP:
				scr.Press(sdl.GetKeyName(ev.Keysym.Sym), false)
			}
		}
	}

	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequests(r)
	default:
	}

	if err := scr.render(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}

	if scr.aud != nil {
		scr.aud.service()
	}

	// wait briefly so that the main thread does not spin
	sdl.Delay(1)
}
