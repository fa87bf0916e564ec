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
	"strings"
	"sync"

	"github.com/jetsetilly/gopher8/hardware/input"
)

// Keyboard collates key events from the GUI thread for collection by the
// emulation. It implements the hardware.Input interface.
type Keyboard struct {
	crit sync.Mutex
	keys input.Snapshot
	quit bool
}

// Press registers a change in the state of the named host key. Keys that do
// not map to the CHIP-8 keypad are ignored, except for the QuitKey.
func (kb *Keyboard) Press(name string, down bool) {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	if strings.EqualFold(name, QuitKey) {
		if down {
			kb.quit = true
		}
		return
	}

	if k, ok := KeypadKey(name); ok {
		kb.keys[k] = down
	}
}

// RequestQuit has the same effect as pressing the QuitKey.
func (kb *Keyboard) RequestQuit() {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.quit = true
}

// Keys implements the hardware.Input interface.
func (kb *Keyboard) Keys() input.Snapshot {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	return kb.keys
}

// QuitRequested implements the hardware.Input interface.
func (kb *Keyboard) QuitRequested() bool {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	return kb.quit
}
