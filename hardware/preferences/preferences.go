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

// Package preferences collates the preference values used by the hardware
// package.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// TimerSync describes how the timers are synchronised with instruction
// execution.
type TimerSync int

// List of valid TimerSync values.
const (
	// one instruction per tick of the cycle rate. timers are decremented once
	// per instruction
	SyncCycle TimerSync = iota

	// a fixed number of instructions per 60Hz frame. timers are decremented
	// once per frame
	SyncFrame
)

// TimerSyncList is the list of synchronisation modes as stored in the
// preferences file.
var TimerSyncList = []string{"CYCLE", "FRAME"}

func (s TimerSync) String() string {
	if s >= 0 && int(s) < len(TimerSyncList) {
		return TimerSyncList[s]
	}
	return "unknown timer sync"
}

// FrameRate is the rate of frames in the SyncFrame mode.
const FrameRate = 60

// Default values.
const (
	DefaultCycleRate      = 60
	DefaultCyclesPerFrame = 10
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// how sprites are drawn at the edge of the screen. one of the values in
	// display.EdgeModeList
	SpriteEdge prefs.String

	// one of the values in TimerSyncList
	TimerSync prefs.String

	// instructions per second in the SyncCycle mode. zero means unpaced
	CycleRate prefs.Int

	// instructions per frame in the SyncFrame mode
	CyclesPerFrame prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.SpriteEdge.SetHookPre(func(v prefs.Value) error {
		_, err := display.ParseEdgeMode(v.(string))
		return err
	})
	p.TimerSync.SetHookPre(func(v prefs.Value) error {
		_, err := parseTimerSync(v.(string))
		return err
	})
	p.CycleRate.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("cycle rate cannot be negative")
		}
		return nil
	})
	p.CyclesPerFrame.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("cycles per frame must be at least one")
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.spriteedge", &p.SpriteEdge)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.timersync", &p.TimerSync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cyclerate", &p.CycleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cyclesperframe", &p.CyclesPerFrame)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() error {
	if err := p.SpriteEdge.Set(display.EdgeClip.String()); err != nil {
		return err
	}
	if err := p.TimerSync.Set(SyncCycle.String()); err != nil {
		return err
	}
	if err := p.CycleRate.Set(DefaultCycleRate); err != nil {
		return err
	}
	return p.CyclesPerFrame.Set(DefaultCyclesPerFrame)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Edge returns the SpriteEdge preference as a display.EdgeMode.
func (p *Preferences) Edge() display.EdgeMode {
	m, _ := display.ParseEdgeMode(p.SpriteEdge.String())
	return m
}

// Sync returns the TimerSync preference as a TimerSync value.
func (p *Preferences) Sync() TimerSync {
	s, _ := parseTimerSync(p.TimerSync.String())
	return s
}

func parseTimerSync(s string) (TimerSync, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, v := range TimerSyncList {
		if s == v {
			return TimerSync(i), nil
		}
	}
	return SyncCycle, fmt.Errorf("unrecognised timer sync (%s)", s)
}
