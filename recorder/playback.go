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

package recorder

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/input"
)

// Sentinal errors.
const (
	PlaybackHashError = "playback: unexpected output at line %d (cycle %d)"
)

type playbackEntry struct {
	cycle uint64
	keys  input.Snapshot
	end   bool
	hash  string

	// the line in the transcript the entry appears
	line int
}

// Playback reports the keys found in a transcript. It implements the
// hardware.Input interface.
type Playback struct {
	transcript string

	// information from the transcript header
	ProgramName    string
	ProgramHash    string
	Seed           int64
	TimerSync      string
	CyclesPerFrame int

	sequence []playbackEntry
	seqCt    int

	c      *hardware.Chip8
	digest *digest.Video

	keys     input.Snapshot
	finished bool
	err      error
}

func (plb *Playback) String() string {
	if len(plb.sequence) == 0 {
		return plb.transcript
	}
	end := plb.sequence[len(plb.sequence)-1].cycle
	var curr uint64
	if plb.c != nil {
		curr = plb.c.Cycles
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", curr, end, 100*(float64(curr)/float64(end)))
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	plb := &Playback{
		transcript: transcript,
	}

	buffer, err := os.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(string(buffer), "\n")
	if len(lines) < numHeaderLines {
		return nil, curated.Errorf("playback: %v", "transcript header is incomplete")
	}

	plb.ProgramName = lines[lineProgramName]
	plb.ProgramHash = lines[lineProgramHash]
	plb.TimerSync = lines[lineTimerSync]

	plb.Seed, err = strconv.ParseInt(lines[lineSeed], 10, 64)
	if err != nil {
		return nil, curated.Errorf("playback: seed: %v", err)
	}

	plb.CyclesPerFrame, err = strconv.Atoi(lines[lineCyclesPerFrame])
	if err != nil {
		return nil, curated.Errorf("playback: cycles per frame: %v", err)
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if lines[i] == "" {
			continue // for loop
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		entry := playbackEntry{line: i + 1}

		entry.cycle, err = strconv.ParseUint(toks[fieldCycle], 10, 64)
		if err != nil {
			return nil, curated.Errorf("playback: %v line %d", err, i+1)
		}

		if toks[fieldKeys] == keysEnd {
			entry.end = true
		} else {
			entry.keys, err = parseSnapshot(toks[fieldKeys])
			if err != nil {
				return nil, curated.Errorf("playback: %v line %d", err, i+1)
			}
		}

		entry.hash = toks[fieldHash]

		plb.sequence = append(plb.sequence, entry)

		if entry.end {
			break // for loop
		}
	}

	if len(plb.sequence) == 0 || !plb.sequence[len(plb.sequence)-1].end {
		return nil, curated.Errorf("playback: %v", "transcript is incomplete")
	}

	return plb, nil
}

// AttachToChip8 prepares the playback for the emulation. The video digest
// should be the Presentation used by the emulation.
func (plb *Playback) AttachToChip8(c *hardware.Chip8, dig *digest.Video) error {
	if c == nil || dig == nil {
		return curated.Errorf("playback: %v", "no playback hardware available")
	}

	// keys are latched at different cycles if the timer sync method is
	// different
	if c.Prefs.Sync().String() != plb.TimerSync {
		return curated.Errorf("playback: recording was made with %s timer sync. trying to playback with %s", plb.TimerSync, c.Prefs.Sync())
	}
	if cpf := c.Prefs.CyclesPerFrame.Get().(int); cpf != plb.CyclesPerFrame {
		return curated.Errorf("playback: recording was made with %d cycles per frame. trying to playback with %d", plb.CyclesPerFrame, cpf)
	}

	plb.c = c
	plb.digest = dig

	return nil
}

// Keys implements the hardware.Input interface.
func (plb *Playback) Keys() input.Snapshot {
	if plb.c == nil || plb.err != nil {
		return plb.keys
	}

	for plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].cycle <= plb.c.Cycles {
		entry := plb.sequence[plb.seqCt]
		plb.seqCt++

		if entry.cycle != plb.c.Cycles || entry.hash != plb.digest.Hash() {
			plb.err = curated.Errorf(PlaybackHashError, entry.line, plb.c.Cycles)
			return plb.keys
		}

		if entry.end {
			plb.finished = true
		} else {
			plb.keys = entry.keys
		}
	}

	return plb.keys
}

// QuitRequested implements the hardware.Input interface. Returns true once
// the end of the transcript has been reached or if the playback has failed.
func (plb *Playback) QuitRequested() bool {
	return plb.finished || plb.err != nil
}

// Err returns the error that caused the playback to fail.
func (plb *Playback) Err() error {
	return plb.err
}

// Finished returns true if the playback has reached the end of the
// transcript.
func (plb *Playback) Finished() bool {
	return plb.finished
}
