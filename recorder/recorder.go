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
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
)

// Recorder records the keys reported by another hardware.Input. It
// implements the hardware.Input interface itself.
type Recorder struct {
	input  hardware.Input
	c      *hardware.Chip8
	digest *digest.Video

	loader romloader.Loader
	seed   int64

	output *os.File

	last    input.Snapshot
	started bool

	// the first error encountered while writing entries
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The video digest should be the Presentation used by the emulation.
func NewRecorder(transcript string, c *hardware.Chip8, in hardware.Input, dig *digest.Video, loader romloader.Loader, seed int64) (*Recorder, error) {
	if c == nil || in == nil || dig == nil {
		return nil, curated.Errorf("recorder: %v", "incomplete recording hardware")
	}

	if !loader.HasLoaded() {
		return nil, curated.Errorf("recorder: %v", "program has not been loaded")
	}

	// we don't want the transcript to be overwritten
	if _, err := os.Stat(transcript); err == nil {
		return nil, curated.Errorf("recorder: file already exists (%s)", transcript)
	}

	rec := &Recorder{
		input:  in,
		c:      c,
		digest: dig,
		loader: loader,
		seed:   seed,
	}

	var err error
	rec.output, err = os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	err = rec.writeHeader()
	if err != nil {
		_ = rec.output.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", transcript)

	return rec, nil
}

// Keys implements the hardware.Input interface.
func (rec *Recorder) Keys() input.Snapshot {
	keys := rec.input.Keys()

	if rec.err == nil && (!rec.started || keys != rec.last) {
		rec.err = rec.writeEntry(keys.String())
		rec.started = true
		rec.last = keys
	}

	return keys
}

// QuitRequested implements the hardware.Input interface.
func (rec *Recorder) QuitRequested() bool {
	return rec.input.QuitRequested()
}

// End the recording and close the transcript. Returns the first error
// encountered during the recording.
func (rec *Recorder) End() error {
	if rec.err == nil {
		rec.err = rec.writeEntry(keysEnd)
	}

	if err := rec.output.Close(); err != nil && rec.err == nil {
		rec.err = curated.Errorf("recorder: %v", err)
	}

	return rec.err
}
