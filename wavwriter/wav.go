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

// Package wavwriter records the CHIP-8 tone to a WAV file. The tone and the
// silence between tones are reconstructed from the time between the
// StartTone() and StopTone() calls.
//
// Audio data is buffered in memory in its entirety and written to disk when
// End() is called. It is therefore only suitable for short recordings.
package wavwriter

import (
	"math"
	"os"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/tone"
)

// bit depth of the WAV file
const bitDepth = 16

// WavWriter implements the hardware.Audio interface. It passes every call on
// to another hardware.Audio implementation, if one is given.
type WavWriter struct {
	crit sync.Mutex

	filename string
	tone     *tone.Tone
	next     hardware.Audio

	// Clock returns the current time. it can be replaced before the first call
	// to StartTone() for testing purposes
	Clock func() time.Time

	started  bool
	last     time.Time
	sounding bool
	phase    int

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// next argument can be nil.
func New(filename string, tn *tone.Tone, next hardware.Audio) (*WavWriter, error) {
	if tn == nil || len(tn.Samples) == 0 {
		return nil, curated.Errorf("wavwriter: %v", "no tone")
	}

	aw := &WavWriter{
		filename: filename,
		tone:     tn,
		next:     next,
		Clock:    time.Now,
	}

	return aw, nil
}

// Begin marks the start of the recording. If Begin() is not called then the
// recording starts with the first StartTone().
func (aw *WavWriter) Begin() {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	aw.started = true
	aw.last = aw.Clock()
}

// fill buffer with samples up to the current time. must be called with the
// critical section locked
func (aw *WavWriter) fill() {
	now := aw.Clock()

	if !aw.started {
		aw.started = true
		aw.last = now
		return
	}

	n := int(math.Round(now.Sub(aw.last).Seconds() * tone.SampleRate))
	aw.last = now

	for i := 0; i < n; i++ {
		s := tone.Silence
		if aw.sounding {
			s = int(aw.tone.Samples[aw.phase])
			aw.phase = (aw.phase + 1) % len(aw.tone.Samples)
		}
		aw.buffer = append(aw.buffer, (s-tone.Silence)<<8)
	}
}

// StartTone implements the hardware.Audio interface.
func (aw *WavWriter) StartTone() {
	aw.crit.Lock()
	aw.fill()
	aw.sounding = true
	aw.phase = 0
	aw.crit.Unlock()

	if aw.next != nil {
		aw.next.StartTone()
	}
}

// StopTone implements the hardware.Audio interface.
func (aw *WavWriter) StopTone() {
	aw.crit.Lock()
	aw.fill()
	aw.sounding = false
	aw.crit.Unlock()

	if aw.next != nil {
		aw.next.StopTone()
	}
}

// End the recording and write the WAV file.
func (aw *WavWriter) End() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	aw.fill()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, tone.SampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  tone.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
