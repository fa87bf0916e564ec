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
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/tone"

	"github.com/veandco/go-sdl2/sdl"
)

// number of samples in each chunk queued to the audio device
const bufferLength = 512

// the amount of queued data, in bytes, below which another chunk is queued
const queueThreshold = bufferLength * 4

type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	tone  *tone.Tone
	phase int
	chunk []byte

	// set by the emulation goroutine and read by the main thread
	sounding atomic.Bool
	playing  bool
}

func newAudio(tn *tone.Tone) (*audio, error) {
	if tn == nil || len(tn.Samples) == 0 {
		return nil, curated.Errorf("sdlplay: audio: %v", "no tone")
	}

	aud := &audio{
		tone:  tn,
		chunk: make([]byte, bufferLength),
	}

	spec := &sdl.AudioSpec{
		Freq:     tone.SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: audio: %v", err)
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// keep the device queue topped up while the tone is sounding. the queue is
// emptied as soon as the tone stops
func (aud *audio) service() {
	if !aud.sounding.Load() {
		if aud.playing {
			sdl.ClearQueuedAudio(aud.id)
			aud.playing = false
		}
		return
	}

	if !aud.playing {
		aud.phase = 0
		aud.playing = true
	}

	for sdl.GetQueuedAudioSize(aud.id) < queueThreshold {
		for i := range aud.chunk {
			aud.chunk[i] = aud.tone.Samples[aud.phase]
			aud.phase = (aud.phase + 1) % len(aud.tone.Samples)
		}
		if err := sdl.QueueAudio(aud.id, aud.chunk); err != nil {
			return
		}
	}
}

func (aud *audio) destroy() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
