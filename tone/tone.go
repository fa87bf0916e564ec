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

package tone

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// SampleRate of the tone data.
const SampleRate = 44100

// Silence is the sample value for silence.
const Silence = 128

// DefaultFrequency of the square wave tone in Hz.
const DefaultFrequency = 440

// Tone is one loop of the tone.
type Tone struct {
	Samples []uint8
}

// NewSquare creates a square wave tone at the frequency. The tone is one
// second long so that it loops without a discontinuity for any whole number
// frequency.
func NewSquare(freq int) *Tone {
	if freq <= 0 {
		freq = DefaultFrequency
	}

	t := &Tone{
		Samples: make([]uint8, SampleRate),
	}

	period := float64(SampleRate) / float64(freq)
	for i := range t.Samples {
		if int(float64(i)*2/period)%2 == 0 {
			t.Samples[i] = Silence + 64
		} else {
			t.Samples[i] = Silence - 64
		}
	}

	return t
}

// LoadSample creates a tone from a WAV or MP3 file. Only the first channel of
// the file is used. The sample is resampled to SampleRate.
func LoadSample(filename string) (*Tone, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("tone: %v", err)
	}
	defer f.Close()

	var data []float32
	var rate int

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, rate, err = decodeWAV(f)
	case ".mp3":
		data, rate, err = decodeMP3(f)
	default:
		err = fmt.Errorf("unsupported file type (%s)", filepath.Ext(filename))
	}
	if err != nil {
		return nil, curated.Errorf("tone: %v", err)
	}

	if len(data) == 0 || rate <= 0 {
		return nil, curated.Errorf("tone: %v", "sample is empty")
	}

	t := &Tone{
		Samples: resample(data, rate),
	}

	logger.Logf(logger.Allow, "tone", "%s: %d samples at %dHz", filepath.Base(filename), len(data), rate)

	return t, nil
}

// decode wav file to mono samples in the range -1 to 1
func decodeWAV(r io.ReadSeeker) ([]float32, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	var offset, scale float32
	if dec.BitDepth == 8 {
		offset = 128
		scale = 128
	} else {
		scale = float32(int(1) << (dec.BitDepth - 1))
	}

	data := make([]float32, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		data = append(data, (float32(buf.Data[i])-offset)/scale)
	}

	return data, int(dec.SampleRate), nil
}

// decode mp3 file to mono samples in the range -1 to 1
func decodeMP3(r io.Reader) ([]float32, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16bit little endian with two channels
	var data []float32
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			data = append(data, float32(v)/32768)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("mp3: %w", err)
		}
	}

	return data, dec.SampleRate(), nil
}

// resample data at rate to unsigned 8bit data at SampleRate
func resample(data []float32, rate int) []uint8 {
	n := int(int64(len(data)) * SampleRate / int64(rate))
	if n == 0 {
		n = 1
	}

	s := make([]uint8, n)
	for i := range s {
		v := data[int(int64(i)*int64(rate)/SampleRate)]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s[i] = uint8(Silence + v*127)
	}

	return s
}
