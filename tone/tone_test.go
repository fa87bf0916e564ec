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

package tone_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/test"
)

func TestSquare(t *testing.T) {
	tn := tone.NewSquare(441)
	test.DemandEquality(t, len(tn.Samples), tone.SampleRate)

	// 441Hz at 44100Hz is a period of 100 samples
	test.ExpectEquality(t, tn.Samples[0], uint8(tone.Silence+64))
	test.ExpectEquality(t, tn.Samples[49], uint8(tone.Silence+64))
	test.ExpectEquality(t, tn.Samples[50], uint8(tone.Silence-64))
	test.ExpectEquality(t, tn.Samples[100], uint8(tone.Silence+64))
}

func writeWAV(t *testing.T, pth string, rate int, data []int) {
	t.Helper()

	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestLoadWAV(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "beep.wav")

	// half the sample rate of the tone package so every sample is doubled
	writeWAV(t, pth, tone.SampleRate/2, []int{32767, -32768, 0, 16384})

	tn, err := tone.LoadSample(pth)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(tn.Samples), 8)
	test.ExpectEquality(t, tn.Samples[0], uint8(254))
	test.ExpectEquality(t, tn.Samples[1], uint8(254))
	test.ExpectEquality(t, tn.Samples[2], uint8(1))
	test.ExpectEquality(t, tn.Samples[4], uint8(tone.Silence))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := tone.LoadSample(filepath.Join(dir, "missing.wav"))
	test.ExpectFailure(t, err)

	pth := filepath.Join(dir, "beep.ogg")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0}, 0o644))
	_, err = tone.LoadSample(pth)
	test.ExpectFailure(t, err)

	pth = filepath.Join(dir, "notwav.wav")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not a wav file"), 0o644))
	_, err = tone.LoadSample(pth)
	test.ExpectFailure(t, err)
}
