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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type counter struct {
	starts, stops int
}

func (c *counter) StartTone() { c.starts++ }
func (c *counter) StopTone()  { c.stops++ }

func TestWavWriter(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "out.wav")

	next := &counter{}
	tn := &tone.Tone{Samples: []uint8{tone.Silence + 100, tone.Silence - 100}}
	aw, err := wavwriter.New(pth, tn, next)
	test.DemandSuccess(t, err)

	clk := &clock{t: time.Unix(0, 0)}
	aw.Clock = clk.now

	// 10ms silence, 20ms tone, 10ms silence
	aw.Begin()
	clk.advance(10 * time.Millisecond)
	aw.StartTone()
	clk.advance(20 * time.Millisecond)
	aw.StopTone()
	clk.advance(10 * time.Millisecond)
	test.DemandSuccess(t, aw.End())

	test.ExpectEquality(t, next.starts, 1)
	test.ExpectEquality(t, next.stops, 1)

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, int(dec.SampleRate), tone.SampleRate)

	// 40ms at 44100Hz
	test.DemandEquality(t, len(buf.Data), 441+882+441)
	test.ExpectEquality(t, buf.Data[0], 0)
	test.ExpectEquality(t, buf.Data[441], 100<<8)
	test.ExpectEquality(t, buf.Data[442], -100<<8)
	test.ExpectEquality(t, buf.Data[441+882], 0)
}

func TestNoTone(t *testing.T) {
	_, err := wavwriter.New("out.wav", &tone.Tone{}, nil)
	test.ExpectFailure(t, err)
}
