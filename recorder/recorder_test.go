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

package recorder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/recorder"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// wait for a key and draw the glyph for that key. repeat forever
var program = []uint8{
	0xf0, 0x0a, // LD V0, K
	0xf0, 0x29, // LD F, V0
	0xd1, 0x15, // DRW V1, V1, 5
	0x12, 0x00, // JP 0x200
}

// scripted user input
type script struct {
	keyCalls  int
	quitCalls int
}

func (s *script) Keys() input.Snapshot {
	var keys input.Snapshot
	s.keyCalls++
	switch {
	case s.keyCalls >= 10 && s.keyCalls < 20:
		keys[0x5] = true
	case s.keyCalls >= 30 && s.keyCalls < 35:
		keys[0x9] = true
		keys[0xa] = true
	}
	return keys
}

func (s *script) QuitRequested() bool {
	s.quitCalls++
	return s.quitCalls > 60
}

func prepare(t *testing.T, data []uint8) (*hardware.Chip8, romloader.Loader) {
	t.Helper()

	dir := t.TempDir()

	rom := filepath.Join(dir, "program.ch8")
	test.DemandSuccess(t, os.WriteFile(rom, data, 0o600))
	ld := romloader.NewLoader(rom)
	test.DemandSuccess(t, ld.Load())

	prf, err := preferences.NewPreferencesFromFile(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prf.CycleRate.Set(0))

	c, err := hardware.NewChip8(prf, ld.Data, random.NewRandom(1))
	test.DemandSuccess(t, err)

	return c, ld
}

func record(t *testing.T, transcript string) string {
	t.Helper()

	c, ld := prepare(t, program)
	dig := digest.NewVideo(nil)

	rec, err := recorder.NewRecorder(transcript, c, &script{}, dig, ld, 1)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, c.Run(dig, rec, gui.NewStub(0)))
	test.DemandSuccess(t, rec.End())

	return dig.Hash()
}

func TestRecordAndPlayback(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	hash := record(t, transcript)

	// the transcript cannot be overwritten
	c, ld := prepare(t, program)
	_, err := recorder.NewRecorder(transcript, c, &script{}, digest.NewVideo(nil), ld, 1)
	test.ExpectFailure(t, err)

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.ProgramHash, ld.Hash)
	test.ExpectEquality(t, plb.Seed, int64(1))
	test.ExpectEquality(t, plb.TimerSync, "CYCLE")

	c, _ = prepare(t, program)
	dig := digest.NewVideo(nil)
	test.DemandSuccess(t, plb.AttachToChip8(c, dig))

	test.DemandSuccess(t, c.Run(dig, plb, gui.NewStub(0)))
	test.ExpectSuccess(t, plb.Err())
	test.ExpectSuccess(t, plb.Finished())
	test.ExpectEquality(t, dig.Hash(), hash)
}

func TestPlaybackDivergence(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	record(t, transcript)

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)

	// drawing fewer rows of the glyph produces different output
	altered := append([]uint8{}, program...)
	altered[5] = 0x14

	c, _ := prepare(t, altered)
	dig := digest.NewVideo(nil)
	test.DemandSuccess(t, plb.AttachToChip8(c, dig))

	test.DemandSuccess(t, c.Run(dig, plb, gui.NewStub(0)))
	test.ExpectFailure(t, plb.Finished())
	test.ExpectSuccess(t, curated.Is(plb.Err(), recorder.PlaybackHashError))
}

func TestPlaybackPreferences(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	record(t, transcript)

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)

	c, _ := prepare(t, program)
	test.DemandSuccess(t, c.Prefs.TimerSync.Set("FRAME"))
	test.ExpectFailure(t, plb.AttachToChip8(c, digest.NewVideo(nil)))
}

func TestIncompleteTranscript(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	record(t, transcript)

	data, err := os.ReadFile(transcript)
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	truncated := strings.Join(lines[:len(lines)-1], "\n")
	test.DemandSuccess(t, os.WriteFile(transcript, []byte(truncated), 0o600))

	_, err = recorder.NewPlayback(transcript)
	test.ExpectFailure(t, err)
}
