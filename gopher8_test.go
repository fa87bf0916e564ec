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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

// a program that draws the glyph for V0 and then loops forever
var testProgram = []uint8{
	0x60, 0x07, // LD V0, 0x07
	0xf0, 0x29, // LD F, V0
	0xd0, 0x05, // DRW V0, V0, 5
	0x12, 0x06, // JP 0x206
}

// prepare a working directory with a local resource directory, so that
// preferences do not leak between tests and the user's configuration
func prepare(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	rom := filepath.Join(tmp, "test.ch8")
	test.DemandSuccess(t, os.WriteFile(rom, testProgram, 0o600))

	return rom
}

// run launch() and return the exit value requested by it
func runLaunch(t *testing.T, args ...string) int {
	t.Helper()

	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	go launch(sync, args)

	for {
		state := <-sync.state
		if state.req == reqQuit {
			if state.args == nil {
				return 0
			}
			return state.args.(int)
		}
	}
}

func TestDisasmMode(t *testing.T) {
	rom := prepare(t)
	test.ExpectEquality(t, runLaunch(t, "DISASM", "-bytecode", rom), 0)
	test.ExpectEquality(t, runLaunch(t, "DISASM"), 20)
	test.ExpectEquality(t, runLaunch(t, "DISASM", rom, rom), 20)
	test.ExpectEquality(t, runLaunch(t, "DISASM", filepath.Join(filepath.Dir(rom), "missing.ch8")), 20)
}

func TestParseError(t *testing.T) {
	prepare(t)
	test.ExpectEquality(t, runLaunch(t, "-nosuchflag"), 10)
}

func TestVersionFlag(t *testing.T) {
	prepare(t)
	test.ExpectEquality(t, runLaunch(t, "-version"), 0)
}

func TestPlayModeHeadless(t *testing.T) {
	rom := prepare(t)
	dir := filepath.Dir(rom)
	wav := filepath.Join(dir, "out.wav")
	dot := filepath.Join(dir, "state.dot")

	exit := runLaunch(t, "PLAY", "-gui", "NONE", "-duration", "50ms",
		"-prefs", "hardware.cyclerate::0", "-seed", "1",
		"-wav", wav, "-memviz", dot, "-digest", rom)
	test.ExpectEquality(t, exit, 0)

	_, err := os.Stat(wav)
	test.ExpectSuccess(t, err)
	_, err = os.Stat(dot)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, runLaunch(t, "PLAY", "-gui", "NOSUCHGUI", rom), 20)
	test.ExpectEquality(t, runLaunch(t, "PLAY", "-prefs", "hardware.spriteedge::SIDEWAYS", "-gui", "NONE", rom), 20)
}

func TestRecordAndPlayback(t *testing.T) {
	rom := prepare(t)
	transcript := filepath.Join(filepath.Dir(rom), "transcript")

	exit := runLaunch(t, "PLAY", "-gui", "NONE", "-duration", "50ms",
		"-prefs", "hardware.cyclerate::0", "-record", transcript, rom)
	test.DemandEquality(t, exit, 0)

	// the program is taken from the transcript
	exit = runLaunch(t, "PLAY", "-gui", "NONE",
		"-prefs", "hardware.cyclerate::0", "-playback", transcript)
	test.ExpectEquality(t, exit, 0)

	exit = runLaunch(t, "PLAY", "-gui", "NONE", "-record", transcript, "-playback", transcript)
	test.ExpectEquality(t, exit, 20)
}

func TestPerformanceMode(t *testing.T) {
	rom := prepare(t)
	test.ExpectEquality(t, runLaunch(t, "PERFORMANCE", "-duration", "100ms", rom), 0)
	test.ExpectEquality(t, runLaunch(t, "PERFORMANCE", "-profile", "SIDEWAYS", rom), 20)
}

func BenchmarkCPU(b *testing.B) {
	c, err := hardware.NewChip8(nil, testProgram, random.NewRandom(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
