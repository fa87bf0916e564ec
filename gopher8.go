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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/recorder"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statedump"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// the terminal device used by the TERM gui
const ttyDevice = "/dev/tty"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and desctruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// mainSync is used to synchronise the emulation goroutine with the main
// thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if gui != nil {
				gui.Destroy(os.Stderr)
			}
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator may return a typed nil, which is not equal to
				// an interface nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "DISASM", "PERFORMANCE")

	showVersion := md.AddBool("version", false, "print version information and exit")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run stats server")
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		fmt.Println(version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// loadProgram loads the program named by the single remaining argument. If
// there is a playback then the program must match the program in the
// transcript and the argument is optional.
func loadProgram(md *modalflag.Modes, plb *recorder.Playback) (romloader.Loader, error) {
	var filename string

	switch len(md.RemainingArgs()) {
	case 0:
		if plb == nil {
			return romloader.Loader{}, fmt.Errorf("CHIP-8 program required for %s mode", md)
		}
		filename = plb.ProgramName
	case 1:
		filename = md.GetArg(0)
	default:
		return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(filename)
	if plb != nil {
		ld.Hash = plb.ProgramHash
	}

	err := ld.Load()
	if err != nil {
		return romloader.Loader{}, err
	}

	return ld, nil
}

// newPreferences applies the command line preferences to the hardware
// preferences. Unused command line preferences are reported.
func newPreferences(cmdline string) (*preferences.Preferences, error) {
	prefs.PushCommandLineStack(cmdline)
	prf, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Printf("! unused preferences: %s\n", unused)
	}
	return prf, err
}

// interruptInput ends the emulation on receipt of an interrupt signal.
type interruptInput struct {
	hardware.Input
	interrupted atomic.Bool
}

func (in *interruptInput) QuitRequested() bool {
	return in.interrupted.Load() || in.Input.QuitRequested()
}

func waitForGui(sync *mainSync, creator func() (GuiCreator, error)) (gui.GUI, error) {
	sync.creator <- creator

	select {
	case g := <-sync.creation:
		scr, ok := g.(gui.GUI)
		if !ok {
			return nil, fmt.Errorf("created gui does not implement the GUI interface")
		}
		return scr, nil
	case err := <-sync.creationError:
		return nil, err
	}
}

func play(md *modalflag.Modes, sync *mainSync) (rerr error) {
	md.NewMode()

	guiType := md.AddString("gui", "SDL", "user interface: SDL, TERM, NONE")
	scale := md.AddInt("scale", sdlplay.DefaultScale, "size of a CHIP-8 pixel in screen pixels (SDL only)")
	toneFile := md.AddString("tone", "", "WAV or MP3 file to use as the tone")
	freq := md.AddInt("freq", tone.DefaultFrequency, "frequency of the tone if no tone file is specified")
	wav := md.AddString("wav", "", "record tone to wav file")
	prefsCL := md.AddString("prefs", "", "hardware preferences for this run (key::value; key::value)")
	savePrefs := md.AddBool("saveprefs", false, "save hardware preferences for future runs")
	seed := md.AddInt64("seed", 0, "random number seed (0 for time based seed)")
	duration := md.AddDuration("duration", 0, "run for a fixed duration (NONE gui only)")
	memviz := md.AddString("memviz", "", "write graph of emulation state to file on exit")
	dig := md.AddBool("digest", false, "print digest of the video and audio output on exit")
	record := md.AddString("record", "", "record user input to transcript file")
	playback := md.AddString("playback", "", "playback user input from transcript file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var plb *recorder.Playback
	if *playback != "" {
		if *record != "" {
			return fmt.Errorf("cannot record and playback at the same time")
		}

		plb, err = recorder.NewPlayback(*playback)
		if err != nil {
			return err
		}
		*seed = plb.Seed
	}

	ld, err := loadProgram(md, plb)
	if err != nil {
		return err
	}

	prf, err := newPreferences(*prefsCL)
	if err != nil {
		return err
	}

	rnd := random.NewRandom(*seed)
	logger.Logf(logger.Allow, "play", "random seed %d", rnd.Seed())

	c, err := hardware.NewChip8(prf, ld.Data, rnd)
	if err != nil {
		return err
	}

	var tn *tone.Tone
	if *toneFile != "" {
		tn, err = tone.LoadSample(*toneFile)
		if err != nil {
			return err
		}
	} else {
		tn = tone.NewSquare(*freq)
	}

	var scr gui.GUI
	switch strings.ToUpper(*guiType) {
	case "SDL":
		scr, err = waitForGui(sync, func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay(*scale, tn)
		})
	case "TERM":
		scr, err = waitForGui(sync, func() (GuiCreator, error) {
			return termplay.NewTermPlay(ttyDevice)
		})
	case "NONE":
		scr = gui.NewStub(*duration)
	default:
		err = fmt.Errorf("unknown gui type (%s)", *guiType)
	}
	if err != nil {
		return err
	}

	err = scr.SetFeature(gui.ReqSetTitle, ld.ShortName())
	if err != nil {
		return err
	}
	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	var pres hardware.Presentation = scr
	var aud hardware.Audio = scr

	var in hardware.Input = scr

	// digest of the emulation output. the video digest is required by
	// recording and playback
	videoDigest := digest.NewVideo(pres)
	audioDigest := digest.NewAudio(aud)
	pres = videoDigest
	aud = audioDigest

	var rec *recorder.Recorder
	if *record != "" {
		rec, err = recorder.NewRecorder(*record, c, in, videoDigest, ld, rnd.Seed())
		if err != nil {
			return err
		}
		in = rec
	}

	if plb != nil {
		err = plb.AttachToChip8(c, videoDigest)
		if err != nil {
			return err
		}
		in = plb
	}

	// optional recording of the tone
	if *wav != "" {
		aw, err := wavwriter.New(*wav, tn, aud)
		if err != nil {
			return err
		}
		defer func() {
			err := aw.End()
			if err != nil && rerr == nil {
				rerr = err
			}
		}()
		aw.Begin()
		aud = aw
	}

	// interrupt signals are handled by ending the emulation. this allows the
	// wav file and state graph to be written
	intIn := &interruptInput{Input: in}
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	intDone := make(chan bool)
	defer func() {
		signal.Stop(intChan)
		close(intDone)
	}()
	go func() {
		select {
		case <-intChan:
			intIn.interrupted.Store(true)
		case <-intDone:
		}
	}()

	runErr := c.Run(pres, intIn, aud)

	if rec != nil {
		err = rec.End()
		if err != nil && runErr == nil {
			runErr = err
		}
	}

	if plb != nil && runErr == nil {
		runErr = plb.Err()
		if plb.Finished() {
			fmt.Println("! playback completed")
		}
	}

	if *dig {
		fmt.Printf("video: %s (%d frames)\n", videoDigest.Hash(), videoDigest.Frames)
		fmt.Printf("audio: %s\n", audioDigest.Hash())
	}

	if *memviz != "" {
		err = statedump.WriteFile(*memviz, c)
		if err != nil {
			return err
		}
	}

	if runErr != nil {
		return runErr
	}

	if *savePrefs {
		return prf.Save()
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	blessed := md.AddBool("blessed", false, "only show instructions reachable from the program start")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadProgram(md, nil)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromProgram(ld.Data)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Blessed:  *blessed,
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a short lead time)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, ALL (comma separated)")
	prefsCL := md.AddString("prefs", "", "hardware preferences for this run (key::value; key::value)")
	seed := md.AddInt64("seed", 0, "random number seed (0 for time based seed)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	ld, err := loadProgram(md, nil)
	if err != nil {
		return err
	}

	prf, err := newPreferences(*prefsCL)
	if err != nil {
		return err
	}

	c, err := hardware.NewChip8(prf, ld.Data, random.NewRandom(*seed))
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, c, *duration)
}
