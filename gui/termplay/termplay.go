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

package termplay

import (
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/pkg/term"
)

// HoldDuration is how long a key is considered to be pressed after it was
// last reported by the terminal.
const HoldDuration = 150 * time.Millisecond

// the read timeout allows the input goroutine to notice the end of the
// emulation
const readTimeout = 100 * time.Millisecond

// TermPlay is a terminal implementation of the gui.GUI interface.
type TermPlay struct {
	gui.Keyboard

	tty *term.Term

	// critical section protects the tty output and the held map
	crit sync.Mutex
	held map[string]time.Time

	visible bool

	done chan bool
	ack  chan bool
}

// NewTermPlay opens the named terminal device and puts it into raw mode. The
// device is usually /dev/tty.
func NewTermPlay(device string) (*TermPlay, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf("termplay: %v", err)
	}

	tp := &TermPlay{
		tty:     tty,
		held:    make(map[string]time.Time),
		visible: true,
		done:    make(chan bool),
		ack:     make(chan bool),
	}

	tp.write(ansiClear + ansiHideCursor)

	go tp.readInput()

	return tp, nil
}

func (tp *TermPlay) write(s string) {
	tp.crit.Lock()
	defer tp.crit.Unlock()
	if _, err := tp.tty.Write([]byte(s)); err != nil {
		logger.Log(logger.Allow, "termplay", err)
	}
}

func (tp *TermPlay) readInput() {
	defer func() {
		tp.ack <- true
	}()

	buf := make([]byte, 16)
	for {
		select {
		case <-tp.done:
			return
		default:
		}

		n, err := tp.tty.Read(buf)
		if err != nil && err != io.EOF {
			logger.Log(logger.Allow, "termplay", err)
			tp.RequestQuit()
			<-tp.done
			return
		}

		for _, b := range buf[:n] {
			tp.key(b)
		}
	}
}

func (tp *TermPlay) key(b byte) {
	switch b {
	case keyInterrupt, keyEsc:
		tp.RequestQuit()
		return
	}

	name := string(rune(b))
	if _, ok := gui.KeypadKey(name); !ok {
		return
	}

	tp.Press(name, true)

	tp.crit.Lock()
	tp.held[name] = time.Now()
	tp.crit.Unlock()
}

// Service implements the GuiCreator interface. Keys that have not been
// reported for HoldDuration are released.
func (tp *TermPlay) Service() {
	now := time.Now()

	tp.crit.Lock()
	for name, t := range tp.held {
		if now.Sub(t) >= HoldDuration {
			tp.Press(name, false)
			delete(tp.held, name)
		}
	}
	tp.crit.Unlock()

	time.Sleep(time.Millisecond)
}

// Destroy implements the GuiCreator interface. The terminal is returned to
// the mode it was in before NewTermPlay().
func (tp *TermPlay) Destroy(output io.Writer) {
	tp.done <- true
	<-tp.ack

	tp.write(ansiClear + ansiHome + ansiShowCursor)

	if err := tp.tty.Restore(); err != nil {
		output.Write([]byte(err.Error()))
	}
	if err := tp.tty.Close(); err != nil {
		output.Write([]byte(err.Error()))
	}
}

// Present implements the hardware.Presentation interface.
func (tp *TermPlay) Present(pixels display.Pixels) error {
	if !tp.visible {
		return nil
	}
	tp.write(ansiHome + Frame(pixels))
	return nil
}

// StartTone implements the hardware.Audio interface.
func (tp *TermPlay) StartTone() {
	tp.write(ansiBell)
}

// StopTone implements the hardware.Audio interface.
func (tp *TermPlay) StopTone() {
}

// SetFeature implements the gui.GUI interface.
func (tp *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (rerr error) {
	defer func() {
		if r := recover(); r != nil {
			rerr = curated.Errorf("termplay: %v: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetTitle:
		// xterm compatible window title
		tp.write("\x1b]0;" + args[0].(string) + "\a")

	case gui.ReqSetScale:
		// scaling is not possible in a terminal

	case gui.ReqSetVisibility:
		tp.visible = args[0].(bool)

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}
