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
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/tone"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// DefaultScale is the size of a CHIP-8 pixel in screen pixels if no other
// value is specified.
const DefaultScale = 10

// colour of lit and unlit pixels
var (
	litColor   = [pixelDepth]byte{0xe0, 0xf8, 0xd0, 0xff}
	unlitColor = [pixelDepth]byte{0x08, 0x18, 0x20, 0xff}
)

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	gui.Keyboard

	// critical section protects pixels and dirty, which are written by the
	// emulation goroutine and read by the main thread
	crit   sync.Mutex
	pixels []byte
	dirty  bool

	scale int32

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// all audio is handled by the audio type
	aud *audio

	// feature requests are serviced on the main thread
	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(scale int, tn *tone.Tone) (*SdlPlay, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	scr := &SdlPlay{
		scale:      int32(scale),
		pixels:     make([]byte, display.Width*display.Height*pixelDepth),
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	var err error

	// set up sdl
	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// window is hidden until a ReqSetVisibility request
	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width*scr.scale, display.Height*scr.scale,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the framebuffer. the renderer scales it to
	// fill the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// start with a blank screen
	for i := 0; i < len(scr.pixels); i += pixelDepth {
		copy(scr.pixels[i:], unlitColor[:])
	}
	scr.dirty = true

	// a failure to open the audio device is not fatal. the emulation will be
	// silent
	scr.aud, err = newAudio(tn)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}

	return scr, nil
}

// Destroy implements the GuiCreator interface. Only the SDL resources that
// have been created are destroyed.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if scr.aud != nil {
		scr.aud.destroy()
		scr.aud = nil
	}

	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
		scr.texture = nil
	}
	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
		scr.renderer = nil
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
		scr.window = nil
	}

	sdl.Quit()
}

// Present implements the hardware.Presentation interface.
func (scr *SdlPlay) Present(pixels display.Pixels) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	for i, p := range pixels {
		c := unlitColor
		if p != 0 {
			c = litColor
		}
		copy(scr.pixels[i*pixelDepth:], c[:])
	}
	scr.dirty = true

	return nil
}

// StartTone implements the hardware.Audio interface.
func (scr *SdlPlay) StartTone() {
	if scr.aud != nil {
		scr.aud.sounding.Store(true)
	}
}

// StopTone implements the hardware.Audio interface.
func (scr *SdlPlay) StopTone() {
	if scr.aud != nil {
		scr.aud.sounding.Store(false)
	}
}

// render copies the pixels to the texture and presents the renderer. must be
// called from the main thread.
func (scr *SdlPlay) render() error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if !scr.dirty {
		return nil
	}
	scr.dirty = false

	tex, _, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}
	copy(tex, scr.pixels)
	scr.texture.Unlock()

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

func (scr *SdlPlay) setScale(scale int) {
	if scale <= 0 {
		scale = DefaultScale
	}
	scr.scale = int32(scale)
	scr.window.SetSize(display.Width*scr.scale, display.Height*scr.scale)
}
