// Package headless is an in-memory surface provider. It replays scripted input,
// keeps the last presented frame and closes itself after a set number of frames.
package headless

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/core"
)

var log = logrus.WithField("component", "headless")

// Frame is the input reported while the corresponding frame is polled.
type Frame struct {
	MouseX, MouseY float64
	Buttons        []core.MouseButton
	Keys           []core.Key
}

type Option func(*Window)

// WithMaxFrames closes the window after n presented frames. n <= 0 runs until
// Close.
func WithMaxFrames(n int) Option { return func(w *Window) { w.maxFrames = n } }

// WithScript queues per-frame input. After the script runs out the last entry
// keeps being reported.
func WithScript(frames ...Frame) Option {
	return func(w *Window) { w.script = append(w.script, frames...) }
}

// WithOnPresent is called with every presented frame.
func WithOnPresent(fn func(frame int, pixels []uint32)) Option {
	return func(w *Window) { w.onPresent = fn }
}

type Window struct {
	width, height int
	maxFrames     int
	script        []Frame
	onPresent     func(int, []uint32)

	polled    int
	current   Frame
	presented int
	last      []uint32
	title     string
	closed    bool
}

func New(width, height int, opts ...Option) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("headless: invalid size %dx%d", width, height)
	}
	w := &Window{width: width, height: height}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

// Opener adapts New to the constructor core.Run expects.
func Opener(opts ...Option) func(core.Config) (core.Window, error) {
	return func(cfg core.Config) (core.Window, error) {
		return New(cfg.Width, cfg.Height, opts...)
	}
}

func (w *Window) IsOpen() bool {
	if w.closed {
		return false
	}
	return w.maxFrames <= 0 || w.presented < w.maxFrames
}

func (w *Window) PollEvents() {
	if len(w.script) == 0 {
		return
	}
	w.current = w.script[min(w.polled, len(w.script)-1)]
	w.polled++
}

func (w *Window) Present(pixels []uint32, width, height int) error {
	if width != w.width || height != w.height {
		return fmt.Errorf("headless: frame is %dx%d, window is %dx%d", width, height, w.width, w.height)
	}
	if len(pixels) < width*height {
		return fmt.Errorf("headless: %d pixels for a %dx%d frame", len(pixels), width, height)
	}
	w.last = append(w.last[:0], pixels[:width*height]...)
	w.presented++
	if w.onPresent != nil {
		w.onPresent(w.presented, w.last)
	}
	return nil
}

func (w *Window) MousePos() (float64, float64) { return w.current.MouseX, w.current.MouseY }

func (w *Window) MouseDown(b core.MouseButton) bool {
	for _, d := range w.current.Buttons {
		if d == b {
			return true
		}
	}
	return false
}

func (w *Window) PressedKeys() []core.Key { return w.current.Keys }

func (w *Window) SetTitle(t string) { w.title = t }

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	log.WithField("frames", w.presented).Debug("headless window closed")
}

// Title is the last title set by the engine.
func (w *Window) Title() string { return w.title }

// Presented counts frames handed to Present.
func (w *Window) Presented() int { return w.presented }

// LastFrame is a copy of the most recently presented pixels.
func (w *Window) LastFrame() []uint32 { return append([]uint32(nil), w.last...) }
