package core

import (
	"time"

	"github.com/hubastard/pixelgrove/engine/surface"
)

// Version is reported in the boot banner.
const Version = "0.3.0"

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                      // called once after the window and surface exist
	OnUpdate(e *Engine, in *Input)          // called once per frame with fresh input
	OnRender(e *Engine, s *surface.Surface) // composite the frame into s
	OnFrame(e *Engine, report FrameReport)  // after presentation and pacing
	OnShutdown(e *Engine)                   // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window  Window
	Surface *surface.Surface
	Input   *Input
	Frames  *FrameController
	Layers  LayerStack
	start   time.Time
	closing bool
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// RequestClose ends the loop after the current frame.
func (e *Engine) RequestClose() { e.closing = true }

// Window is the native surface provider. It is an external collaborator: it opens
// a window, reports input in surface pixel coordinates and presents finished frames.
type Window interface {
	IsOpen() bool
	PollEvents()
	Present(pixels []uint32, width, height int) error
	MousePos() (x, y float64)
	MouseDown(b MouseButton) bool
	PressedKeys() []Key
	SetTitle(title string)
	Close()
}

// WindowSettings toggles native window behavior. Each flag is independent.
type WindowSettings struct {
	Borderless   bool `toml:"borderless"`
	ShowTitle    bool `toml:"show_title"`
	Resizable    bool `toml:"resizable"`
	AlwaysOnTop  bool `toml:"always_on_top"`
	Transparency bool `toml:"transparency"`
}

// Config for the engine run. Width and Height are the surface size in pixels; the
// window is Scale times larger.
type Config struct {
	Title    string         `toml:"title"`
	Width    int            `toml:"width"`
	Height   int            `toml:"height"`
	Scale    int            `toml:"scale"`
	FPS      int            `toml:"fps"`
	Workers  int            `toml:"workers"`
	LogLevel string         `toml:"log_level"`
	Font     string         `toml:"font"`
	Window   WindowSettings `toml:"window"`
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// Key enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyCtrl // either control key
)
