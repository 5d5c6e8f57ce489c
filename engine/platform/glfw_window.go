package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/core"
	glbackend "github.com/hubastard/pixelgrove/engine/gfx/gl"
)

var log = logrus.WithField("component", "platform")

// GLFWWindow implements core.Window. The window is Scale times the surface size
// and input is reported back in surface pixels.
type GLFWWindow struct {
	w         *glfw.Window
	presenter *glbackend.Presenter
	scale     float64
	width     float64
	height    float64
	showTitle bool
	keys      map[core.Key]bool
}

// NewGLFWWindow must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)
	applyHints(cfg.Window)

	scale := max(cfg.Scale, 1)
	title := ""
	if cfg.Window.ShowTitle {
		title = cfg.Title
	}
	win, err := glfw.CreateWindow(cfg.Width*scale, cfg.Height*scale, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	// Pacing belongs to the frame controller.
	glfw.SwapInterval(0)

	presenter, err := glbackend.NewPresenter()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	gw := &GLFWWindow{
		w:         win,
		presenter: presenter,
		scale:     float64(scale),
		width:     float64(cfg.Width),
		height:    float64(cfg.Height),
		showTitle: cfg.Window.ShowTitle,
		keys:      map[core.Key]bool{},
	}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.keys[k] = action != glfw.Release
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			clear(gw.keys)
		}
	})

	log.WithFields(logrus.Fields{
		"width":    cfg.Width * scale,
		"height":   cfg.Height * scale,
		"settings": fmt.Sprintf("%+v", cfg.Window),
	}).Info("Window opened")
	return gw, nil
}

func applyHints(s core.WindowSettings) {
	glfw.WindowHint(glfw.Decorated, glfwBool(!s.Borderless))
	glfw.WindowHint(glfw.Resizable, glfwBool(s.Resizable))
	glfw.WindowHint(glfw.Floating, glfwBool(s.AlwaysOnTop))
	glfw.WindowHint(glfw.TransparentFramebuffer, glfwBool(s.Transparency))
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// core.Window impl
func (g *GLFWWindow) IsOpen() bool { return !g.w.ShouldClose() }
func (g *GLFWWindow) PollEvents()  { glfw.PollEvents() }

func (g *GLFWWindow) Present(pixels []uint32, width, height int) error {
	fbW, fbH := g.w.GetFramebufferSize()
	if err := g.presenter.Present(pixels, width, height, fbW, fbH); err != nil {
		return err
	}
	g.w.SwapBuffers()
	return nil
}

// MousePos maps the cursor into surface pixels, clamped to the surface even
// when the cursor is outside the window.
func (g *GLFWWindow) MousePos() (float64, float64) {
	x, y := g.w.GetCursorPos()
	return clampMouse(x/g.scale, g.width), clampMouse(y/g.scale, g.height)
}

func clampMouse(v, limit float64) float64 {
	return max(0, min(v, limit-1))
}

func (g *GLFWWindow) MouseDown(b core.MouseButton) bool {
	var mb glfw.MouseButton
	switch b {
	case core.MouseLeft:
		mb = glfw.MouseButtonLeft
	case core.MouseMiddle:
		mb = glfw.MouseButtonMiddle
	case core.MouseRight:
		mb = glfw.MouseButtonRight
	default:
		return false
	}
	return g.w.GetMouseButton(mb) == glfw.Press
}

func (g *GLFWWindow) PressedKeys() []core.Key {
	out := make([]core.Key, 0, len(g.keys))
	for k, down := range g.keys {
		if down {
			out = append(out, k)
		}
	}
	return out
}

// SetTitle is ignored unless the window was opened with ShowTitle.
func (g *GLFWWindow) SetTitle(t string) {
	if g.showTitle {
		g.w.SetTitle(t)
	}
}

func (g *GLFWWindow) Close() {
	g.presenter.Shutdown()
	g.w.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyEnter:
		return core.KeyEnter
	case glfw.KeyTab:
		return core.KeyTab
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyW:
		return core.KeyW
	case glfw.KeyA:
		return core.KeyA
	case glfw.KeyS:
		return core.KeyS
	case glfw.KeyD:
		return core.KeyD
	case glfw.KeyP:
		return core.KeyP
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return core.KeyCtrl
	default:
		return core.KeyUnknown
	}
}
