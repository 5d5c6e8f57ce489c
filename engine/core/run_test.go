package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/surface"
)

// scriptWindow is an in-memory provider that stays open for a fixed number of frames.
type scriptWindow struct {
	frames    int
	presented int
	last      []uint32
	title     string
	mouseX    float64
	mouseY    float64
	left      bool
	keys      []Key
	closed    bool
}

func (w *scriptWindow) IsOpen() bool { return w.presented < w.frames }
func (w *scriptWindow) PollEvents()  {}
func (w *scriptWindow) Present(p []uint32, width, height int) error {
	w.presented++
	w.last = append(w.last[:0], p...)
	return nil
}
func (w *scriptWindow) MousePos() (float64, float64) { return w.mouseX, w.mouseY }
func (w *scriptWindow) MouseDown(b MouseButton) bool { return b == MouseLeft && w.left }
func (w *scriptWindow) PressedKeys() []Key           { return w.keys }
func (w *scriptWindow) SetTitle(t string)            { w.title = t }
func (w *scriptWindow) Close()                       { w.closed = true }

type recordingApp struct {
	started, updates, renders, frames, shutdowns int
	sawMouse                                     bool
	stopAfter                                    int
}

func (a *recordingApp) OnStart(e *Engine) { a.started++ }
func (a *recordingApp) OnUpdate(e *Engine, in *Input) {
	a.updates++
	if x, y := in.Mouse(); x == 3 && y == 4 && in.MouseDown(MouseLeft) {
		a.sawMouse = true
	}
	if a.stopAfter > 0 && a.updates >= a.stopAfter {
		e.RequestClose()
	}
}
func (a *recordingApp) OnRender(e *Engine, s *surface.Surface) {
	a.renders++
	s.FillRect(0, 0, 1, 1, colors.Red)
}
func (a *recordingApp) OnFrame(e *Engine, r FrameReport) { a.frames++ }
func (a *recordingApp) OnShutdown(e *Engine)             { a.shutdowns++ }

type countingLayer struct {
	attached, detached, updates, renders int
}

func (l *countingLayer) OnAttach(e *Engine)                     { l.attached++ }
func (l *countingLayer) OnDetach(e *Engine)                     { l.detached++ }
func (l *countingLayer) OnUpdate(e *Engine, in *Input)          { l.updates++ }
func (l *countingLayer) OnRender(e *Engine, s *surface.Surface) { l.renders++ }

func testConfig() Config {
	return Config{Title: "test", Width: 8, Height: 6, Scale: 2, FPS: 1000}
}

func TestRunDrivesFrames(t *testing.T) {
	win := &scriptWindow{frames: 3, mouseX: 3, mouseY: 4, left: true}
	app := &recordingApp{}
	layer := &countingLayer{}
	wrapped := &layerApp{recordingApp: app, layer: layer}

	err := Run(wrapped, testConfig(), func(Config) (Window, error) { return win, nil })
	require.NoError(t, err)

	assert.Equal(t, 1, app.started)
	assert.Equal(t, 3, app.updates)
	assert.Equal(t, 3, app.renders)
	assert.Equal(t, 3, app.frames)
	assert.Equal(t, 1, app.shutdowns)
	assert.True(t, app.sawMouse)

	assert.Equal(t, 1, layer.attached)
	assert.Equal(t, 1, layer.detached)
	assert.Equal(t, 3, layer.updates)
	assert.Equal(t, 3, layer.renders)

	require.Len(t, win.last, 8*6)
	assert.Equal(t, uint32(colors.Red), win.last[0])
	assert.Equal(t, uint32(colors.Black), win.last[1])
	assert.Contains(t, win.title, "test - ")
	assert.True(t, win.closed)
}

type layerApp struct {
	*recordingApp
	layer Layer
}

func (a *layerApp) OnStart(e *Engine) {
	a.recordingApp.OnStart(e)
	e.PushLayer(a.layer)
}

func TestRunRequestClose(t *testing.T) {
	win := &scriptWindow{frames: 100}
	app := &recordingApp{stopAfter: 2}
	require.NoError(t, Run(app, testConfig(), func(Config) (Window, error) { return win, nil }))
	assert.Equal(t, 2, app.updates)
	assert.Equal(t, 2, win.presented)
}

func TestRunSurfaceInitError(t *testing.T) {
	boom := errors.New("no display")
	err := Run(&recordingApp{}, testConfig(), func(Config) (Window, error) { return nil, boom })

	var sie *SurfaceInitError
	require.ErrorAs(t, err, &sie)
	assert.ErrorIs(t, err, boom)

	cfg := testConfig()
	cfg.Width = 0
	err = Run(&recordingApp{}, cfg, func(Config) (Window, error) { return &scriptWindow{}, nil })
	require.ErrorAs(t, err, &sie)
}

func TestInputPoll(t *testing.T) {
	win := &scriptWindow{mouseX: 10.5, mouseY: 2, left: true, keys: []Key{KeySpace, KeyW}}
	in := NewInput()
	in.Poll(win)

	x, y := in.Mouse()
	assert.Equal(t, 10.5, x)
	assert.Equal(t, 2.0, y)
	assert.True(t, in.MouseDown(MouseLeft))
	assert.False(t, in.MouseDown(MouseRight))
	assert.False(t, in.MouseDown(MouseButton(7)))
	assert.True(t, in.IsKeyDown(KeySpace))
	assert.ElementsMatch(t, []Key{KeySpace, KeyW}, in.Keys())

	win.keys = nil
	win.left = false
	in.Poll(win)
	assert.False(t, in.IsKeyDown(KeySpace))
	assert.False(t, in.MouseDown(MouseLeft))
	assert.Empty(t, in.Keys())
}

func TestLayerStackOrder(t *testing.T) {
	var ls LayerStack
	a, b := &countingLayer{}, &countingLayer{}
	ls.Push(a)
	ls.Push(b)
	assert.Equal(t, 2, ls.Len())

	var order []Layer
	ls.ForEachReverse(func(l Layer) bool {
		order = append(order, l)
		return false
	})
	assert.Equal(t, []Layer{b, a}, order)

	var stopped []Layer
	ls.ForEachReverse(func(l Layer) bool {
		stopped = append(stopped, l)
		return true
	})
	assert.Equal(t, []Layer{b}, stopped)

	ls.Clear()
	assert.Zero(t, ls.Len())
}

// orderedLayer appends its name to a shared log on detach.
type orderedLayer struct {
	countingLayer
	name string
	log  *[]string
}

func (l *orderedLayer) OnDetach(e *Engine) { *l.log = append(*l.log, l.name) }

type stackApp struct {
	*recordingApp
	layers []Layer
	left   int
}

func (a *stackApp) OnStart(e *Engine) {
	for _, l := range a.layers {
		e.PushLayer(l)
	}
}

func (a *stackApp) OnShutdown(e *Engine) { a.left = e.Layers.Len() }

func TestRunDetachesTopDown(t *testing.T) {
	var detached []string
	app := &stackApp{recordingApp: &recordingApp{}}
	for _, name := range []string{"world", "menu", "debug"} {
		app.layers = append(app.layers, &orderedLayer{name: name, log: &detached})
	}

	win := &scriptWindow{frames: 1}
	require.NoError(t, Run(app, testConfig(), func(Config) (Window, error) { return win, nil }))

	assert.Equal(t, []string{"debug", "menu", "world"}, detached)
	assert.Zero(t, app.left, "stack is empty by shutdown")
}
