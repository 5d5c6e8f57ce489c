package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/profiler"
	"github.com/hubastard/pixelgrove/engine/surface"
)

// Run opens the window, builds the surface and drives the frame loop:
// poll input, update, render, present, pace. It returns when the window closes or
// the app calls RequestClose.
func Run(app App, cfg Config, newWindow func(Config) (Window, error)) error {
	// Window providers require the main OS thread.
	runtime.LockOSThread()

	log.WithFields(logrus.Fields{
		"version": Version,
		"size":    fmt.Sprintf("%dx%d@%d", cfg.Width, cfg.Height, cfg.Scale),
		"fps":     cfg.FPS,
	}).Info("Booting pixelgrove")

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &SurfaceInitError{Err: fmt.Errorf("invalid surface size %dx%d", cfg.Width, cfg.Height)}
	}
	win, err := newWindow(cfg)
	if err != nil {
		return &SurfaceInitError{Err: err}
	}
	defer win.Close()

	eng := &Engine{
		Window:  win,
		Surface: surface.New(cfg.Width, cfg.Height, cfg.Scale, surface.WithWorkers(cfg.Workers)),
		Input:   NewInput(),
		Frames:  NewFrameController(cfg.FPS),
		start:   time.Now(),
	}

	app.OnStart(eng)

	for win.IsOpen() && !eng.closing {
		eng.Frames.Begin()

		win.PollEvents()
		eng.Input.Poll(win)

		endUpdate := profiler.Start("frame.update")
		app.OnUpdate(eng, eng.Input)
		eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, eng.Input) })
		endUpdate()

		endRender := profiler.Start("frame.render")
		app.OnRender(eng, eng.Surface)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, eng.Surface) })
		endRender()

		endPresent := profiler.Start("frame.present")
		if err := win.Present(eng.Surface.Pixels(), eng.Surface.Width(), eng.Surface.Height()); err != nil {
			log.WithError(err).Warn("present failed")
		}
		endPresent()

		report := eng.Frames.End()
		win.SetTitle(cfg.Title + " - " + report.String())
		app.OnFrame(eng, report)
	}

	// Top layers detach first, mirroring the attach order.
	eng.Layers.ForEachReverse(func(l Layer) bool {
		l.OnDetach(eng)
		return false
	})
	eng.Layers.Clear()
	app.OnShutdown(eng)
	profiler.Report()
	log.WithField("uptime", eng.Uptime().Round(time.Millisecond)).Info("Engine exit")
	return nil
}

// PushLayer adds l on top of the stack and attaches it.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}
