package main

import (
	"fmt"

	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/core"
	"github.com/hubastard/pixelgrove/engine/profiler"
	"github.com/hubastard/pixelgrove/engine/surface"
	"github.com/hubastard/pixelgrove/engine/text"
	"github.com/hubastard/pixelgrove/engine/ui"
)

const debugRefresh = 30 // frames between stat refreshes

// ------- Frame and memory stats in the top right corner, P toggles, Ctrl+P dumps a profile -------
type LayerDebug struct {
	label   *ui.Label
	visible bool
	wasDown bool
	frames  int
	last    core.FrameReport
}

func newLayerDebug(font *text.Font, surfaceWidth int) (*LayerDebug, error) {
	const w = 120
	label, err := ui.NewLabel(ui.LabelConfig{
		Bounds:     ui.Rect{Y: 4, X: surfaceWidth - w - 4, H: 66, W: w},
		Text:       "",
		Style:      ui.TextStyle{Font: font, PointSize: 12, LineGap: 8, Color: colors.White},
		Padding:    2,
		Background: colors.ARGB(0xFF, 0x10, 0x10, 0x10),
	})
	if err != nil {
		return nil, err
	}
	return &LayerDebug{label: label, visible: true}, nil
}

func (l *LayerDebug) Report(r core.FrameReport) { l.last = r }

func (l *LayerDebug) OnAttach(e *core.Engine) {}

func (l *LayerDebug) OnDetach(e *core.Engine) { _ = l.label.Close() }

func (l *LayerDebug) OnUpdate(e *core.Engine, in *core.Input) {
	down := in.IsKeyDown(core.KeyP)
	if down && !l.wasDown {
		if in.IsKeyDown(core.KeyCtrl) {
			l.openProfile()
		} else {
			l.visible = !l.visible
		}
	}
	l.wasDown = down

	if l.frames%debugRefresh == 0 {
		color := "\x1b[32m"
		if l.last.Overrun {
			color = "\x1b[31m"
		}
		l.label.SetText(fmt.Sprintf("%s%s\x1b[39m\nmem %.2f MB\nallocs %d\ngo %d cpu %d",
			color, l.last, float64(profiler.MemoryUsage())/(1<<20), profiler.MemoryAllocs(),
			profiler.NumGoroutine(), profiler.NumCPU()))
	}
	l.frames++
	l.label.Update(in)
}

// openProfile dumps the scope events and opens them in speedscope.
func (l *LayerDebug) openProfile() {
	path, err := profiler.OpenProfilerGraph()
	if err != nil {
		log.WithError(err).Warn("profiler dump")
		return
	}
	log.WithField("path", path).Info("speedscope dump")
}

func (l *LayerDebug) OnRender(e *core.Engine, s *surface.Surface) {
	if !l.visible {
		return
	}
	if err := l.label.Draw(s); err != nil {
		log.WithError(err).Warn("debug overlay")
	}
}
