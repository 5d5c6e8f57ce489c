package ui

import (
	"errors"
	"io"

	"github.com/hubastard/pixelgrove/engine/core"
	"github.com/hubastard/pixelgrove/engine/surface"
)

// Layer groups widgets into one core.Layer. Widgets update and draw in the order
// they were added, so later widgets draw on top.
type Layer struct {
	name    string
	widgets []Widget
}

func NewLayer(name string, widgets ...Widget) *Layer {
	return &Layer{name: name, widgets: widgets}
}

func (l *Layer) Add(w Widget) *Layer {
	l.widgets = append(l.widgets, w)
	return l
}

func (l *Layer) Widgets() []Widget { return l.widgets }

func (l *Layer) OnAttach(e *core.Engine) {
	log.WithField("layer", l.name).WithField("widgets", len(l.widgets)).Debug("layer attached")
}

// OnDetach releases widgets that hold font faces.
func (l *Layer) OnDetach(e *core.Engine) {
	var errs []error
	for _, w := range l.widgets {
		if c, ok := w.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.WithError(err).WithField("layer", l.name).Warn("closing widgets")
	}
}

func (l *Layer) OnUpdate(e *core.Engine, in *core.Input) {
	for _, w := range l.widgets {
		w.Update(in)
	}
}

func (l *Layer) OnRender(e *core.Engine, s *surface.Surface) {
	for _, w := range l.widgets {
		if err := w.Draw(s); err != nil {
			log.WithError(err).WithField("layer", l.name).Warn("widget draw failed")
		}
	}
}
