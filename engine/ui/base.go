package ui

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/core"
	"github.com/hubastard/pixelgrove/engine/surface"
)

var log = logrus.WithField("component", "ui")

// Rect is a widget's placement on the surface, in pixels.
type Rect struct {
	Y, X int
	H, W int
}

// Contains reports whether (x, y) lies in [X, X+W] x [Y, Y+H]. Both edges are
// inclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) String() string { return fmt.Sprintf("(%d,%d %dx%d)", r.Y, r.X, r.H, r.W) }

// PointerState is the input a widget reads on each tick. *core.Input satisfies it.
type PointerState interface {
	Mouse() (x, y float64)
	MouseDown(b core.MouseButton) bool
}

// Widget is anything a Layer can tick and draw.
type Widget interface {
	Update(p PointerState)
	Draw(s *surface.Surface) error
}

// base owns a widget's bounds and its private off-screen buffer.
type base struct {
	bounds Rect
	buf    *surface.Surface
}

func newBase(bounds Rect) (base, error) {
	if bounds.H <= 0 || bounds.W <= 0 {
		return base{}, fmt.Errorf("ui: invalid bounds %s", bounds)
	}
	return base{bounds: bounds, buf: surface.NewBuffer(bounds.H, bounds.W)}, nil
}

func (b *base) Bounds() Rect { return b.bounds }

// Buffer is the widget's private pixels, sized to its bounds.
func (b *base) Buffer() *surface.Surface { return b.buf }

// Draw blits the private buffer at the widget position. Transparent cells leave
// the surface untouched.
func (b *base) Draw(s *surface.Surface) error {
	return s.BlitSurface(b.buf, b.bounds.Y, b.bounds.X)
}

// hovering floors the pointer so fractions left of or above the origin stay
// outside a widget at 0,0.
func hovering(p PointerState, r Rect) bool {
	mx, my := p.Mouse()
	return r.Contains(int(math.Floor(mx)), int(math.Floor(my)))
}
