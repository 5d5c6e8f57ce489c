package surface

import (
	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/colors"
)

var log = logrus.WithField("component", "surface")

// Surface is a fixed-size framebuffer of packed 0xAARRGGBB pixels laid out row-major:
// the pixel at (y, x) lives at index y*width+x. It is never resized.
type Surface struct {
	width   int
	height  int
	scale   int
	pixels  []uint32
	workers int
}

// New creates a screen surface cleared to opaque black. scale is the integer
// factor the window provider stretches the surface by.
func New(width, height, scale int, opts ...Option) *Surface {
	s := newSurface(width, height, scale, opts)
	s.Clear(colors.Black)
	return s
}

// NewBuffer creates an off-screen buffer cleared to transparent, used by widgets
// and text as a private compositing target.
func NewBuffer(height, width int, opts ...Option) *Surface {
	return newSurface(width, height, 1, opts)
}

func newSurface(width, height, scale int, opts []Option) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if scale < 1 {
		scale = 1
	}
	s := &Surface{
		width:   width,
		height:  height,
		scale:   scale,
		pixels:  make([]uint32, width*height),
		workers: 1,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }
func (s *Surface) Scale() int  { return s.scale }
func (s *Surface) Len() int    { return len(s.pixels) }

// Pixels exposes the backing slice. Writers must keep to the y*width+x layout.
func (s *Surface) Pixels() []uint32 { return s.pixels }

// At returns the pixel at (y, x), or Transparent outside the surface.
func (s *Surface) At(y, x int) colors.Color {
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		return colors.Transparent
	}
	return colors.Color(s.pixels[y*s.width+x])
}

// Set writes a single pixel, ignoring coordinates outside the surface.
func (s *Surface) Set(y, x int, c colors.Color) {
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		return
	}
	s.pixels[y*s.width+x] = uint32(c)
}

// Clear fills every pixel with c.
func (s *Surface) Clear(c colors.Color) {
	v := uint32(c)
	for i := range s.pixels {
		s.pixels[i] = v
	}
}
