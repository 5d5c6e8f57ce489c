package surface

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hubastard/pixelgrove/engine/colors"
)

// Snapshot copies the current pixels into a non-premultiplied RGBA image.
func (s *Surface) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for i, p := range s.pixels {
		c := colors.Color(p)
		o := i * 4
		img.Pix[o+0] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = c.A()
	}
	return img
}

// SavePNG writes a snapshot of the surface to path.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the caller
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, s.Snapshot()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
