package colors

import "image/color"

// Color is a packed 0xAARRGGBB pixel. An alpha byte of zero marks a transparent
// cell; any other alpha is treated as fully opaque.
type Color uint32

const (
	Transparent Color = 0x00_000000

	White    Color = 0xFF_FFFFFF
	Black    Color = 0xFF_000000
	Red      Color = 0xFF_FF0000
	Green    Color = 0xFF_00FF00
	Blue     Color = 0xFF_0000FF
	Magenta  Color = 0xFF_FF00FF
	Cyan     Color = 0xFF_00FFFF
	Yellow   Color = 0xFF_FFFF00
	Gray     Color = 0xFF_808080
	DarkGray Color = 0xFF_14191F
)

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// IsTransparent reports whether the alpha byte is zero.
func (c Color) IsTransparent() bool { return c>>24 == 0 }

func (c Color) WithAlpha(a uint8) Color {
	return c&0x00_FFFFFF | Color(a)<<24
}

// NRGBA converts to the image/color representation (non-premultiplied).
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

func RGB(r, g, b uint8) Color { return ARGB(0xFF, r, g, b) }
