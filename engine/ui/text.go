package ui

import (
	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/surface"
	"github.com/hubastard/pixelgrove/engine/text"
)

// TextStyle configures the text drawn inside a widget.
type TextStyle struct {
	Font      *text.Font
	PointSize int
	LineGap   int
	CharGap   int
	Color     colors.Color
	Edge      colors.Color // anti-aliased edge color, zero to drop edges
}

func (ts TextStyle) spec(s string, bounds Rect) text.Spec {
	return text.Spec{
		SizeY: bounds.H, SizeX: bounds.W,
		PointSize: ts.PointSize,
		LineGap:   ts.LineGap,
		CharGap:   ts.CharGap,
		Primary:   ts.Color,
		Secondary: ts.Edge,
		Text:      s,
	}
}

// centered moves l so its inked extent sits in the middle of a h x w box.
func centered(l *text.Layout, h, w int) {
	l.SetPosition(0, 0)
	b := l.Bounds()
	if b.Empty() {
		return
	}
	l.SetPosition((h-b.Dy())/2-b.Min.Y, (w-b.Dx())/2-b.Min.X)
}

// textBuffer renders l into a fresh transparent buffer of the given size.
func textBuffer(l *text.Layout, h, w int) *surface.Surface {
	buf := surface.NewBuffer(h, w)
	if l != nil {
		l.RenderBuffer(buf)
	}
	return buf
}
