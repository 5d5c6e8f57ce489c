package text

import (
	"image"
	"strings"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/surface"
)

// Coverage thresholds for the color policy.
const (
	CoreCoverage = 0.65 // above: primary (or escape) color
	EdgeCoverage = 0.45 // above, up to CoreCoverage: secondary color if set
)

// Spec describes a block of text and where it goes in its target buffer.
// Output is clipped to [0,SizeY)x[0,SizeX) in target coordinates.
type Spec struct {
	PosY, PosX   int
	SizeY, SizeX int
	PointSize    int
	LineGap      int // extra pixels between lines
	CharGap      int // extra pixels per character, multiplied by its ordinal
	Primary      colors.Color
	Secondary    colors.Color // zero means no anti-aliased edge color
	Text         string
}

// LineAdvance is the vertical distance between consecutive baselines.
func (s Spec) LineAdvance() int { return s.PointSize/2 + s.LineGap }

// Layout shapes a Spec with a Rasterizer and writes the result into pixel buffers.
type Layout struct {
	spec   Spec
	raster *Rasterizer
}

func NewLayout(f *Font, spec Spec) (*Layout, error) {
	r, err := NewRasterizer(f, float64(spec.PointSize))
	if err != nil {
		return nil, err
	}
	return &Layout{spec: spec, raster: r}, nil
}

func (l *Layout) Spec() Spec { return l.spec }

func (l *Layout) SetText(s string) { l.spec.Text = s }

// SetPosition moves the anchor point of the first line.
func (l *Layout) SetPosition(y, x int) {
	l.spec.PosY, l.spec.PosX = y, x
}

// Shape lays out every line of the text. Escape tokens switch the fill color for
// the rest of their line and produce no glyphs.
func (l *Layout) Shape() []GlyphRun {
	lines := strings.Split(norm.NFC.String(l.spec.Text), "\n")
	runs := make([]GlyphRun, 0, len(lines))
	top := l.spec.PosY
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		runs = append(runs, l.shapeLine(i, line, top+l.raster.Ascent()))
		top += l.spec.LineAdvance()
	}
	return runs
}

func (l *Layout) shapeLine(idx int, line string, baseline int) GlyphRun {
	run := GlyphRun{Line: idx}
	active := l.spec.Primary
	pen := fixed.I(l.spec.PosX)
	prev := rune(-1)
	ordinal := 0

	for _, tok := range lex(line) {
		if tok.kind == tokenEscape {
			if tok.isDefault {
				active = l.spec.Primary
			} else {
				active = tok.color
			}
			continue
		}
		r := tok.r
		if !l.raster.HasGlyph(r) {
			log.WithError(&MissingGlyphError{Rune: r}).WithField("line", idx).Warn("skipping character")
			continue
		}
		if prev >= 0 {
			pen += l.raster.Kern(prev, r)
		}
		dot := fixed.Point26_6{
			X: pen + fixed.I(ordinal*l.spec.CharGap),
			Y: fixed.I(baseline),
		}
		g, adv, hasInk := l.raster.Glyph(r, dot)
		if hasInk {
			g.Ordinal = ordinal
			g.Color = active
			run.Glyphs = append(run.Glyphs, g)
		}
		pen += adv
		prev = r
		ordinal++
	}
	return run
}

// Bounds is the union of all glyph rectangles, before clipping.
func (l *Layout) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, run := range l.Shape() {
		for _, g := range run.Glyphs {
			b = b.Union(g.Rect)
		}
	}
	return b
}

// DrawTo rasterizes straight onto dst. Cells without enough coverage are left as
// they were, so whatever is underneath shows through.
func (l *Layout) DrawTo(dst *surface.Surface) {
	l.rasterize(dst)
}

// RenderBuffer rasterizes into a private buffer meant for a later masked blit. The
// buffer is reset to transparent first, so cells that receive no qualifying
// coverage never keep pixels from a previous pass.
func (l *Layout) RenderBuffer(dst *surface.Surface) {
	dst.Clear(colors.Transparent)
	l.rasterize(dst)
}

func (l *Layout) rasterize(dst *surface.Surface) {
	pix := dst.Pixels()
	width := dst.Width()
	limitY := min(l.spec.SizeY, dst.Height())
	limitX := min(l.spec.SizeX, width)

	var skipped int
	var first *surface.BoundsError
	for _, run := range l.Shape() {
		for gi := range run.Glyphs {
			g := &run.Glyphs[gi]
			for y := max(g.Rect.Min.Y, 0); y < min(g.Rect.Max.Y, limitY); y++ {
				for x := max(g.Rect.Min.X, 0); x < min(g.Rect.Max.X, limitX); x++ {
					c, ok := l.pick(g.CoverageAt(x, y), g.Color)
					if !ok {
						continue
					}
					i := y*width + x
					if i >= len(pix) {
						if first == nil {
							first = &surface.BoundsError{Index: i, Len: len(pix)}
						}
						skipped++
						continue
					}
					pix[i] = uint32(c)
				}
			}
		}
	}
	if skipped > 0 {
		log.WithError(first).WithField("skipped", skipped).Warn("glyph writes outside target buffer")
	}
}

// pick applies the coverage color policy.
func (l *Layout) pick(v float32, fill colors.Color) (colors.Color, bool) {
	switch {
	case v > CoreCoverage:
		return fill, true
	case v > EdgeCoverage && l.spec.Secondary != 0:
		return l.spec.Secondary, true
	default:
		return 0, false
	}
}

// Close releases the rasterizer's face.
func (l *Layout) Close() error { return l.raster.Close() }
