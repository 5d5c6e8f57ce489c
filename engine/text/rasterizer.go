package text

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/pixelgrove/engine/colors"
)

// Glyph is one rasterized character placed in target coordinates.
type Glyph struct {
	Rune    rune
	Ordinal int          // position among the rendered characters of its line
	Color   colors.Color // fill color active when the glyph was shaped
	Rect    image.Rectangle
	// Coverage holds Rect.Dx()*Rect.Dy() ink values, row-major, 0 = none, 255 = full.
	Coverage []uint8
}

// CoverageAt returns the ink coverage in [0,1] at absolute (x, y).
func (g *Glyph) CoverageAt(x, y int) float32 {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return 0
	}
	i := (y-g.Rect.Min.Y)*g.Rect.Dx() + (x - g.Rect.Min.X)
	return float32(g.Coverage[i]) / 255
}

// GlyphRun is the shaped content of one line.
type GlyphRun struct {
	Line   int
	Glyphs []Glyph
}

// Rasterizer turns code points into coverage masks at a fixed point size. It owns a
// font face and a glyph lookup buffer, so it must not be shared across goroutines;
// the Font it was built from can be.
type Rasterizer struct {
	font   *Font
	face   font.Face
	ascent int
	buf    sfnt.Buffer
}

// NewRasterizer creates a face for f at pointSize (72 DPI, so points equal pixels).
func NewRasterizer(f *Font, pointSize float64) (*Rasterizer, error) {
	if f == nil {
		return nil, errors.New("text: nil font")
	}
	face, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size: pointSize, DPI: 72, Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return &Rasterizer{
		font:   f,
		face:   face,
		ascent: face.Metrics().Ascent.Round(),
	}, nil
}

// Ascent is the distance from the top of a line to its baseline, in pixels.
func (r *Rasterizer) Ascent() int { return r.ascent }

// HasGlyph reports whether the font maps c to a real glyph (not .notdef).
func (r *Rasterizer) HasGlyph(c rune) bool {
	idx, err := r.font.parsed.GlyphIndex(&r.buf, c)
	return err == nil && idx != 0
}

func (r *Rasterizer) Kern(prev, c rune) fixed.Int26_6 { return r.face.Kern(prev, c) }

func (r *Rasterizer) Advance(c rune) fixed.Int26_6 {
	adv, _ := r.face.GlyphAdvance(c)
	return adv
}

// Glyph rasterizes c with its baseline origin at dot. The coverage is copied out of
// the face, whose mask is reused by the next call. hasInk is false for glyphs with
// an empty bitmap (spaces); the advance is valid either way.
func (r *Rasterizer) Glyph(c rune, dot fixed.Point26_6) (g Glyph, advance fixed.Int26_6, hasInk bool) {
	dr, mask, maskp, advance, ok := r.face.Glyph(dot, c)
	if !ok {
		return Glyph{Rune: c}, r.Advance(c), false
	}
	if dr.Empty() || mask == nil {
		return Glyph{Rune: c}, advance, false
	}

	g = Glyph{
		Rune:     c,
		Rect:     dr,
		Coverage: make([]uint8, dr.Dx()*dr.Dy()),
	}
	alpha, isAlpha := mask.(*image.Alpha)
	i := 0
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			mx, my := maskp.X+x, maskp.Y+y
			if isAlpha {
				g.Coverage[i] = alpha.AlphaAt(mx, my).A
			} else {
				_, _, _, a := mask.At(mx, my).RGBA()
				g.Coverage[i] = uint8(a >> 8)
			}
			i++
		}
	}
	return g, advance, true
}

// Close releases the face.
func (r *Rasterizer) Close() error { return r.face.Close() }
