package surface

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hubastard/pixelgrove/engine/colors"
)

// Bands shorter than this are not worth a goroutine.
const minBandRows = 32

// bandStats collects the bounds violations seen by one row band.
type bandStats struct {
	skipped int
	first   int
}

func (b *bandStats) skip(i int) {
	if b.skipped == 0 {
		b.first = i
	}
	b.skipped++
}

func (b *bandStats) skipN(i, n int) {
	if n <= 0 {
		return
	}
	b.skip(i)
	b.skipped += n - 1
}

// FillRect writes c into every cell of the h x w rectangle at (y, x) that lies on
// the surface. Cells outside [0,height)x[0,width) are clipped silently.
func (s *Surface) FillRect(y, x, h, w int, c colors.Color) {
	if len(s.pixels) == 0 {
		log.WithError(ErrEmptyBuffer).Warn("fill_rect on empty surface")
		return
	}
	y0, y1 := clipSpan(y, h, s.height)
	x0, x1 := clipSpan(x, w, s.width)
	if y0 >= y1 || x0 >= x1 {
		return
	}

	v := uint32(c)
	s.forRows(y0, y1, func(band []uint32, r0, r1 int) bandStats {
		for row := 0; row < r1-r0; row++ {
			line := band[row*s.width : (row+1)*s.width]
			for xx := x0; xx < x1; xx++ {
				line[xx] = v
			}
		}
		return bandStats{}
	})
}

// Blit copies sprite, a row-major spriteH x spriteW pixel block, onto the surface with
// its top-left corner at (posY, posX). Source cells with a zero alpha byte leave the
// destination untouched. Destination cells off the surface are clipped; source
// indices past len(sprite) are skipped and reported once per call.
func (s *Surface) Blit(sprite []uint32, spriteH, spriteW, posY, posX int) error {
	if len(s.pixels) == 0 || len(sprite) == 0 {
		log.WithFields(logrus.Fields{
			"surface_len": len(s.pixels),
			"sprite_len":  len(sprite),
		}).Warn("blit skipped: empty buffer")
		return ErrEmptyBuffer
	}
	if spriteH <= 0 || spriteW <= 0 {
		return nil
	}
	y0, y1 := clipSpan(posY, spriteH, s.height)
	x0, x1 := clipSpan(posX, spriteW, s.width)
	if y0 >= y1 || x0 >= x1 {
		return nil
	}

	// Rows past lastRow start beyond the sprite, and multiplying them out could wrap.
	lastRow := (len(sprite) - 1) / spriteW
	stats := s.forRows(y0, y1, func(band []uint32, r0, r1 int) bandStats {
		var st bandStats
		for y := r0; y < r1; y++ {
			line := band[(y-r0)*s.width : (y-r0+1)*s.width]
			rowOff := y - posY
			if rowOff > lastRow {
				st.skipN(len(sprite), x1-x0)
				continue
			}
			src := rowOff * spriteW
			for x := x0; x < x1; x++ {
				si := src + (x - posX)
				if si < 0 || si >= len(sprite) {
					st.skip(si)
					continue
				}
				p := sprite[si]
				if p>>24 == 0 {
					continue
				}
				line[x] = p
			}
		}
		return st
	})
	if stats.skipped > 0 {
		log.WithError(&BoundsError{Index: stats.first, Len: len(sprite)}).
			WithField("skipped", stats.skipped).
			Warn("blit source shorter than its declared size")
	}
	return nil
}

// BlitSurface blits src as a sprite at (posY, posX).
func (s *Surface) BlitSurface(src *Surface, posY, posX int) error {
	return s.Blit(src.pixels, src.height, src.width, posY, posX)
}

// forRows runs fn over rows [y0, y1). With more than one worker the span is cut into
// contiguous bands, and each band gets its own subslice of the pixel array, so row y
// is only reachable through the band that owns [y*width, (y+1)*width). Wait is the
// only synchronization.
func (s *Surface) forRows(y0, y1 int, fn func(band []uint32, r0, r1 int) bandStats) bandStats {
	rows := y1 - y0
	bands := s.workers
	if limit := rows / minBandRows; bands > limit {
		bands = limit
	}
	if bands <= 1 {
		return fn(s.pixels[y0*s.width:y1*s.width], y0, y1)
	}

	per := (rows + bands - 1) / bands
	results := make([]bandStats, bands)
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < bands; i++ {
		r0 := y0 + i*per
		if r0 >= y1 {
			break
		}
		r1 := min(r0+per, y1)
		band := s.pixels[r0*s.width : r1*s.width : r1*s.width]
		g.Go(func() error {
			results[i] = fn(band, r0, r1)
			return nil
		})
	}
	_ = g.Wait()

	var total bandStats
	for _, r := range results {
		if r.skipped == 0 {
			continue
		}
		if total.skipped == 0 {
			total.first = r.first
		}
		total.skipped += r.skipped
	}
	return total
}

// clipSpan intersects [start, start+length) with [0, limit) without computing
// start+length, so huge lengths cannot overflow.
func clipSpan(start, length, limit int) (lo, hi int) {
	if length <= 0 || limit <= 0 || start >= limit {
		return 0, 0
	}
	if start < 0 {
		// -start wraps negative only for the minimum int, which no length can reach 0 from.
		if skip := -start; skip < 0 || length <= skip {
			return 0, 0
		}
		length += start
		start = 0
	}
	if length >= limit-start {
		return start, limit
	}
	return start, start + length
}
