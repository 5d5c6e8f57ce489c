package main

import (
	"github.com/hubastard/pixelgrove/engine/assets"
	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/core"
	"github.com/hubastard/pixelgrove/engine/profiler"
	"github.com/hubastard/pixelgrove/engine/surface"
)

// ------- A simple sprite layer: WASD or arrows move the player -------
type Layer2D struct {
	path   string
	pixels []uint32
	h, w   int
	y, x   int
	speed  int
}

func newLayer2D(path string) *Layer2D { return &Layer2D{path: path, speed: 2} }

func (l *Layer2D) OnAttach(e *core.Engine) {
	if l.path != "" {
		var err error
		l.pixels, l.h, l.w, err = assets.LoadSprite(l.path)
		if err != nil {
			log.WithError(err).Warn("falling back to the generated sprite")
		}
	}
	if l.pixels == nil {
		l.pixels, l.h, l.w = diamond(24)
	}
	l.y = (e.Surface.Height() - l.h) / 2
	l.x = (e.Surface.Width() - l.w) / 2
}

func (l *Layer2D) OnDetach(e *core.Engine) {}

func (l *Layer2D) OnUpdate(e *core.Engine, in *core.Input) {
	if in.IsKeyDown(core.KeyW) || in.IsKeyDown(core.KeyUp) {
		l.y -= l.speed
	}
	if in.IsKeyDown(core.KeyS) || in.IsKeyDown(core.KeyDown) {
		l.y += l.speed
	}
	if in.IsKeyDown(core.KeyA) || in.IsKeyDown(core.KeyLeft) {
		l.x -= l.speed
	}
	if in.IsKeyDown(core.KeyD) || in.IsKeyDown(core.KeyRight) {
		l.x += l.speed
	}
}

func (l *Layer2D) OnRender(e *core.Engine, s *surface.Surface) {
	renderEnd := profiler.Start("Layer2D.OnRender")
	defer renderEnd()

	// A floor band, partly off screen on purpose.
	s.FillRect(s.Height()-12, -20, 40, s.Width()+40, colors.DarkGray)
	if err := s.Blit(l.pixels, l.h, l.w, l.y, l.x); err != nil {
		log.WithError(err).Warn("sprite blit")
	}
}

// diamond is a size x size sprite with transparent corners.
func diamond(size int) ([]uint32, int, int) {
	px := make([]uint32, size*size)
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := abs(x-half) + abs(y-half)
			switch {
			case d < half/2:
				px[y*size+x] = uint32(colors.Yellow)
			case d < half:
				px[y*size+x] = uint32(colors.Magenta)
			}
		}
	}
	return px, size, size
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
