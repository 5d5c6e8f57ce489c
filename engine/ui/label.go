package ui

import (
	"errors"

	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/text"
)

type LabelConfig struct {
	Bounds          Rect
	Text            string
	Style           TextStyle
	Padding         int
	Background      colors.Color // zero leaves the area behind the text transparent
	HoverBackground colors.Color // zero disables hover tracking
}

// Label is static or programmatically updated text. It re-renders when its text
// changes or, with a hover background, when the pointer enters or leaves it.
type Label struct {
	base
	layout  *text.Layout
	bg      colors.Color
	hoverBg colors.Color
	hovered bool
	dirty   bool
	renders int
}

func NewLabel(cfg LabelConfig) (*Label, error) {
	b, err := newBase(cfg.Bounds)
	if err != nil {
		return nil, err
	}
	if cfg.Style.Font == nil {
		return nil, errors.New("ui: label needs a font")
	}
	spec := cfg.Style.spec(cfg.Text, cfg.Bounds)
	spec.PosY, spec.PosX = cfg.Padding, cfg.Padding
	layout, err := text.NewLayout(cfg.Style.Font, spec)
	if err != nil {
		return nil, err
	}
	l := &Label{base: b, layout: layout, bg: cfg.Background, hoverBg: cfg.HoverBackground}
	l.Render()
	return l, nil
}

func (l *Label) Text() string  { return l.layout.Spec().Text }
func (l *Label) Hovered() bool { return l.hovered }

// SetText swaps the text; the buffer is regenerated on the next Update.
func (l *Label) SetText(s string) {
	if s == l.Text() {
		return
	}
	l.layout.SetText(s)
	l.dirty = true
}

func (l *Label) Update(p PointerState) {
	if l.hoverBg != 0 {
		if h := hovering(p, l.bounds); h != l.hovered {
			l.hovered = h
			l.dirty = true
		}
	}
	if l.dirty {
		l.Render()
	}
}

// Render regenerates the private buffer.
func (l *Label) Render() {
	bg := l.bg
	if l.hovered && l.hoverBg != 0 {
		bg = l.hoverBg
	}
	if bg.IsTransparent() {
		l.layout.RenderBuffer(l.buf)
	} else {
		l.buf.Clear(bg)
		l.layout.DrawTo(l.buf)
	}
	l.dirty = false
	l.renders++
}

func (l *Label) Close() error { return l.layout.Close() }
