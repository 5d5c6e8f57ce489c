package ui

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/core"
	"github.com/hubastard/pixelgrove/engine/surface"
	"github.com/hubastard/pixelgrove/engine/text"
)

// ButtonStyle holds the colors a button paints itself with.
type ButtonStyle struct {
	Base            colors.Color
	Hovered         colors.Color
	Disabled        colors.Color // also shown while pressed and debouncing
	Border          colors.Color
	BorderThickness int
}

// DefaultButtonStyle is a gray button with a white border.
var DefaultButtonStyle = ButtonStyle{
	Base:            colors.DarkGray,
	Hovered:         colors.Gray,
	Disabled:        colors.RGB(0x30, 0x30, 0x30),
	Border:          colors.White,
	BorderThickness: 1,
}

type ButtonConfig struct {
	Bounds   Rect
	Style    ButtonStyle
	Debounce int // ticks a press disables the button for
	Text     string
	Label    TextStyle
}

// Button is a clickable rectangle with a centered label. Its private buffer is
// regenerated only when the enabled or hovered flag flips.
type Button struct {
	base
	style     ButtonStyle
	debounce  int
	remaining int
	enabled   bool
	hovered   bool
	pressed   bool

	label   *text.Layout
	textBuf *surface.Surface
	onClick func(*Button)
	renders int
}

func NewButton(cfg ButtonConfig) (*Button, error) {
	b, err := newBase(cfg.Bounds)
	if err != nil {
		return nil, err
	}
	if cfg.Debounce < 0 {
		return nil, errors.New("ui: negative debounce")
	}
	btn := &Button{
		base:     b,
		style:    cfg.Style,
		debounce: cfg.Debounce,
		enabled:  true,
	}
	if cfg.Label.Font != nil {
		btn.label, err = text.NewLayout(cfg.Label.Font, cfg.Label.spec(cfg.Text, cfg.Bounds))
		if err != nil {
			return nil, err
		}
	} else if cfg.Text != "" {
		return nil, errors.New("ui: button text needs a font")
	}
	btn.refreshText()
	btn.Render()
	return btn, nil
}

// OnClick registers fn to run on the tick a press lands.
func (b *Button) OnClick(fn func(*Button)) *Button { b.onClick = fn; return b }

func (b *Button) Style(s ButtonStyle) *Button {
	b.style = s
	b.Render()
	return b
}

func (b *Button) Enabled() bool  { return b.enabled }
func (b *Button) Hovered() bool  { return b.hovered }
func (b *Button) Pressed() bool  { return b.pressed }
func (b *Button) Remaining() int { return b.remaining }
func (b *Button) State() State   { return stateOf(b.enabled, b.hovered, b.pressed) }

// Update advances the state machine by one tick.
func (b *Button) Update(p PointerState) {
	wasEnabled, wasHovered := b.enabled, b.hovered

	if b.remaining > 0 {
		b.remaining--
		b.enabled = false
		b.hovered = false
	} else {
		b.enabled = true
		b.hovered = hovering(p, b.bounds)
	}

	if b.enabled != wasEnabled || b.hovered != wasHovered {
		b.Render()
	}

	if b.hovered && p.MouseDown(core.MouseLeft) {
		b.pressed = true
		b.remaining = b.debounce
		log.WithFields(logrus.Fields{"bounds": b.bounds, "debounce": b.debounce}).Debug("button pressed")
		if b.onClick != nil {
			b.onClick(b)
		}
	} else {
		b.pressed = false
	}
}

// Render regenerates the private buffer from the current state: border, interior,
// then the label wherever it has ink.
func (b *Button) Render() {
	h, w := b.bounds.H, b.bounds.W
	t := b.style.BorderThickness
	b.buf.FillRect(0, 0, h, w, b.style.Border)

	interior := b.style.Base
	switch {
	case !b.enabled:
		interior = b.style.Disabled
	case b.hovered:
		interior = b.style.Hovered
	}
	if ih, iw := h-2*t, w-2*t; ih > 0 && iw > 0 {
		b.buf.FillRect(t, t, ih, iw, interior)
	}

	if b.textBuf != nil {
		if err := b.buf.BlitSurface(b.textBuf, 0, 0); err != nil && !errors.Is(err, surface.ErrEmptyBuffer) {
			log.WithError(err).Warn("button label overlay failed")
		}
	}
	b.renders++
}

// SetText replaces the label and re-renders.
func (b *Button) SetText(s string) {
	if b.label == nil {
		log.WithField("bounds", b.bounds).Warn("button has no font, ignoring text")
		return
	}
	b.label.SetText(s)
	b.refreshText()
	b.Render()
}

func (b *Button) refreshText() {
	if b.label == nil {
		return
	}
	centered(b.label, b.bounds.H, b.bounds.W)
	b.textBuf = textBuffer(b.label, b.bounds.H, b.bounds.W)
}

// Close releases the label's font face.
func (b *Button) Close() error {
	if b.label == nil {
		return nil
	}
	return b.label.Close()
}
