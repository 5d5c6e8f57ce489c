package main

import (
	"fmt"

	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/core"
	"github.com/hubastard/pixelgrove/engine/text"
	"github.com/hubastard/pixelgrove/engine/ui"
)

// menu is a column of buttons with a status line underneath.
type menu struct {
	layer  *ui.Layer
	status *ui.Label
	clicks int
}

func newMenu(font *text.Font, e *core.Engine) (*menu, error) {
	m := &menu{}
	label := ui.TextStyle{Font: font, PointSize: 14, Color: colors.White, Edge: colors.Gray}

	var err error
	m.status, err = ui.NewLabel(ui.LabelConfig{
		Bounds:          ui.Rect{Y: 140, X: 10, H: 20, W: 200},
		Text:            "click a button",
		Style:           label,
		Padding:         2,
		HoverBackground: colors.DarkGray,
	})
	if err != nil {
		return nil, err
	}

	m.layer = ui.NewLayer("menu")
	entries := []struct {
		name string
		fn   func(*ui.Button)
	}{
		{"Count", func(b *ui.Button) {
			m.clicks++
			m.status.SetText(fmt.Sprintf("clicked \x1b[33m%d\x1b[39m times", m.clicks))
		}},
		{"Reset", func(*ui.Button) {
			m.clicks = 0
			m.status.SetText("\x1b[36mreset")
		}},
		{"Quit", func(*ui.Button) { e.RequestClose() }},
	}
	for i, entry := range entries {
		b, err := ui.NewButton(ui.ButtonConfig{
			Bounds:   ui.Rect{Y: 10 + i*40, X: 10, H: 30, W: 90},
			Style:    ui.DefaultButtonStyle,
			Debounce: 10,
			Text:     entry.name,
			Label:    label,
		})
		if err != nil {
			return nil, err
		}
		m.layer.Add(b.OnClick(entry.fn))
	}
	m.layer.Add(m.status)
	return m, nil
}
