package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/pixelgrove/engine/colors"
	"github.com/hubastard/pixelgrove/engine/core"
	"github.com/hubastard/pixelgrove/engine/surface"
	"github.com/hubastard/pixelgrove/engine/text"
)

type pointer struct {
	x, y float64
	down bool
}

func (p pointer) Mouse() (float64, float64) { return p.x, p.y }
func (p pointer) MouseDown(b core.MouseButton) bool {
	return b == core.MouseLeft && p.down
}

var testStyle = ButtonStyle{
	Base:            colors.Blue,
	Hovered:         colors.Cyan,
	Disabled:        colors.Gray,
	Border:          colors.Red,
	BorderThickness: 2,
}

func testFont(t *testing.T) *text.Font {
	t.Helper()
	f, err := text.LoadFont(goregular.TTF)
	require.NoError(t, err)
	return f
}

func newButton(t *testing.T, cfg ButtonConfig) *Button {
	t.Helper()
	b, err := NewButton(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{Y: 10, X: 10, H: 40, W: 20}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(30, 50))
	assert.False(t, r.Contains(31, 50))
	assert.False(t, r.Contains(30, 51))
	assert.False(t, r.Contains(9, 20))
}

func TestButtonPressAndDebounce(t *testing.T) {
	b := newButton(t, ButtonConfig{Bounds: Rect{Y: 10, X: 10, H: 40, W: 20}, Style: testStyle, Debounce: 5})
	require.True(t, b.Enabled())

	b.Update(pointer{x: 20, y: 20, down: true})
	assert.True(t, b.Pressed())
	assert.True(t, b.Hovered())
	assert.Equal(t, 5, b.Remaining())
	assert.Equal(t, StatePressed, b.State())

	released := pointer{x: 20, y: 20}
	for want := 4; want >= 0; want-- {
		b.Update(released)
		assert.Equal(t, want, b.Remaining())
		assert.False(t, b.Enabled())
		assert.False(t, b.Hovered())
		assert.False(t, b.Pressed())
		assert.Equal(t, StateDisabled, b.State())
	}

	b.Update(released)
	assert.True(t, b.Enabled())
	assert.True(t, b.Hovered())
	assert.Equal(t, StateHovered, b.State())
}

func TestButtonIgnoresPressWhileDebouncing(t *testing.T) {
	b := newButton(t, ButtonConfig{Bounds: Rect{H: 10, W: 10}, Style: testStyle, Debounce: 3})
	clicks := 0
	b.OnClick(func(*Button) { clicks++ })

	held := pointer{x: 5, y: 5, down: true}
	b.Update(held)
	for i := 0; i < 3; i++ {
		b.Update(held)
		assert.False(t, b.Pressed())
	}
	b.Update(held)
	assert.True(t, b.Pressed())
	assert.Equal(t, 2, clicks)
}

func TestButtonPressRequiresHover(t *testing.T) {
	b := newButton(t, ButtonConfig{Bounds: Rect{Y: 10, X: 10, H: 40, W: 20}, Style: testStyle, Debounce: 5})
	b.Update(pointer{x: 0, y: 0, down: true})
	assert.False(t, b.Pressed())
	assert.Zero(t, b.Remaining())
	assert.Equal(t, StateIdle, b.State())
}

func TestHoverFloorsNegativeFractions(t *testing.T) {
	r := Rect{H: 10, W: 10}
	assert.False(t, hovering(pointer{x: -0.9, y: -0.9}, r))
	assert.False(t, hovering(pointer{x: 3, y: -0.1}, r))
	assert.True(t, hovering(pointer{x: 0.4, y: 0.4}, r))
	assert.True(t, hovering(pointer{x: 10.9, y: 10.9}, r))

	b := newButton(t, ButtonConfig{Bounds: r, Style: testStyle, Debounce: 5})
	b.Update(pointer{x: -0.9, y: -0.9, down: true})
	assert.False(t, b.Pressed())
	b.Update(pointer{x: 0.5, y: 0.5, down: true})
	assert.True(t, b.Pressed())
}

func TestButtonRendersOnlyOnTransition(t *testing.T) {
	b := newButton(t, ButtonConfig{Bounds: Rect{Y: 10, X: 10, H: 40, W: 20}, Style: testStyle, Debounce: 5})
	assert.Equal(t, 1, b.renders)

	away := pointer{x: 100, y: 100}
	b.Update(away)
	b.Update(away)
	assert.Equal(t, 1, b.renders)

	b.Update(pointer{x: 20, y: 20, down: true})
	assert.Equal(t, 2, b.renders)

	for i := 0; i < 5; i++ {
		b.Update(pointer{x: 20, y: 20})
	}
	assert.Equal(t, 3, b.renders)

	b.Update(pointer{x: 20, y: 20})
	assert.Equal(t, 4, b.renders)
}

func TestButtonRenderColors(t *testing.T) {
	b := newButton(t, ButtonConfig{Bounds: Rect{H: 10, W: 20}, Style: testStyle})
	buf := b.Buffer()
	assert.Equal(t, colors.Red, buf.At(0, 0))
	assert.Equal(t, colors.Red, buf.At(1, 1))
	assert.Equal(t, colors.Red, buf.At(9, 19))
	assert.Equal(t, colors.Blue, buf.At(2, 2))
	assert.Equal(t, colors.Blue, buf.At(7, 17))

	b.Update(pointer{x: 5, y: 5})
	assert.Equal(t, colors.Cyan, buf.At(5, 5))
	assert.Equal(t, colors.Red, buf.At(0, 0))
}

func TestButtonRenderIdempotent(t *testing.T) {
	b := newButton(t, ButtonConfig{
		Bounds: Rect{H: 30, W: 80},
		Style:  testStyle,
		Text:   "Go",
		Label:  TextStyle{Font: testFont(t), PointSize: 16, Color: colors.White, Edge: colors.Gray},
	})
	before := append([]uint32(nil), b.Buffer().Pixels()...)
	b.Render()
	assert.Equal(t, before, b.Buffer().Pixels())
	b.Render()
	assert.Equal(t, before, b.Buffer().Pixels())
}

func TestButtonLabelOverlay(t *testing.T) {
	b := newButton(t, ButtonConfig{
		Bounds: Rect{H: 30, W: 80},
		Style:  testStyle,
		Text:   "Go",
		Label:  TextStyle{Font: testFont(t), PointSize: 16, Color: colors.White},
	})
	var white, base int
	for _, p := range b.Buffer().Pixels() {
		c := colors.Color(p)
		require.False(t, c.IsTransparent())
		switch c {
		case colors.White:
			white++
		case colors.Blue:
			base++
		}
	}
	assert.Positive(t, white)
	assert.Positive(t, base)

	// Label is centered: ink must not touch the border.
	for y := 0; y < 30; y++ {
		assert.NotEqual(t, colors.White, b.Buffer().At(y, 0))
		assert.NotEqual(t, colors.White, b.Buffer().At(y, 79))
	}

	before := append([]uint32(nil), b.Buffer().Pixels()...)
	b.SetText("Stop")
	assert.NotEqual(t, before, b.Buffer().Pixels())
}

func TestButtonConfigErrors(t *testing.T) {
	_, err := NewButton(ButtonConfig{Bounds: Rect{H: 0, W: 10}})
	assert.Error(t, err)
	_, err = NewButton(ButtonConfig{Bounds: Rect{H: 10, W: 10}, Text: "no font"})
	assert.Error(t, err)
	_, err = NewButton(ButtonConfig{Bounds: Rect{H: 10, W: 10}, Debounce: -1})
	assert.Error(t, err)
}

func TestDrawSkipsTransparentCells(t *testing.T) {
	l, err := NewLabel(LabelConfig{
		Bounds: Rect{Y: 5, X: 5, H: 30, W: 60},
		Text:   "Hi",
		Style:  TextStyle{Font: testFont(t), PointSize: 20, Color: colors.White},
	})
	require.NoError(t, err)
	defer l.Close()

	s := surface.New(80, 50, 1)
	s.Clear(colors.Green)
	require.NoError(t, l.Draw(s))

	var white, green int
	for _, p := range s.Pixels() {
		switch colors.Color(p) {
		case colors.White:
			white++
		case colors.Green:
			green++
		}
	}
	assert.Positive(t, white)
	assert.Equal(t, 80*50, white+green)
	assert.Equal(t, colors.Green, s.At(0, 0))
	assert.Equal(t, colors.Green, s.At(5, 5))
}

func TestLabelSetTextIsDirtyDriven(t *testing.T) {
	l, err := NewLabel(LabelConfig{
		Bounds:     Rect{H: 30, W: 100},
		Text:       "one",
		Style:      TextStyle{Font: testFont(t), PointSize: 16, Color: colors.White},
		Background: colors.Black,
	})
	require.NoError(t, err)
	defer l.Close()
	require.Equal(t, 1, l.renders)

	p := pointer{x: 10, y: 10}
	l.Update(p)
	assert.Equal(t, 1, l.renders)

	before := append([]uint32(nil), l.Buffer().Pixels()...)
	l.SetText("one")
	l.Update(p)
	assert.Equal(t, 1, l.renders)

	l.SetText("two")
	assert.Equal(t, 1, l.renders)
	l.Update(p)
	assert.Equal(t, 2, l.renders)
	assert.NotEqual(t, before, l.Buffer().Pixels())
	assert.Equal(t, colors.Black, l.Buffer().At(0, 0))
}

func TestLabelHoverBackground(t *testing.T) {
	l, err := NewLabel(LabelConfig{
		Bounds:          Rect{H: 20, W: 40},
		Text:            "x",
		Style:           TextStyle{Font: testFont(t), PointSize: 12, Color: colors.White},
		Background:      colors.Black,
		HoverBackground: colors.Magenta,
	})
	require.NoError(t, err)
	defer l.Close()

	l.Update(pointer{x: 5, y: 5})
	assert.True(t, l.Hovered())
	assert.Equal(t, colors.Magenta, l.Buffer().At(19, 39))

	l.Update(pointer{x: 100, y: 100})
	assert.False(t, l.Hovered())
	assert.Equal(t, colors.Black, l.Buffer().At(19, 39))
	assert.Equal(t, 3, l.renders)
}

func TestLayerUpdatesAndDraws(t *testing.T) {
	b := newButton(t, ButtonConfig{Bounds: Rect{Y: 2, X: 2, H: 4, W: 4}, Style: testStyle})
	layer := NewLayer("test").Add(b)
	require.Len(t, layer.Widgets(), 1)

	layer.OnUpdate(nil, core.NewInput())
	assert.False(t, b.Hovered())

	s := surface.New(10, 10, 1)
	layer.OnRender(nil, s)
	assert.Equal(t, colors.Red, s.At(2, 2))
	assert.Equal(t, colors.Black, s.At(0, 0))
	assert.Equal(t, colors.Black, s.At(9, 9))

	layer.OnDetach(nil)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "disabled", StateDisabled.String())
	assert.Equal(t, StateDisabled, stateOf(false, true, true))
	assert.Equal(t, StatePressed, stateOf(true, true, true))
}
