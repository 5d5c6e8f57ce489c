package core

// Input is the per-frame snapshot of the provider's pointer and keyboard state.
// It is refreshed by Poll at the start of each frame and read-only afterwards.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	buttons        [3]bool
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

// Poll copies the current state out of the window.
func (in *Input) Poll(w Window) {
	in.mouseX, in.mouseY = w.MousePos()
	for b := MouseLeft; b <= MouseRight; b++ {
		in.buttons[b] = w.MouseDown(b)
	}
	clear(in.keys)
	for _, k := range w.PressedKeys() {
		in.keys[k] = true
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

func (in *Input) MouseDown(b MouseButton) bool {
	if b < MouseLeft || b > MouseRight {
		return false
	}
	return in.buttons[b]
}

// Keys returns the pressed keys in no particular order.
func (in *Input) Keys() []Key {
	out := make([]Key, 0, len(in.keys))
	for k, down := range in.keys {
		if down {
			out = append(out, k)
		}
	}
	return out
}
