package ui

// State is the effective interactive state of a widget. Disabled wins over
// everything else.
type State int

const (
	StateIdle State = iota
	StateHovered
	StatePressed
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovered:
		return "hovered"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	}
	return "unknown"
}

func stateOf(enabled, hovered, pressed bool) State {
	switch {
	case !enabled:
		return StateDisabled
	case pressed:
		return StatePressed
	case hovered:
		return StateHovered
	}
	return StateIdle
}
