package core

import "github.com/hubastard/pixelgrove/engine/surface"

// Layer is a unit of per-frame work. Layers update in push order and render in
// push order, so later layers draw on top.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, in *Input)
	OnRender(e *Engine, s *surface.Surface)
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

// Clear drops every layer without detaching it.
func (ls *LayerStack) Clear() {
	clear(ls.list)
	ls.list = ls.list[:0]
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

// ForEachReverse walks from the top of the stack down until f returns true.
func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}
