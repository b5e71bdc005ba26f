package orion

import (
	"github.com/oliverbestmann/panorama/glimpse"
)

var currentInputState global[glimpse.InputState]

type global[T any] struct {
	value    T
	hasValue bool
}

func (g *global[T]) set(value T) *global[T] {
	if g.hasValue {
		panic("value already set")
	}

	g.value = value
	g.hasValue = true
	return g
}

func (g *global[T]) reset() {
	var tZero T
	g.value = tZero
	g.hasValue = false
}

func (g *global[T]) Get() T {
	if !g.hasValue {
		panic("must only be called after RunGame")
	}

	return g.value
}

func (g *global[T]) TryGet() (T, bool) {
	return g.value, g.hasValue
}

func resetGlobals() {
	currentInputState.reset()
}
