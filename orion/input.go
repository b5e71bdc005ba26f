package orion

import (
	"github.com/oliverbestmann/panorama/glimpse"
)

type Touch = glimpse.Touch

// NumTouches returns the number of active touches. Returns zero outside of a frame.
func NumTouches() int {
	inputState, ok := currentInputState.TryGet()
	if !ok {
		return 0
	}

	return inputState.Touches.Count()
}

// TouchAt returns the active touch at the given index. Index zero is the primary touch.
func TouchAt(idx int) Touch {
	inputState := currentInputState.Get()
	return inputState.Touches.Get(idx)
}
