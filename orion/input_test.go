package orion

import (
	"testing"

	"github.com/oliverbestmann/panorama/glimpse"
)

func TestNumTouchesOutsideOfFrame(t *testing.T) {
	if got := NumTouches(); got != 0 {
		t.Fatalf("expected no touches, got %d", got)
	}
}

func TestNumTouchesWithInputState(t *testing.T) {
	currentInputState.set(glimpse.InputState{})
	defer resetGlobals()

	if got := NumTouches(); got != 0 {
		t.Fatalf("expected no touches, got %d", got)
	}

	resetGlobals()

	if _, ok := currentInputState.TryGet(); ok {
		t.Fatalf("input state still set after reset")
	}
}
