package glimpse

import (
	"testing"

	"github.com/oliverbestmann/panorama/glm"
)

func TestMouseDragEmulatesTouch(t *testing.T) {
	state := InputState{EmulateTouch: true}

	state.mouseMoved(100, 100)
	if state.Touches.Count() != 0 {
		t.Fatalf("hovering must not create a touch")
	}

	state.mouseButton(MouseButtonLeft, true)
	state.mouseMoved(110, 95)

	if state.Touches.Count() != 1 {
		t.Fatalf("expected one emulated touch, got %d", state.Touches.Count())
	}

	if delta := state.Touches.Get(0).Delta; delta != (glm.Vec2f{10, -5}) {
		t.Fatalf("unexpected emulated delta %v", delta)
	}

	state.mouseButton(MouseButtonLeft, false)

	if state.Touches.Count() != 0 {
		t.Fatalf("expected touch to end on release")
	}
}

func TestMouseDragWithoutEmulation(t *testing.T) {
	var state InputState

	state.mouseButton(MouseButtonLeft, true)
	state.mouseMoved(5, 5)

	if state.Touches.Count() != 0 {
		t.Fatalf("expected no touches without emulation")
	}

	if !state.Mouse.Pressed[MouseButtonLeft] {
		t.Fatalf("expected left button to be pressed")
	}
}

func TestMouseDeltaResetsOnTick(t *testing.T) {
	var state InputState

	state.mouseMoved(3, 4)
	state.mouseMoved(5, 4)

	if state.Mouse.DeltaX != 5 || state.Mouse.DeltaY != 4 {
		t.Fatalf("unexpected delta %v, %v", state.Mouse.DeltaX, state.Mouse.DeltaY)
	}

	state.nextTick()

	if state.Mouse.DeltaX != 0 || state.Mouse.DeltaY != 0 {
		t.Fatalf("expected delta reset")
	}
}

func TestSnapshotDoesNotShareState(t *testing.T) {
	state := InputState{EmulateTouch: true}
	state.mouseButton(MouseButtonLeft, true)

	snapshot := state.snapshot()
	state.mouseButton(MouseButtonLeft, false)

	if !snapshot.Mouse.Pressed[MouseButtonLeft] {
		t.Fatalf("snapshot lost the pressed button")
	}

	if snapshot.Touches.Count() != 1 {
		t.Fatalf("snapshot lost the active touch")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GLIMPSE_PROFILE", "cpu")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if config.Profile != "cpu" {
		t.Fatalf("expected cpu profile, got %q", config.Profile)
	}

	t.Setenv("GLIMPSE_PROFILE", "block")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatalf("expected error for unknown profile mode")
	}
}
