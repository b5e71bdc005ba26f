package glimpse

import (
	"testing"

	"github.com/oliverbestmann/panorama/glm"
	"golang.org/x/mobile/event/touch"
)

func event(seq touch.Sequence, typ touch.Type, x, y float32) touch.Event {
	return touch.Event{X: x, Y: y, Sequence: seq, Type: typ}
}

func TestTouchStateLifecycle(t *testing.T) {
	var state TouchState

	state.handle(event(7, touch.TypeBegin, 10, 10))
	state.handle(event(7, touch.TypeMove, 15, 8))
	state.handle(event(7, touch.TypeMove, 20, 12))

	if state.Count() != 1 {
		t.Fatalf("expected one active touch, got %d", state.Count())
	}

	got := state.Get(0)
	if got.Delta != (glm.Vec2f{10, 2}) {
		t.Fatalf("expected accumulated delta {10 2}, got %v", got.Delta)
	}

	if got.Position != (glm.Vec2f{20, 12}) {
		t.Fatalf("unexpected position %v", got.Position)
	}

	state.nextTick()

	if delta := state.Get(0).Delta; delta != (glm.Vec2f{}) {
		t.Fatalf("expected delta to reset on next tick, got %v", delta)
	}

	state.handle(event(7, touch.TypeEnd, 20, 12))

	if state.Count() != 0 {
		t.Fatalf("expected no active touches, got %d", state.Count())
	}
}

func TestTouchStatePrimaryIsOldest(t *testing.T) {
	var state TouchState

	state.handle(event(1, touch.TypeBegin, 0, 0))
	state.handle(event(2, touch.TypeBegin, 50, 50))

	if state.Get(0).ID != 1 {
		t.Fatalf("expected touch 1 to be primary, got %d", state.Get(0).ID)
	}

	state.handle(event(1, touch.TypeEnd, 0, 0))

	if state.Count() != 1 || state.Get(0).ID != 2 {
		t.Fatalf("expected touch 2 to become primary, got %+v", state.active)
	}
}

func TestTouchStateIgnoresUnknownSequences(t *testing.T) {
	var state TouchState

	state.handle(event(3, touch.TypeMove, 5, 5))
	state.handle(event(3, touch.TypeEnd, 5, 5))

	if state.Count() != 0 {
		t.Fatalf("expected no active touches, got %d", state.Count())
	}
}

func TestTouchStateCloneIsIndependent(t *testing.T) {
	var state TouchState
	state.handle(event(1, touch.TypeBegin, 0, 0))

	snapshot := state.clone()
	state.handle(event(1, touch.TypeMove, 4, 0))

	if delta := snapshot.Get(0).Delta; delta != (glm.Vec2f{}) {
		t.Fatalf("snapshot changed with the live state: %v", delta)
	}
}
