package glimpse

import (
	"slices"

	"github.com/oliverbestmann/panorama/glm"
	"golang.org/x/mobile/event/touch"
)

type Touch struct {
	ID touch.Sequence

	// Position of the touch in surface pixels
	Position glm.Vec2f

	// Delta is the movement since the previous tick
	Delta glm.Vec2f
}

// TouchState tracks the active touches in the order they began.
// The first active touch is the primary one.
type TouchState struct {
	active []Touch
}

func (t *TouchState) Count() int {
	return len(t.active)
}

// Get returns the active touch at the given index. Index zero is
// the touch that is active for the longest time.
func (t *TouchState) Get(idx int) Touch {
	return t.active[idx]
}

func (t *TouchState) handle(ev touch.Event) {
	pos := glm.Vec2f{ev.X, ev.Y}
	idx := t.indexOf(ev.Sequence)

	switch ev.Type {
	case touch.TypeBegin:
		if idx >= 0 {
			// a missed end event, restart the touch in place
			t.active[idx].Position = pos
			return
		}

		t.active = append(t.active, Touch{ID: ev.Sequence, Position: pos})

	case touch.TypeMove:
		if idx < 0 {
			return
		}

		current := &t.active[idx]
		current.Delta = current.Delta.Add(pos.Sub(current.Position))
		current.Position = pos

	case touch.TypeEnd:
		if idx < 0 {
			return
		}

		t.active = slices.Delete(t.active, idx, idx+1)
	}
}

func (t *TouchState) indexOf(seq touch.Sequence) int {
	return slices.IndexFunc(t.active, func(tc Touch) bool {
		return tc.ID == seq
	})
}

func (t *TouchState) nextTick() {
	for idx := range t.active {
		t.active[idx].Delta = glm.Vec2f{}
	}
}

func (t *TouchState) clone() TouchState {
	return TouchState{active: slices.Clone(t.active)}
}
