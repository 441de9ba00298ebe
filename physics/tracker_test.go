package physics

import (
	"testing"

	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

func TestPairTrackerEnterStayExit(t *testing.T) {
	e1 := core.PackEntity(1, 1)
	e2 := core.PackEntity(2, 1)
	contact := Contact{A: e1, B: e2, Penetration: 0.1, Normal: vmath.Vec3{X: -1}, Trigger: true}

	tr := NewPairTracker()

	events := tr.Update([]Contact{contact})
	if len(events) != 1 || events[0].Kind != PairEnter {
		t.Fatalf("Expected single enter event, got %v", events)
	}
	if !events[0].Trigger {
		t.Error("Expected trigger flag on enter event")
	}

	events = tr.Update([]Contact{contact})
	if len(events) != 1 || events[0].Kind != PairStay {
		t.Fatalf("Expected single stay event, got %v", events)
	}

	events = tr.Update(nil)
	if len(events) != 1 || events[0].Kind != PairExit {
		t.Fatalf("Expected single exit event, got %v", events)
	}
	if !events[0].Trigger {
		t.Error("Exit event must carry the previous frame's trigger flag")
	}

	// No further events once the pair is gone.
	if events = tr.Update(nil); len(events) != 0 {
		t.Errorf("Expected no events, got %v", events)
	}
}

func TestPairTrackerKeyOrderIndependent(t *testing.T) {
	e1 := core.PackEntity(1, 1)
	e2 := core.PackEntity(2, 1)

	tr := NewPairTracker()
	tr.Update([]Contact{{A: e1, B: e2, Normal: vmath.Vec3{X: 1}}})

	// Same pair reported with swapped order is a stay, not a new enter.
	events := tr.Update([]Contact{{A: e2, B: e1, Normal: vmath.Vec3{X: -1}}})
	if len(events) != 1 || events[0].Kind != PairStay {
		t.Fatalf("Expected stay for swapped pair order, got %v", events)
	}
}

func TestPairTrackerReset(t *testing.T) {
	e1 := core.PackEntity(1, 1)
	e2 := core.PackEntity(2, 1)
	c := Contact{A: e1, B: e2, Normal: vmath.Vec3{X: 1}}

	tr := NewPairTracker()
	tr.Update([]Contact{c})
	tr.Reset()

	events := tr.Update([]Contact{c})
	if len(events) != 1 || events[0].Kind != PairEnter {
		t.Fatalf("Expected enter after reset, got %v", events)
	}
}
