package script

import (
	"testing"
)

type speedBehavior struct {
	Base
	speed float64
}

func TestRegisterAndNew(t *testing.T) {
	Register("registry-test-mover", func(props map[string]any) Behavior {
		b := &speedBehavior{speed: 1}
		if v, ok := props["speed"].(float64); ok {
			b.speed = v
		}
		return b
	})

	b, err := New("registry-test-mover", map[string]any{"speed": 4.5})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mover, ok := b.(*speedBehavior)
	if !ok {
		t.Fatalf("factory returned %T", b)
	}
	if mover.speed != 4.5 {
		t.Errorf("speed = %v, want 4.5", mover.speed)
	}
}

func TestNewUnregistered(t *testing.T) {
	if _, err := New("registry-test-missing", nil); err == nil {
		t.Error("unregistered name accepted")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry-test-dup", func(map[string]any) Behavior { return Base{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register("registry-test-dup", func(map[string]any) Behavior { return Base{} })
}

func TestComponentLifecycleFlags(t *testing.T) {
	c := NewComponent("thing", Base{})
	if !c.Enabled {
		t.Error("new component should be enabled")
	}
	if c.Active() {
		t.Error("component active before any phase fired")
	}
	c.AwakeFired = true
	if c.Active() {
		t.Error("component active after awake only")
	}
	c.StartFired = true
	if !c.Active() {
		t.Error("component not active after both phases")
	}
}

func TestRegisteredSorted(t *testing.T) {
	Register("registry-test-zz", func(map[string]any) Behavior { return Base{} })
	Register("registry-test-aa", func(map[string]any) Behavior { return Base{} })

	names := Registered()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
