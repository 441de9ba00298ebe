package physics

import (
	"math"
	"testing"

	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

const fixedDt = 1.0 / 60.0

var gravity = vmath.Vec3{Y: -9.8}

func TestFreeFallMatchesUpdateRule(t *testing.T) {
	// A zero-drag body starting at rest at (0,10,0) must match a direct
	// re-computation of the stated update rule after 60 fixed steps.
	it := Integrator{Gravity: gravity, Dt: fixedDt}
	bodies := []Body{{
		Entity:    core.PackEntity(1, 1),
		Position:  vmath.Vec3{Y: 10},
		InvMass:   1,
		GravScale: 1,
	}}
	pass := it.Begin(bodies)
	for i := 0; i < 60; i++ {
		pass.Step(nil)
	}

	// Reference: same rule, scalar form.
	vy, py := 0.0, 10.0
	for i := 0; i < 60; i++ {
		vy += -9.8 * fixedDt
		py += vy * fixedDt
	}

	got := pass.Bodies[0]
	if math.Abs(got.Velocity.Y-vy) > 1e-9 {
		t.Errorf("Expected velocity.y %v, got %v", vy, got.Velocity.Y)
	}
	if math.Abs(got.Velocity.Y+9.8) > 1e-9 {
		t.Errorf("Expected velocity.y ~= -9.8 after one second, got %v", got.Velocity.Y)
	}
	if math.Abs(got.Position.Y-py) > 1e-9 {
		t.Errorf("Expected position.y %v, got %v", py, got.Position.Y)
	}
}

func TestDragReducesVelocity(t *testing.T) {
	it := Integrator{Gravity: vmath.Vec3{}, Dt: fixedDt}
	bodies := []Body{{
		Entity:   core.PackEntity(1, 1),
		Velocity: vmath.Vec3{X: 10},
		InvMass:  1,
		Drag:     0.5,
	}}
	pass := it.Begin(bodies)
	pass.Step(nil)

	want := 10.0 - 10.0*0.5*fixedDt
	if math.Abs(pass.Bodies[0].Velocity.X-want) > 1e-12 {
		t.Errorf("Expected velocity.x %v, got %v", want, pass.Bodies[0].Velocity.X)
	}
}

func TestKinematicBodyNeverMoves(t *testing.T) {
	it := Integrator{Gravity: gravity, Dt: fixedDt}
	start := vmath.Vec3{X: 1, Y: 2, Z: 3}
	bodies := []Body{{
		Entity:    core.PackEntity(1, 1),
		Position:  start,
		InvMass:   0,
		GravScale: 1,
		Drag:      0.5,
		Kinematic: true,
		Impulse:   vmath.Vec3{X: 100},
	}}
	pass := it.Begin(bodies)
	for i := 0; i < 120; i++ {
		pass.Step(nil)
	}
	b := pass.Bodies[0]
	if b.Position != start {
		t.Errorf("Kinematic body moved from %v to %v", start, b.Position)
	}
	if !b.Velocity.IsZero() {
		t.Errorf("Kinematic body gained velocity %v", b.Velocity)
	}
}

func TestImpulseAppliedOnce(t *testing.T) {
	it := Integrator{Gravity: vmath.Vec3{}, Dt: fixedDt}
	bodies := []Body{{
		Entity:  core.PackEntity(1, 1),
		InvMass: 0.5, // mass 2
		Impulse: vmath.Vec3{X: 4},
	}}
	pass := it.Begin(bodies)
	if got := pass.Bodies[0].Velocity.X; got != 2 {
		t.Errorf("Expected velocity.x 2 after impulse, got %v", got)
	}
	if !pass.Bodies[0].Impulse.IsZero() {
		t.Error("Impulse accumulator must be cleared after Begin")
	}
}

func TestCorrectionSplitByInverseMass(t *testing.T) {
	it := Integrator{Gravity: vmath.Vec3{}, Dt: fixedDt}
	e1 := core.PackEntity(1, 1)
	e2 := core.PackEntity(2, 1)
	bodies := []Body{
		{Entity: e1, Position: vmath.Vec3{}, InvMass: 1},        // mass 1
		{Entity: e2, Position: vmath.Vec3{X: 1.5}, InvMass: 0.5}, // mass 2
	}
	contacts := []Contact{{
		A: e1, B: e2,
		Penetration: 0.3,
		Normal:      vmath.Vec3{X: -1},
	}}
	pass := it.Begin(bodies)
	pass.Step(contacts)

	// invA/(invA+invB) = 2/3 of the correction on the lighter body.
	if math.Abs(pass.Bodies[0].Position.X - (-0.2)) > 1e-12 {
		t.Errorf("Expected body A at x=-0.2, got %v", pass.Bodies[0].Position.X)
	}
	if math.Abs(pass.Bodies[1].Position.X-1.6) > 1e-12 {
		t.Errorf("Expected body B at x=1.6, got %v", pass.Bodies[1].Position.X)
	}
}

func TestCorrectionAgainstStaticCollider(t *testing.T) {
	// Contact against an entity with no body in the pass: the dynamic body
	// takes the full correction.
	it := Integrator{Gravity: vmath.Vec3{}, Dt: fixedDt}
	e1 := core.PackEntity(1, 1)
	wall := core.PackEntity(9, 1)
	bodies := []Body{{Entity: e1, Velocity: vmath.Vec3{X: 5}, InvMass: 1}}
	contacts := []Contact{{
		A: e1, B: wall,
		Penetration: 0.25,
		Normal:      vmath.Vec3{X: -1},
	}}
	pass := it.Begin(bodies)
	pass.Step(contacts)

	b := pass.Bodies[0]
	wantX := 5*fixedDt - 0.25
	if math.Abs(b.Position.X-wantX) > 1e-12 {
		t.Errorf("Expected full correction to x=%v, got %v", wantX, b.Position.X)
	}
	// Velocity into the wall (+X against normal -X) is zeroed.
	if b.Velocity.X != 0 {
		t.Errorf("Expected normal velocity zeroed, got %v", b.Velocity.X)
	}
}

func TestVelocityAwayFromSurfaceKept(t *testing.T) {
	it := Integrator{Gravity: vmath.Vec3{}, Dt: fixedDt}
	e1 := core.PackEntity(1, 1)
	wall := core.PackEntity(9, 1)
	bodies := []Body{{Entity: e1, Velocity: vmath.Vec3{X: -3}, InvMass: 1}}
	contacts := []Contact{{
		A: e1, B: wall,
		Penetration: 0.1,
		Normal:      vmath.Vec3{X: -1}, // separation direction is -X
	}}
	pass := it.Begin(bodies)
	pass.Step(contacts)

	// Already moving along the normal: velocity must be preserved.
	want := -3 * (1 - 0*fixedDt) // no drag, unchanged
	if math.Abs(pass.Bodies[0].Velocity.X-want) > 1e-12 {
		t.Errorf("Expected velocity kept at %v, got %v", want, pass.Bodies[0].Velocity.X)
	}
}

func TestTriggerContactNeverResolved(t *testing.T) {
	it := Integrator{Gravity: vmath.Vec3{}, Dt: fixedDt}
	e1 := core.PackEntity(1, 1)
	e2 := core.PackEntity(2, 1)
	bodies := []Body{
		{Entity: e1, InvMass: 1},
		{Entity: e2, Position: vmath.Vec3{X: 0.5}, InvMass: 1},
	}
	contacts := []Contact{{
		A: e1, B: e2,
		Penetration: 0.5,
		Normal:      vmath.Vec3{X: -1},
		Trigger:     true,
	}}
	pass := it.Begin(bodies)
	pass.Step(contacts)

	if pass.Bodies[0].Position.X != 0 || pass.Bodies[1].Position.X != 0.5 {
		t.Errorf("Trigger contact produced positional correction: %v, %v",
			pass.Bodies[0].Position, pass.Bodies[1].Position)
	}
}

func TestDegenerateContactIsNoOp(t *testing.T) {
	it := Integrator{Gravity: vmath.Vec3{}, Dt: fixedDt}
	e1 := core.PackEntity(1, 1)
	e2 := core.PackEntity(2, 1)
	bodies := []Body{
		{Entity: e1, InvMass: 1},
		{Entity: e2, InvMass: 1},
	}
	contacts := []Contact{{A: e1, B: e2, Penetration: 2, Normal: vmath.Vec3{}}}
	pass := it.Begin(bodies)
	pass.Step(contacts)

	if !pass.Bodies[0].Position.IsZero() || !pass.Bodies[1].Position.IsZero() {
		t.Error("Degenerate contact must not move either body")
	}
}
