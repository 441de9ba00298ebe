package component

import (
	"github.com/rotisserie/eris"

	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

// RigidbodyComponent carries linear dynamic state advanced by the integrator.
// Kinematic bodies are never moved by forces; they only move through direct
// transform writes and act as infinite mass during contact resolution.
//
// Drag is a linear coefficient expected in [0,1). Values >= 1 can invert the
// velocity sign within a single fixed step; that is accepted as a
// configuration hazard, not clamped.
type RigidbodyComponent struct {
	Mass         float64
	Velocity     vmath.Vec3
	Drag         float64
	GravityScale float64
	Kinematic    bool

	// Force is consumed as a constant acceleration across the frame's fixed
	// steps and cleared only after a frame that ran at least one, so a force
	// added during a short frame carries over instead of being dropped.
	// Impulse is applied to velocity once per frame and always cleared.
	Force   vmath.Vec3
	Impulse vmath.Vec3
}

// NewRigidbody returns a unit-mass dynamic body with full gravity.
func NewRigidbody() RigidbodyComponent {
	return RigidbodyComponent{
		Mass:         1.0,
		GravityScale: 1.0,
	}
}

// InvMass returns the inverse mass used for contact splitting. Kinematic
// bodies report zero and absorb no correction.
func (r RigidbodyComponent) InvMass() float64 {
	if r.Kinematic || r.Mass <= 0 {
		return 0
	}
	return 1 / r.Mass
}

// AddForce accumulates a force applied over the next simulated frame.
func (r *RigidbodyComponent) AddForce(f vmath.Vec3) {
	r.Force = r.Force.Add(f)
}

// AddImpulse accumulates an instantaneous velocity change (scaled by inverse
// mass) applied at the next fixed step.
func (r *RigidbodyComponent) AddImpulse(i vmath.Vec3) {
	r.Impulse = r.Impulse.Add(i)
}

// Validate enforces the construction-time invariants: positive mass,
// non-negative drag.
func (r RigidbodyComponent) Validate() error {
	if r.Mass <= 0 {
		return eris.Wrapf(core.ErrInvalidComponent, "rigidbody mass must be positive, got %v", r.Mass)
	}
	if r.Drag < 0 {
		return eris.Wrapf(core.ErrInvalidComponent, "rigidbody drag must be non-negative, got %v", r.Drag)
	}
	return nil
}
