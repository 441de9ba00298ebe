package physics

import (
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

// Integrator advances rigidbody linear state with a fixed timestep:
//
//	v += (gravity * gravityScale + force * invMass) * dt
//	v -= v * drag * dt
//	p += v * dt
//
// followed by pairwise positional correction against the frame's contact set.
// Bodies are processed in ascending entity id order and contacts in detection
// order, so results are reproducible for identical input state and dt.
type Integrator struct {
	Gravity vmath.Vec3
	Dt      float64
}

// Body is the mutable per-entity state for one frame of integration. The
// registry copies component state in before the fixed steps and writes it
// back after; the integrator never touches stores directly.
type Body struct {
	Entity    core.Entity
	Position  vmath.Vec3
	Velocity  vmath.Vec3
	Force     vmath.Vec3
	Impulse   vmath.Vec3
	InvMass   float64
	Drag      float64
	GravScale float64
	Kinematic bool
}

// Pass holds the frame's body set with an entity index for contact lookup.
// Begin applies queued impulses once; Step then runs zero or more times.
type Pass struct {
	integ  Integrator
	Bodies []Body
	index  map[core.Entity]int
}

// Begin starts a frame pass over bodies, applying each body's queued impulse
// to its velocity. Bodies must already be in ascending entity id order.
func (it Integrator) Begin(bodies []Body) *Pass {
	idx := make(map[core.Entity]int, len(bodies))
	for i := range bodies {
		idx[bodies[i].Entity] = i
		if bodies[i].Kinematic || bodies[i].InvMass == 0 {
			continue
		}
		bodies[i].Velocity = bodies[i].Velocity.Add(bodies[i].Impulse.Scale(bodies[i].InvMass))
		bodies[i].Impulse = vmath.Vec3{}
	}
	return &Pass{integ: it, Bodies: bodies, index: idx}
}

// Step advances every non-kinematic body by one fixed timestep and resolves
// the frame's non-trigger contacts. Kinematic bodies are never touched:
// neither gravity, drag, nor correction applies to them.
func (p *Pass) Step(contacts []Contact) {
	dt := p.integ.Dt
	for i := range p.Bodies {
		b := &p.Bodies[i]
		if b.Kinematic || b.InvMass == 0 {
			continue
		}
		accel := p.integ.Gravity.Scale(b.GravScale).Add(b.Force.Scale(b.InvMass))
		b.Velocity = b.Velocity.Add(accel.Scale(dt))
		b.Velocity = b.Velocity.Sub(b.Velocity.Scale(b.Drag * dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}

	for _, c := range contacts {
		if c.Trigger || c.Degenerate() {
			continue
		}
		p.resolve(c)
	}
}

// resolve pushes the pair apart along the contact normal, splitting the
// penetration by inverse mass, and zeroes each body's velocity component
// along its outward normal when it points into the surface. A kinematic or
// infinite-mass body absorbs none of the correction; a collider-only entity
// (no rigidbody in the pass) is treated the same way.
func (p *Pass) resolve(c Contact) {
	invA, invB := 0.0, 0.0
	ia, aok := p.index[c.A]
	ib, bok := p.index[c.B]
	if aok {
		invA = p.Bodies[ia].InvMass
	}
	if bok {
		invB = p.Bodies[ib].InvMass
	}
	total := invA + invB
	if total == 0 {
		return
	}

	if invA > 0 {
		a := &p.Bodies[ia]
		a.Position = a.Position.Add(c.Normal.Scale(c.Penetration * invA / total))
		if vn := a.Velocity.Dot(c.Normal); vn < 0 {
			a.Velocity = a.Velocity.Sub(c.Normal.Scale(vn))
		}
	}
	if invB > 0 {
		b := &p.Bodies[ib]
		out := c.Normal.Scale(-1)
		b.Position = b.Position.Add(out.Scale(c.Penetration * invB / total))
		if vn := b.Velocity.Dot(out); vn < 0 {
			b.Velocity = b.Velocity.Sub(out.Scale(vn))
		}
	}
}
