package engine

import (
	"sort"

	"github.com/void191/v0-game-engine/physics"
	"github.com/void191/v0-game-engine/vmath"
)

// StepReport summarizes one frame for the caller: how much scaled time
// elapsed, how many fixed steps ran, and what the collision pass produced.
// Frame loops use it to drive audio cues and debug overlays.
type StepReport struct {
	FrameDt    float64
	FixedSteps int
	Contacts   []physics.Contact
	Events     []physics.PairEvent
}

// Step advances the world by one frame of wall time. The phases run in a
// fixed order:
//
//  1. Maintain: reclaim destroyed entities, flush buffered commands
//  2. capture the frame's input snapshot
//  3. Awake then Start for newly attached scripts
//  4. collision detection, once for the frame
//  5. overlap diffing into enter/stay/exit events
//  6. integration, one pass per due fixed step
//  7. Update once with the scaled frame delta
//  8. FixedUpdate once per fixed step
//  9. collision and trigger callbacks from the diffed events
//
// Mutations scripts request during phases 3..9 are buffered and take effect
// at the next frame's Maintain.
func (w *World) Step(frameDt float64) StepReport {
	w.Maintain()

	w.frameInput = w.inputState.Capture()

	scaledDt, steps := w.clock.Advance(frameDt)

	w.mu.Lock()
	w.inStep = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.inStep = false
		w.mu.Unlock()
	}()

	w.runAwakeStart()

	contacts := physics.DetectContacts(w.colliderInstances())
	for _, c := range contacts {
		if c.Degenerate() {
			w.log.Warn().
				Stringer("a", c.A).
				Stringer("b", c.B).
				Float64("penetration", c.Penetration).
				Msg("degenerate contact, coincident centers, skipping resolution")
		}
	}
	events := w.tracker.Update(contacts)

	w.integrate(contacts, steps)

	w.runUpdate(scaledDt)
	for i := 0; i < steps; i++ {
		w.runFixedUpdate(w.clock.FixedDt)
	}

	w.dispatchPairEvents(events)

	return StepReport{
		FrameDt:    scaledDt,
		FixedSteps: steps,
		Contacts:   contacts,
		Events:     events,
	}
}

// colliderInstances gathers every entity holding both a transform and a
// collider, placing each collider at transform position plus offset.
func (w *World) colliderInstances() []physics.ColliderInstance {
	entities := w.Query().
		With(w.Components.Transform).
		With(w.Components.Collider).
		Execute()

	out := make([]physics.ColliderInstance, 0, len(entities))
	for _, e := range entities {
		tr, ok := w.Components.Transform.Get(e)
		if !ok {
			continue
		}
		col, ok := w.Components.Collider.Get(e)
		if !ok {
			continue
		}
		out = append(out, physics.ColliderInstance{
			Entity: e,
			Center: tr.Position.Add(col.Offset),
			Shape:  col,
		})
	}
	return out
}

// integrate copies rigidbody state out of the stores, runs the due fixed
// steps against the frame's contact set, and writes positions and velocities
// back. Kinematic bodies participate in contact lookup but are never written.
func (w *World) integrate(contacts []physics.Contact, steps int) {
	entities := w.Query().
		With(w.Components.Transform).
		With(w.Components.Rigidbody).
		Execute()
	if len(entities) == 0 {
		return
	}

	bodies := make([]physics.Body, 0, len(entities))
	for _, e := range entities {
		tr, _ := w.Components.Transform.Get(e)
		rb, _ := w.Components.Rigidbody.Get(e)
		bodies = append(bodies, physics.Body{
			Entity:    e,
			Position:  tr.Position,
			Velocity:  rb.Velocity,
			Force:     rb.Force,
			Impulse:   rb.Impulse,
			InvMass:   rb.InvMass(),
			Drag:      rb.Drag,
			GravScale: rb.GravityScale,
			Kinematic: rb.Kinematic,
		})
	}
	sort.Slice(bodies, func(i, j int) bool { return bodies[i].Entity < bodies[j].Entity })

	pass := physics.Integrator{Gravity: w.gravity, Dt: w.clock.FixedDt}.Begin(bodies)
	for i := 0; i < steps; i++ {
		pass.Step(contacts)
	}

	for i := range pass.Bodies {
		b := pass.Bodies[i]
		rb, ok := w.Components.Rigidbody.Get(b.Entity)
		if !ok {
			continue
		}
		// Impulses are folded into velocity by Begin, so they clear every
		// frame. Forces are only consumed by fixed steps; on a frame that
		// owed none the accumulator carries over instead of being lost.
		if steps > 0 {
			rb.Force = vmath.Vec3{}
		}
		rb.Impulse = vmath.Vec3{}
		if !b.Kinematic {
			rb.Velocity = b.Velocity
			if tr, ok := w.Components.Transform.Get(b.Entity); ok {
				tr.Position = b.Position
				w.Components.Transform.Set(b.Entity, tr)
			}
		}
		w.Components.Rigidbody.Set(b.Entity, rb)
	}
}
