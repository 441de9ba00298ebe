package script

import (
	"github.com/rs/zerolog"

	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/input"
	"github.com/void191/v0-game-engine/vmath"
)

// API is the scoped surface the runner exposes to behaviors. It is valid
// only for the duration of the callback it was passed to. Creation and
// destruction requested through it are buffered and applied at the step
// boundary; transform writes take effect immediately.
type API interface {
	// Entity returns the owning entity of the behavior.
	Entity() core.Entity

	// Transform returns a copy of the owning entity's transform.
	Transform() component.TransformComponent
	// SetTransform writes the owning entity's transform.
	SetTransform(component.TransformComponent)

	// Input returns the read-only input snapshot for the current frame.
	Input() *input.Snapshot

	// Time returns accumulated simulation time in seconds.
	Time() float64

	// Log returns the logging sink scoped to the owning entity.
	Log() *zerolog.Logger

	// CreateEntity reserves a new entity; component attachment is applied at
	// the step boundary.
	CreateEntity() core.Entity
	// DestroyEntity queues an entity for removal at the step boundary.
	// Idempotent; unknown handles are ignored.
	DestroyEntity(core.Entity)
	// Find resolves an entity by scene name.
	Find(name string) (core.Entity, bool)

	// AddForce accumulates a force on the owning entity's rigidbody for the
	// next simulated frame. No-op without a rigidbody.
	AddForce(vmath.Vec3)
	// AddImpulse accumulates an instantaneous velocity change on the owning
	// entity's rigidbody. No-op without a rigidbody.
	AddImpulse(vmath.Vec3)

	// Instantiate spawns a named prefab at the given position and returns the
	// root entity.
	Instantiate(prefab string, at vmath.Vec3) (core.Entity, error)
}
