package script

import (
	"github.com/void191/v0-game-engine/core"
)

// Behavior is the capability interface implemented by user scripts. The
// runner dispatches callbacks in a fixed phase order and guarantees, per
// entity: Awake exactly once, then Start exactly once, then Update (variable
// dt, once per frame) and FixedUpdate (fixed dt, zero or more times per
// frame). Per-entity phase state lives in the Script component, not in the
// behavior, so storage and behavior concerns stay separable.
type Behavior interface {
	Awake(ctx API)
	Start(ctx API)
	Update(ctx API, dt float64)
	FixedUpdate(ctx API, dt float64)
}

// Base is a no-op Behavior intended for embedding so scripts only override
// the callbacks they care about.
type Base struct{}

func (Base) Awake(API)                {}
func (Base) Start(API)                {}
func (Base) Update(API, float64)      {}
func (Base) FixedUpdate(API, float64) {}

// CollisionHandler receives solid-contact transitions for the owning entity.
// Implemented optionally alongside Behavior.
type CollisionHandler interface {
	OnCollisionEnter(ctx API, other core.Entity)
	OnCollisionStay(ctx API, other core.Entity)
	OnCollisionExit(ctx API, other core.Entity)
}

// TriggerHandler receives trigger-volume transitions for the owning entity.
type TriggerHandler interface {
	OnTriggerEnter(ctx API, other core.Entity)
	OnTriggerStay(ctx API, other core.Entity)
	OnTriggerExit(ctx API, other core.Entity)
}

// DestroyHandler is notified when the owning entity is reclaimed at a step
// boundary.
type DestroyHandler interface {
	OnDestroy(ctx API)
}
