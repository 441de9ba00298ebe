package physics

import (
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

// Contact is a detected overlap between two collider volumes. Normal points
// from B toward A: it is the direction A must move to separate. Trigger
// contacts are reported to scripts but excluded from positional resolution.
type Contact struct {
	A           core.Entity
	B           core.Entity
	Penetration float64
	Normal      vmath.Vec3
	Trigger     bool
}

// Degenerate reports a contact whose normal collapsed to zero (exactly
// coincident sphere centers). Resolution treats it as a no-op.
func (c Contact) Degenerate() bool {
	return c.Normal.IsZero()
}

// PairKey identifies an unordered entity pair, stored with A < B so each
// pair is tracked once regardless of detection order.
type PairKey struct {
	A, B core.Entity
}

// MakePairKey normalizes an entity pair into key order.
func MakePairKey(a, b core.Entity) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}
