package component

import (
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

// TransformComponent is the sole source of truth for an entity's spatial
// state. Rotation is Euler angles in degrees. Parent is a flat reference used
// for physics offsets only, never a traversal hierarchy.
type TransformComponent struct {
	Position vmath.Vec3
	Rotation vmath.Vec3
	Scale    vmath.Vec3
	Parent   core.Entity
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() TransformComponent {
	return TransformComponent{
		Scale: vmath.Vec3{X: 1, Y: 1, Z: 1},
	}
}
