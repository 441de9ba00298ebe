package component

import (
	"github.com/rotisserie/eris"

	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

// ShapeKind tags the collider shape variant.
type ShapeKind uint8

const (
	ShapeAABB ShapeKind = iota
	ShapeSphere
)

func (s ShapeKind) String() string {
	switch s {
	case ShapeAABB:
		return "aabb"
	case ShapeSphere:
		return "sphere"
	}
	return "unknown"
}

// ColliderComponent describes an axis-aligned box or sphere volume centered
// at the owning entity's transform position plus Offset. Trigger colliders
// report overlap events but never produce positional correction.
type ColliderComponent struct {
	Shape       ShapeKind
	HalfExtents vmath.Vec3 // ShapeAABB
	Radius      float64    // ShapeSphere
	Offset      vmath.Vec3
	Trigger     bool
}

// NewBoxCollider builds an AABB collider from a full box size.
func NewBoxCollider(size vmath.Vec3) ColliderComponent {
	return ColliderComponent{
		Shape:       ShapeAABB,
		HalfExtents: size.Scale(0.5),
	}
}

// NewSphereCollider builds a sphere collider with the given radius.
func NewSphereCollider(radius float64) ColliderComponent {
	return ColliderComponent{
		Shape:  ShapeSphere,
		Radius: radius,
	}
}

// Validate rejects malformed shape parameters at add/load time so the
// collision pass never has to check them.
func (c ColliderComponent) Validate() error {
	switch c.Shape {
	case ShapeAABB:
		if c.HalfExtents.X <= 0 || c.HalfExtents.Y <= 0 || c.HalfExtents.Z <= 0 {
			return eris.Wrapf(core.ErrInvalidShape, "aabb half extents must be positive, got %v", c.HalfExtents)
		}
	case ShapeSphere:
		if c.Radius <= 0 {
			return eris.Wrapf(core.ErrInvalidShape, "sphere radius must be positive, got %v", c.Radius)
		}
	default:
		return eris.Wrapf(core.ErrInvalidShape, "unknown shape kind %d", c.Shape)
	}
	return nil
}
