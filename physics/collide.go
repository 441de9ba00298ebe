package physics

import (
	"math"
	"sort"

	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

// ColliderInstance is a collider placed in the world: the owning entity, the
// world-space center (transform position plus collider offset), and the
// collider parameters. Entities without a transform never appear here.
type ColliderInstance struct {
	Entity core.Entity
	Center vmath.Vec3
	Shape  component.ColliderComponent
}

// collideFn tests two placed shapes. Normal follows the Contact convention:
// the direction the first argument must move to separate.
type collideFn func(ca vmath.Vec3, a component.ColliderComponent, cb vmath.Vec3, b component.ColliderComponent) (depth float64, normal vmath.Vec3, ok bool)

// dispatch maps the ordered shape-kind pair to its test. Each cell is a pure
// function; mixed pairs get both orderings so no runtime flipping is needed.
var dispatch = map[[2]component.ShapeKind]collideFn{
	{component.ShapeAABB, component.ShapeAABB}:     collideBoxBox,
	{component.ShapeSphere, component.ShapeSphere}: collideSphereSphere,
	{component.ShapeAABB, component.ShapeSphere}:   collideBoxSphere,
	{component.ShapeSphere, component.ShapeAABB}:   collideSphereBox,
}

// Collide tests a single placed pair. The normal is the direction the first
// collider must move to separate from the second.
func Collide(ca vmath.Vec3, a component.ColliderComponent, cb vmath.Vec3, b component.ColliderComponent) (float64, vmath.Vec3, bool) {
	fn, ok := dispatch[[2]component.ShapeKind{a.Shape, b.Shape}]
	if !ok {
		return 0, vmath.Vec3{}, false
	}
	return fn(ca, a, cb, b)
}

// DetectContacts tests every unordered pair of instances once and returns the
// overlapping set. Instances are sorted by entity id first so contact order
// is stable for identical input state: each contact has A < B by id.
func DetectContacts(items []ColliderInstance) []Contact {
	sorted := make([]ColliderInstance, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Entity < sorted[j].Entity })

	var contacts []Contact
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if a.Entity == b.Entity {
				continue
			}
			depth, normal, ok := Collide(a.Center, a.Shape, b.Center, b.Shape)
			if !ok {
				continue
			}
			contacts = append(contacts, Contact{
				A:           a.Entity,
				B:           b.Entity,
				Penetration: depth,
				Normal:      normal,
				Trigger:     a.Shape.Trigger || b.Shape.Trigger,
			})
		}
	}
	return contacts
}

// collideBoxBox overlaps two AABBs on all three axes. Penetration is the
// minimum overlap axis; the normal is that axis signed toward A.
func collideBoxBox(ca vmath.Vec3, a component.ColliderComponent, cb vmath.Vec3, b component.ColliderComponent) (float64, vmath.Vec3, bool) {
	d := ca.Sub(cb)
	ox := a.HalfExtents.X + b.HalfExtents.X - math.Abs(d.X)
	oy := a.HalfExtents.Y + b.HalfExtents.Y - math.Abs(d.Y)
	oz := a.HalfExtents.Z + b.HalfExtents.Z - math.Abs(d.Z)
	if ox <= 0 || oy <= 0 || oz <= 0 {
		return 0, vmath.Vec3{}, false
	}

	depth := ox
	normal := vmath.Vec3{X: axisSign(d.X)}
	if oy < depth {
		depth = oy
		normal = vmath.Vec3{Y: axisSign(d.Y)}
	}
	if oz < depth {
		depth = oz
		normal = vmath.Vec3{Z: axisSign(d.Z)}
	}
	return depth, normal, true
}

// collideSphereSphere compares center distance to the radius sum. Coincident
// centers yield a degenerate contact with a zero normal; the caller logs it
// and resolution skips the pair.
func collideSphereSphere(ca vmath.Vec3, a component.ColliderComponent, cb vmath.Vec3, b component.ColliderComponent) (float64, vmath.Vec3, bool) {
	delta := ca.Sub(cb)
	dist := delta.Length()
	sum := a.Radius + b.Radius
	if dist >= sum {
		return 0, vmath.Vec3{}, false
	}
	if dist == 0 {
		return sum, vmath.Vec3{}, true
	}
	return sum - dist, delta.Scale(1 / dist), true
}

// collideBoxSphere clamps the sphere center into the box extents to find the
// closest point. A sphere centered exactly on the closest point (center
// inside the box) degenerates to a zero normal like the sphere-sphere case.
func collideBoxSphere(ca vmath.Vec3, a component.ColliderComponent, cb vmath.Vec3, b component.ColliderComponent) (float64, vmath.Vec3, bool) {
	lo := ca.Sub(a.HalfExtents)
	hi := ca.Add(a.HalfExtents)
	closest := cb.Clamp(lo, hi)
	delta := cb.Sub(closest)
	dist := delta.Length()
	if dist > b.Radius {
		return 0, vmath.Vec3{}, false
	}
	if dist == 0 {
		return b.Radius, vmath.Vec3{}, true
	}
	// Push the box away from the sphere: opposite the closest-point-to-center
	// direction.
	return b.Radius - dist, delta.Scale(-1 / dist), true
}

func collideSphereBox(ca vmath.Vec3, a component.ColliderComponent, cb vmath.Vec3, b component.ColliderComponent) (float64, vmath.Vec3, bool) {
	depth, normal, ok := collideBoxSphere(cb, b, ca, a)
	return depth, normal.Scale(-1), ok
}

func axisSign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
