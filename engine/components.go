package engine

import (
	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/script"
)

// ComponentStore groups the typed stores for every component kind. Systems
// hold direct pointers to the stores they iterate, so the hot path never
// goes through a kind lookup.
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Mesh      *Store[component.MeshComponent]
	Light     *Store[component.LightComponent]
	Camera    *Store[component.CameraComponent]
	Rigidbody *Store[component.RigidbodyComponent]
	Collider  *Store[component.ColliderComponent]
	Script    *Store[script.Component]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Mesh:      NewStore[component.MeshComponent](),
		Light:     NewStore[component.LightComponent](),
		Camera:    NewStore[component.CameraComponent](),
		Rigidbody: NewStore[component.RigidbodyComponent](),
		Collider:  NewStore[component.ColliderComponent](),
		Script:    NewStore[script.Component](),
	}
}

// removeAll drops every component the entity holds.
func (cs *ComponentStore) removeAll(e core.Entity) {
	cs.Transform.Remove(e)
	cs.Mesh.Remove(e)
	cs.Light.Remove(e)
	cs.Camera.Remove(e)
	cs.Rigidbody.Remove(e)
	cs.Collider.Remove(e)
	cs.Script.Remove(e)
}

// QueryableStore is the store surface the query builder intersects over.
type QueryableStore interface {
	All() []core.Entity
	Has(core.Entity) bool
	Count() int
}

// StoreOf returns the store for a kind as a queryable view, for callers that
// work with kinds rather than types (scene loader, editors).
func (w *World) StoreOf(k component.Kind) QueryableStore {
	switch k {
	case component.KindTransform:
		return w.Components.Transform
	case component.KindMesh:
		return w.Components.Mesh
	case component.KindLight:
		return w.Components.Light
	case component.KindCamera:
		return w.Components.Camera
	case component.KindRigidbody:
		return w.Components.Rigidbody
	case component.KindCollider:
		return w.Components.Collider
	case component.KindScript:
		return w.Components.Script
	}
	return nil
}
