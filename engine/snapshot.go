package engine

import (
	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
)

// MeshInstance is a renderable placed in the world.
type MeshInstance struct {
	Entity    core.Entity
	Transform component.TransformComponent
	Mesh      component.MeshComponent
}

// LightInstance is a light placed in the world.
type LightInstance struct {
	Entity    core.Entity
	Transform component.TransformComponent
	Light     component.LightComponent
}

// CameraInstance is a camera placed in the world.
type CameraInstance struct {
	Entity    core.Entity
	Transform component.TransformComponent
	Camera    component.CameraComponent
}

// RenderSnapshot is a value copy of everything a renderer needs for one
// frame. Building it between steps means the renderer never races the
// simulation; instances come out in ascending entity order.
type RenderSnapshot struct {
	Frame   uint64
	Time    float64
	Meshes  []MeshInstance
	Lights  []LightInstance
	Cameras []CameraInstance

	// Main is the first camera flagged Main, falling back to the lowest
	// camera entity, or nil when the world has no camera.
	Main *CameraInstance
}

// Snapshot collects the world's renderable state.
func (w *World) Snapshot() RenderSnapshot {
	snap := RenderSnapshot{
		Frame: w.clock.Frame(),
		Time:  w.clock.Time(),
	}

	for _, e := range w.Query().With(w.Components.Transform).With(w.Components.Mesh).Execute() {
		tr, _ := w.Components.Transform.Get(e)
		m, _ := w.Components.Mesh.Get(e)
		snap.Meshes = append(snap.Meshes, MeshInstance{Entity: e, Transform: tr, Mesh: m})
	}
	for _, e := range w.Query().With(w.Components.Transform).With(w.Components.Light).Execute() {
		tr, _ := w.Components.Transform.Get(e)
		l, _ := w.Components.Light.Get(e)
		snap.Lights = append(snap.Lights, LightInstance{Entity: e, Transform: tr, Light: l})
	}
	for _, e := range w.Query().With(w.Components.Transform).With(w.Components.Camera).Execute() {
		tr, _ := w.Components.Transform.Get(e)
		cam, _ := w.Components.Camera.Get(e)
		snap.Cameras = append(snap.Cameras, CameraInstance{Entity: e, Transform: tr, Camera: cam})
	}

	for i := range snap.Cameras {
		if snap.Cameras[i].Camera.Main {
			snap.Main = &snap.Cameras[i]
			break
		}
	}
	if snap.Main == nil && len(snap.Cameras) > 0 {
		snap.Main = &snap.Cameras[0]
	}
	return snap
}
