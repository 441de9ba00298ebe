package scene

import (
	"os"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/engine"
	"github.com/void191/v0-game-engine/script"
)

// Load reads and parses a scene file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read scene %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "parse scene %s", path)
	}
	return f, nil
}

// Spawn instantiates every entity in the document into the world. Entities
// without an explicit transform block get a default transform, so physics and
// rendering always have a position to work with. On error the partially
// spawned entities remain; callers that need all-or-nothing Clear the world.
func (f *File) Spawn(w *engine.World) ([]core.Entity, error) {
	spawned := make([]core.Entity, 0, len(f.Entities))
	for i, def := range f.Entities {
		e, err := spawnEntity(w, def)
		if err != nil {
			return spawned, eris.Wrapf(err, "scene %q entity %d", f.Name, i)
		}
		spawned = append(spawned, e)
	}
	return spawned, nil
}

func spawnEntity(w *engine.World, def EntityDef) (core.Entity, error) {
	e := w.CreateEntity()
	if def.Name != "" {
		w.SetName(e, def.Name)
	}

	tr := component.NewTransform()
	if def.Transform != nil {
		tr = def.Transform.component()
	}
	if err := engine.Add(w, w.Components.Transform, e, tr); err != nil {
		return e, err
	}

	for _, raw := range def.Components {
		if err := applyComponent(w, e, raw); err != nil {
			return e, err
		}
	}
	return e, nil
}

func applyComponent(w *engine.World, e core.Entity, raw json.RawMessage) error {
	var hdr typeHeader
	if err := json.Unmarshal(raw, &hdr); err != nil {
		return eris.Wrap(core.ErrInvalidSceneData, err.Error())
	}

	switch hdr.Type {
	case "mesh":
		var d meshDef
		if err := json.Unmarshal(raw, &d); err != nil {
			return eris.Wrap(core.ErrInvalidSceneData, err.Error())
		}
		m := component.NewMesh(d.Mesh)
		m.Material = d.Material
		if d.CastShadows != nil {
			m.CastShadows = *d.CastShadows
		}
		if d.ReceiveShadows != nil {
			m.ReceiveShadows = *d.ReceiveShadows
		}
		return engine.Add(w, w.Components.Mesh, e, m)

	case "light":
		var d lightDef
		if err := json.Unmarshal(raw, &d); err != nil {
			return eris.Wrap(core.ErrInvalidSceneData, err.Error())
		}
		l := component.NewLight()
		switch d.Kind {
		case "", "point":
			l.Kind = component.LightPoint
		case "directional":
			l.Kind = component.LightDirectional
		case "spot":
			l.Kind = component.LightSpot
		default:
			return eris.Wrapf(core.ErrInvalidSceneData, "unknown light kind %q", d.Kind)
		}
		if d.Color != nil {
			l.Color = toVec(*d.Color)
		}
		if d.Intensity != nil {
			l.Intensity = *d.Intensity
		}
		if d.Range != nil {
			l.Range = *d.Range
		}
		if d.SpotAngle != nil {
			l.SpotAngle = *d.SpotAngle
		}
		return engine.Add(w, w.Components.Light, e, l)

	case "camera":
		var d cameraDef
		if err := json.Unmarshal(raw, &d); err != nil {
			return eris.Wrap(core.ErrInvalidSceneData, err.Error())
		}
		cam := component.NewCamera()
		if d.FOV != nil {
			cam.FOV = *d.FOV
		}
		if d.Near != nil {
			cam.Near = *d.Near
		}
		if d.Far != nil {
			cam.Far = *d.Far
		}
		cam.Main = d.Main
		return engine.Add(w, w.Components.Camera, e, cam)

	case "rigidbody":
		var d rigidbodyDef
		if err := json.Unmarshal(raw, &d); err != nil {
			return eris.Wrap(core.ErrInvalidSceneData, err.Error())
		}
		rb := component.NewRigidbody()
		if d.Mass != nil {
			rb.Mass = *d.Mass
		}
		rb.Drag = d.Drag
		if d.GravityScale != nil {
			rb.GravityScale = *d.GravityScale
		}
		rb.Kinematic = d.Kinematic
		rb.Velocity = toVec(d.Velocity)
		return engine.Add(w, w.Components.Rigidbody, e, rb)

	case "collider":
		var d colliderDef
		if err := json.Unmarshal(raw, &d); err != nil {
			return eris.Wrap(core.ErrInvalidSceneData, err.Error())
		}
		var col component.ColliderComponent
		switch d.Shape {
		case "aabb", "box":
			col = component.NewBoxCollider(toVec(d.Size))
		case "sphere":
			col = component.NewSphereCollider(d.Radius)
		default:
			return eris.Wrapf(core.ErrInvalidShape, "unknown collider shape %q", d.Shape)
		}
		col.Offset = toVec(d.Offset)
		col.Trigger = d.Trigger
		return engine.Add(w, w.Components.Collider, e, col)

	case "script":
		var d scriptDef
		if err := json.Unmarshal(raw, &d); err != nil {
			return eris.Wrap(core.ErrInvalidSceneData, err.Error())
		}
		b, err := script.New(d.Script, d.Props)
		if err != nil {
			return err
		}
		return engine.Add(w, w.Components.Script, e, script.NewComponent(d.Script, b))
	}

	return eris.Wrapf(core.ErrInvalidSceneData, "unknown component type %q", hdr.Type)
}

// Capture serializes the world's current entities back into a scene document,
// in ascending entity order. Behaviors are written by registry name; runtime
// lifecycle flags are not persisted, so a reloaded scene starts its scripts
// fresh.
func Capture(w *engine.World, name string) *File {
	f := &File{Name: name}

	entities := w.Query().With(w.Components.Transform).Execute()
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })

	for _, e := range entities {
		def := EntityDef{Name: w.Name(e)}

		tr, _ := w.Components.Transform.Get(e)
		scale := fromVec(tr.Scale)
		def.Transform = &TransformDef{
			Position: fromVec(tr.Position),
			Rotation: fromVec(tr.Rotation),
			Scale:    &scale,
		}

		if m, ok := w.Components.Mesh.Get(e); ok {
			def.appendComponent(map[string]any{
				"type":            "mesh",
				"mesh":            m.MeshPath,
				"material":        m.Material,
				"cast_shadows":    m.CastShadows,
				"receive_shadows": m.ReceiveShadows,
			})
		}
		if l, ok := w.Components.Light.Get(e); ok {
			def.appendComponent(map[string]any{
				"type":       "light",
				"kind":       l.Kind.String(),
				"color":      fromVec(l.Color),
				"intensity":  l.Intensity,
				"range":      l.Range,
				"spot_angle": l.SpotAngle,
			})
		}
		if cam, ok := w.Components.Camera.Get(e); ok {
			def.appendComponent(map[string]any{
				"type": "camera",
				"fov":  cam.FOV,
				"near": cam.Near,
				"far":  cam.Far,
				"main": cam.Main,
			})
		}
		if rb, ok := w.Components.Rigidbody.Get(e); ok {
			def.appendComponent(map[string]any{
				"type":          "rigidbody",
				"mass":          rb.Mass,
				"drag":          rb.Drag,
				"gravity_scale": rb.GravityScale,
				"kinematic":     rb.Kinematic,
				"velocity":      fromVec(rb.Velocity),
			})
		}
		if col, ok := w.Components.Collider.Get(e); ok {
			entry := map[string]any{
				"type":    "collider",
				"offset":  fromVec(col.Offset),
				"trigger": col.Trigger,
			}
			switch col.Shape {
			case component.ShapeAABB:
				entry["shape"] = "aabb"
				entry["size"] = fromVec(col.HalfExtents.Scale(2))
			case component.ShapeSphere:
				entry["shape"] = "sphere"
				entry["radius"] = col.Radius
			}
			def.appendComponent(entry)
		}
		if sc, ok := w.Components.Script.Get(e); ok && sc.Name != "" {
			def.appendComponent(map[string]any{
				"type":   "script",
				"script": sc.Name,
			})
		}

		f.Entities = append(f.Entities, def)
	}
	return f
}

func (d *EntityDef) appendComponent(entry map[string]any) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	d.Components = append(d.Components, raw)
}

// Save writes the document to disk with stable indentation.
func (f *File) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode scene")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return eris.Wrapf(err, "write scene %s", path)
	}
	return nil
}
