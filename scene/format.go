package scene

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

// File is the on-disk scene document: a named list of entity definitions.
// Vectors are stored as three-element arrays to keep hand-edited files
// compact.
type File struct {
	Name     string      `json:"name"`
	Entities []EntityDef `json:"entities"`
}

// EntityDef describes one entity to instantiate: an optional scene name, an
// optional transform block, and a list of typed component entries. At most
// one entry per component type is allowed.
type EntityDef struct {
	Name       string            `json:"name,omitempty"`
	Transform  *TransformDef     `json:"transform,omitempty"`
	Components []json.RawMessage `json:"components,omitempty"`
}

// TransformDef is the serialized transform block. A missing scale means unit
// scale.
type TransformDef struct {
	Position [3]float64  `json:"position"`
	Rotation [3]float64  `json:"rotation,omitempty"`
	Scale    *[3]float64 `json:"scale,omitempty"`
}

type typeHeader struct {
	Type string `json:"type"`
}

type meshDef struct {
	Mesh           string `json:"mesh"`
	Material       string `json:"material,omitempty"`
	CastShadows    *bool  `json:"cast_shadows,omitempty"`
	ReceiveShadows *bool  `json:"receive_shadows,omitempty"`
}

type lightDef struct {
	Kind      string      `json:"kind,omitempty"`
	Color     *[3]float64 `json:"color,omitempty"`
	Intensity *float64    `json:"intensity,omitempty"`
	Range     *float64    `json:"range,omitempty"`
	SpotAngle *float64    `json:"spot_angle,omitempty"`
}

type cameraDef struct {
	FOV  *float64 `json:"fov,omitempty"`
	Near *float64 `json:"near,omitempty"`
	Far  *float64 `json:"far,omitempty"`
	Main bool     `json:"main,omitempty"`
}

type rigidbodyDef struct {
	Mass         *float64   `json:"mass,omitempty"`
	Drag         float64    `json:"drag,omitempty"`
	GravityScale *float64   `json:"gravity_scale,omitempty"`
	Kinematic    bool       `json:"kinematic,omitempty"`
	Velocity     [3]float64 `json:"velocity,omitempty"`
}

type colliderDef struct {
	Shape   string     `json:"shape"`
	Size    [3]float64 `json:"size,omitempty"`
	Radius  float64    `json:"radius,omitempty"`
	Offset  [3]float64 `json:"offset,omitempty"`
	Trigger bool       `json:"trigger,omitempty"`
}

type scriptDef struct {
	Script string         `json:"script"`
	Props  map[string]any `json:"props,omitempty"`
}

func toVec(a [3]float64) vmath.Vec3 {
	return vmath.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func fromVec(v vmath.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Parse decodes a scene document and checks its structural invariants: every
// component entry names a known type and no entity repeats a type. Component
// parameter validation happens later, when defs become components.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(core.ErrInvalidSceneData, err.Error())
	}
	for i, def := range f.Entities {
		if err := validateEntityDef(def); err != nil {
			return nil, eris.Wrapf(err, "entity %d", i)
		}
	}
	return &f, nil
}

func validateEntityDef(def EntityDef) error {
	seen := make(map[string]bool, len(def.Components))
	for _, raw := range def.Components {
		var hdr typeHeader
		if err := json.Unmarshal(raw, &hdr); err != nil {
			return eris.Wrap(core.ErrInvalidSceneData, err.Error())
		}
		if _, ok := component.KindFromName(hdr.Type); !ok || hdr.Type == "transform" {
			return eris.Wrapf(core.ErrInvalidSceneData, "unknown component type %q", hdr.Type)
		}
		if seen[hdr.Type] {
			return eris.Wrapf(core.ErrInvalidSceneData, "duplicate component type %q", hdr.Type)
		}
		seen[hdr.Type] = true
	}
	return nil
}

func (t *TransformDef) component() component.TransformComponent {
	tr := component.NewTransform()
	tr.Position = toVec(t.Position)
	tr.Rotation = toVec(t.Rotation)
	if t.Scale != nil {
		tr.Scale = toVec(*t.Scale)
	}
	return tr
}
