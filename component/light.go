package component

import "github.com/void191/v0-game-engine/vmath"

// LightKind selects the light model.
type LightKind uint8

const (
	LightPoint LightKind = iota
	LightDirectional
	LightSpot
)

func (k LightKind) String() string {
	switch k {
	case LightPoint:
		return "point"
	case LightDirectional:
		return "directional"
	case LightSpot:
		return "spot"
	}
	return "unknown"
}

// LightComponent holds light parameters consumed by the render surface.
// Color components are linear [0,1].
type LightComponent struct {
	Kind      LightKind
	Color     vmath.Vec3
	Intensity float64
	Range     float64
	SpotAngle float64
}

// NewLight returns a white point light with the defaults the editor seeds.
func NewLight() LightComponent {
	return LightComponent{
		Kind:      LightPoint,
		Color:     vmath.Vec3{X: 1, Y: 1, Z: 1},
		Intensity: 1.0,
		Range:     10.0,
		SpotAngle: 45.0,
	}
}
