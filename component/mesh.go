package component

// MeshComponent references renderable mesh and material assets. The core
// never interprets the paths; the render surface reads them after each step.
type MeshComponent struct {
	MeshPath       string
	Material       string
	CastShadows    bool
	ReceiveShadows bool
}

// NewMesh returns a mesh component with shadows enabled.
func NewMesh(path string) MeshComponent {
	return MeshComponent{
		MeshPath:       path,
		CastShadows:    true,
		ReceiveShadows: true,
	}
}
