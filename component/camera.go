package component

// CameraComponent holds projection parameters for the render surface. At most
// one camera per scene should set Main; the render snapshot picks the first
// main camera in registry order.
type CameraComponent struct {
	FOV  float64
	Near float64
	Far  float64
	Main bool
}

// NewCamera returns a camera with a 60 degree vertical FOV.
func NewCamera() CameraComponent {
	return CameraComponent{
		FOV:  60.0,
		Near: 0.1,
		Far:  1000.0,
	}
}
