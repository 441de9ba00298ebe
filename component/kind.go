package component

// Kind identifies a component kind. An entity holds at most one component of
// each kind.
type Kind uint8

const (
	KindTransform Kind = iota
	KindMesh
	KindLight
	KindCamera
	KindRigidbody
	KindCollider
	KindScript
)

var kindNames = map[Kind]string{
	KindTransform: "transform",
	KindMesh:      "mesh",
	KindLight:     "light",
	KindCamera:    "camera",
	KindRigidbody: "rigidbody",
	KindCollider:  "collider",
	KindScript:    "script",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromName resolves a scene-file type string to a Kind.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Validator is implemented by components that carry constraints checked at
// add/load time, never during the hot simulation phases.
type Validator interface {
	Validate() error
}
