package script

// Component attaches a behavior instance to an entity and tracks its
// lifecycle phase: Uninitialized -> Awake-fired -> Start-fired -> Active.
// The flags advance one transition per simulation step.
type Component struct {
	Behavior Behavior
	Enabled  bool

	AwakeFired bool
	StartFired bool

	// Name is the registry name the behavior was created from, kept for
	// scene serialization.
	Name string
}

// NewComponent wraps a behavior in an enabled script component.
func NewComponent(name string, b Behavior) Component {
	return Component{
		Behavior: b,
		Enabled:  true,
		Name:     name,
	}
}

// Active reports whether the component has completed its Start phase.
func (c Component) Active() bool {
	return c.AwakeFired && c.StartFired
}
