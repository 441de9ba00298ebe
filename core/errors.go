package core

import "github.com/rotisserie/eris"

// Registry and simulation error taxonomy. Callers match with eris.Is; call
// sites attach context with eris.Wrap/Wrapf so the cause stays testable.
var (
	// ErrDuplicateComponent is returned when a component kind is added to an
	// entity that already holds that kind.
	ErrDuplicateComponent = eris.New("entity already has a component of this kind")

	// ErrStaleEntity is returned when an entity handle refers to a reclaimed
	// slot (generation mismatch). This is a contract violation on the caller's
	// side and is surfaced rather than ignored.
	ErrStaleEntity = eris.New("stale entity handle")

	// ErrMissingComponent is returned when a live entity does not hold the
	// requested component kind. Distinct from ErrStaleEntity so callers can
	// tell a dead handle from a live entity without the component.
	ErrMissingComponent = eris.New("entity does not hold this component kind")

	// ErrInvalidShape rejects malformed collider parameters at construction
	// time so the collision pass never sees them.
	ErrInvalidShape = eris.New("invalid collider shape parameters")

	// ErrInvalidComponent rejects malformed non-shape component data, such as
	// a rigidbody with non-positive mass.
	ErrInvalidComponent = eris.New("invalid component data")

	// ErrDegenerateContact marks a sphere pair with exactly coincident
	// centers. The contact resolves with a zero normal and the step continues.
	ErrDegenerateContact = eris.New("degenerate contact: coincident centers")

	// ErrInvalidSceneData rejects scene or prefab files that cannot be
	// reconstructed into a valid component set.
	ErrInvalidSceneData = eris.New("invalid scene data")

	// ErrScriptFault wraps a panic raised by a script callback. The offending
	// entity is skipped for the rest of the step; the simulation continues.
	ErrScriptFault = eris.New("script callback fault")
)
