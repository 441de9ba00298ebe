package engine

import (
	"github.com/rotisserie/eris"

	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
)

// Add attaches a component to an entity through its typed store. The kind
// must not already be present (ErrDuplicateComponent) and the handle must be
// live (ErrStaleEntity). Components implementing component.Validator are
// checked here so the simulation phases never see malformed data.
//
// During a running step the write is buffered and applied at the next step
// boundary; validation and duplicate detection still happen at call time.
func Add[T any](w *World, st *Store[T], e core.Entity, val T) error {
	if !w.Alive(e) {
		return eris.Wrapf(core.ErrStaleEntity, "add component to %v", e)
	}
	if v, ok := any(val).(component.Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	w.mu.Lock()
	if w.inStep {
		key := pendingKey{entity: e, store: st}
		_, queued := w.pendingAdds[key]
		if queued || st.Has(e) {
			w.mu.Unlock()
			return eris.Wrapf(core.ErrDuplicateComponent, "on %v", e)
		}
		w.pendingAdds[key] = struct{}{}
		w.commands = append(w.commands, func(w *World) {
			if !w.Alive(e) {
				w.log.Debug().Stringer("entity", e).Msg("dropping buffered add for reclaimed entity")
				return
			}
			st.Set(e, val)
		})
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	if st.Has(e) {
		return eris.Wrapf(core.ErrDuplicateComponent, "on %v", e)
	}
	st.Set(e, val)
	return nil
}

// Remove detaches a component kind from an entity. Removing a kind the
// entity does not hold is a no-op. Buffered during a running step.
func Remove[T any](w *World, st *Store[T], e core.Entity) error {
	if !w.Alive(e) {
		return eris.Wrapf(core.ErrStaleEntity, "remove component from %v", e)
	}
	if w.deferring() {
		w.enqueue(func(w *World) { st.Remove(e) })
		return nil
	}
	st.Remove(e)
	return nil
}

// Get returns a copy of the entity's component. A stale or reclaimed handle
// fails with ErrStaleEntity; a live entity without the kind fails with
// ErrMissingComponent, so script bugs surface instead of reading zero values.
func Get[T any](w *World, st *Store[T], e core.Entity) (T, error) {
	var zero T
	if !w.Alive(e) {
		return zero, eris.Wrapf(core.ErrStaleEntity, "get component of %v", e)
	}
	val, ok := st.Get(e)
	if !ok {
		return zero, eris.Wrapf(core.ErrMissingComponent, "on %v", e)
	}
	return val, nil
}

// Set overwrites an existing component value. Unlike Add it requires the
// kind to be present already, and it applies immediately even mid-step:
// value mutation cannot invalidate iteration, only attachment changes can.
func Set[T any](w *World, st *Store[T], e core.Entity, val T) error {
	if !w.Alive(e) {
		return eris.Wrapf(core.ErrStaleEntity, "set component on %v", e)
	}
	if !st.Has(e) {
		return eris.Wrapf(core.ErrMissingComponent, "on %v", e)
	}
	st.Set(e, val)
	return nil
}
