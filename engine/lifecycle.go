package engine

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/input"
	"github.com/void191/v0-game-engine/physics"
	"github.com/void191/v0-game-engine/script"
	"github.com/void191/v0-game-engine/vmath"
)

// scriptEntities returns the frame's script-holding entities in ascending
// handle order, the dispatch order for every lifecycle phase.
func (w *World) scriptEntities() []core.Entity {
	return w.Query().With(w.Components.Script).Execute()
}

// runAwakeStart advances newly attached scripts one lifecycle transition:
// Awake fires on the first step after attachment, Start on the following
// step. The fired flag is written before the callback runs, so a panicking
// callback still counts as having fired and is never retried.
func (w *World) runAwakeStart() {
	for _, e := range w.scriptEntities() {
		if w.PendingDestroy(e) || w.isFaulted(e) {
			continue
		}
		sc, ok := w.Components.Script.Get(e)
		if !ok || !sc.Enabled || sc.Behavior == nil {
			continue
		}
		switch {
		case !sc.AwakeFired:
			sc.AwakeFired = true
			w.Components.Script.Set(e, sc)
			w.invoke(e, "awake", func(ctx script.API) { sc.Behavior.Awake(ctx) })
		case !sc.StartFired:
			sc.StartFired = true
			w.Components.Script.Set(e, sc)
			w.invoke(e, "start", func(ctx script.API) { sc.Behavior.Start(ctx) })
		}
	}
}

// runUpdate fires Update once for every active script.
func (w *World) runUpdate(dt float64) {
	for _, e := range w.scriptEntities() {
		if w.PendingDestroy(e) || w.isFaulted(e) {
			continue
		}
		sc, ok := w.Components.Script.Get(e)
		if !ok || !sc.Enabled || sc.Behavior == nil || !sc.Active() {
			continue
		}
		w.invoke(e, "update", func(ctx script.API) { sc.Behavior.Update(ctx, dt) })
	}
}

// runFixedUpdate fires FixedUpdate for every active script; the caller loops
// it once per due fixed step.
func (w *World) runFixedUpdate(dt float64) {
	for _, e := range w.scriptEntities() {
		if w.PendingDestroy(e) || w.isFaulted(e) {
			continue
		}
		sc, ok := w.Components.Script.Get(e)
		if !ok || !sc.Enabled || sc.Behavior == nil || !sc.Active() {
			continue
		}
		w.invoke(e, "fixed_update", func(ctx script.API) { sc.Behavior.FixedUpdate(ctx, dt) })
	}
}

// dispatchPairEvents delivers collision and trigger transitions to both
// members of each pair. Scripts hear about contacts from their first step
// onward (AwakeFired), even before Start completes, so spawn-inside-overlap
// is observable.
func (w *World) dispatchPairEvents(events []physics.PairEvent) {
	for _, ev := range events {
		w.deliverPairEvent(ev.Pair.A, ev.Pair.B, ev)
		w.deliverPairEvent(ev.Pair.B, ev.Pair.A, ev)
	}
}

func (w *World) deliverPairEvent(target, other core.Entity, ev physics.PairEvent) {
	if !w.Alive(target) || w.PendingDestroy(target) || w.isFaulted(target) {
		return
	}
	sc, ok := w.Components.Script.Get(target)
	if !ok || !sc.Enabled || sc.Behavior == nil || !sc.AwakeFired {
		return
	}

	if ev.Trigger {
		h, ok := sc.Behavior.(script.TriggerHandler)
		if !ok {
			return
		}
		switch ev.Kind {
		case physics.PairEnter:
			w.invoke(target, "trigger_enter", func(ctx script.API) { h.OnTriggerEnter(ctx, other) })
		case physics.PairStay:
			w.invoke(target, "trigger_stay", func(ctx script.API) { h.OnTriggerStay(ctx, other) })
		case physics.PairExit:
			w.invoke(target, "trigger_exit", func(ctx script.API) { h.OnTriggerExit(ctx, other) })
		}
		return
	}

	h, ok := sc.Behavior.(script.CollisionHandler)
	if !ok {
		return
	}
	switch ev.Kind {
	case physics.PairEnter:
		w.invoke(target, "collision_enter", func(ctx script.API) { h.OnCollisionEnter(ctx, other) })
	case physics.PairStay:
		w.invoke(target, "collision_stay", func(ctx script.API) { h.OnCollisionStay(ctx, other) })
	case physics.PairExit:
		w.invoke(target, "collision_exit", func(ctx script.API) { h.OnCollisionExit(ctx, other) })
	}
}

// fireDestroy notifies an entity's behavior that its slot is about to be
// reclaimed. Runs outside the step phases, during Maintain.
func (w *World) fireDestroy(e core.Entity) {
	sc, ok := w.Components.Script.Get(e)
	if !ok || sc.Behavior == nil || !sc.AwakeFired {
		return
	}
	h, ok := sc.Behavior.(script.DestroyHandler)
	if !ok {
		return
	}
	w.invoke(e, "destroy", func(ctx script.API) { h.OnDestroy(ctx) })
}

// invoke runs one behavior callback with panic isolation. A panic marks the
// entity faulted and skips its remaining callbacks for this step; other
// entities are unaffected and the entity runs again next step.
func (w *World) invoke(e core.Entity, phase string, fn func(script.API)) {
	defer func() {
		if r := recover(); r != nil {
			w.markFaulted(e)
			w.log.Error().
				Err(core.ErrScriptFault).
				Stringer("entity", e).
				Str("phase", phase).
				Any("panic", r).
				Msg("script callback panicked")
		}
	}()
	fn(&scriptContext{world: w, entity: e})
}

// scriptContext is the per-callback implementation of script.API. It is
// allocated per invocation and must not be retained past the callback.
type scriptContext struct {
	world  *World
	entity core.Entity
}

func (c *scriptContext) Entity() core.Entity { return c.entity }

func (c *scriptContext) Transform() component.TransformComponent {
	tr, _ := c.world.Components.Transform.Get(c.entity)
	return tr
}

func (c *scriptContext) SetTransform(tr component.TransformComponent) {
	if c.world.Components.Transform.Has(c.entity) {
		c.world.Components.Transform.Set(c.entity, tr)
	}
}

func (c *scriptContext) Input() *input.Snapshot {
	return c.world.frameInput
}

func (c *scriptContext) Time() float64 {
	return c.world.clock.Time()
}

func (c *scriptContext) Log() *zerolog.Logger {
	l := c.world.log.With().Stringer("entity", c.entity).Logger()
	return &l
}

func (c *scriptContext) CreateEntity() core.Entity {
	return c.world.CreateEntity()
}

func (c *scriptContext) DestroyEntity(e core.Entity) {
	c.world.DestroyEntity(e)
}

func (c *scriptContext) Find(name string) (core.Entity, bool) {
	return c.world.FindByName(name)
}

func (c *scriptContext) AddForce(f vmath.Vec3) {
	rb, ok := c.world.Components.Rigidbody.Get(c.entity)
	if !ok {
		return
	}
	rb.AddForce(f)
	c.world.Components.Rigidbody.Set(c.entity, rb)
}

func (c *scriptContext) AddImpulse(imp vmath.Vec3) {
	rb, ok := c.world.Components.Rigidbody.Get(c.entity)
	if !ok {
		return
	}
	rb.AddImpulse(imp)
	c.world.Components.Rigidbody.Set(c.entity, rb)
}

func (c *scriptContext) Instantiate(prefab string, at vmath.Vec3) (core.Entity, error) {
	if c.world.spawner == nil {
		return core.NilEntity, eris.New("no spawner attached to world")
	}
	return c.world.spawner.Instantiate(c.world, prefab, at)
}
