package engine

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/input"
	"github.com/void191/v0-game-engine/physics"
	"github.com/void191/v0-game-engine/vmath"
)

// Spawner instantiates named prefab templates into a world. The scene
// package provides the implementation; the world only holds the hook so
// scripts can spawn without the engine depending on the scene format.
type Spawner interface {
	Instantiate(w *World, name string, at vmath.Vec3) (core.Entity, error)
}

type slot struct {
	generation     uint32
	alive          bool
	pendingDestroy bool
}

// World is the simulation context: entity slots, component stores, clock and
// physics configuration. It carries no process-wide state, so independent
// worlds can run side by side. One step executes to completion before the
// next begins; stores are additionally locked so a render goroutine can read
// between steps.
type World struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32

	Components ComponentStore

	names  map[core.Entity]string
	byName map[string]core.Entity

	clock      *Clock
	gravity    vmath.Vec3
	tracker    *physics.PairTracker
	inputState *input.State
	frameInput *input.Snapshot
	log        zerolog.Logger
	spawner    Spawner

	inStep      bool
	commands    []func(*World)
	pendingAdds map[pendingKey]struct{}
	faulted     map[core.Entity]struct{}
}

type pendingKey struct {
	entity core.Entity
	store  any
}

// Option configures a new world.
type Option func(*World)

// WithLogger sets the world's logging sink. Defaults to a disabled logger.
func WithLogger(l zerolog.Logger) Option {
	return func(w *World) { w.log = l }
}

// WithGravity overrides the default gravity vector (0,-9.81,0).
func WithGravity(g vmath.Vec3) Option {
	return func(w *World) { w.gravity = g }
}

// WithFixedDt overrides the fixed timestep, default 1/60.
func WithFixedDt(dt float64) Option {
	return func(w *World) { w.clock.FixedDt = dt }
}

// WithMaxCatchUp caps how many fixed steps may run in one frame.
func WithMaxCatchUp(n int) Option {
	return func(w *World) { w.clock.MaxSteps = n }
}

// WithInput attaches an externally-fed input state.
func WithInput(s *input.State) Option {
	return func(w *World) { w.inputState = s }
}

// WithSpawner attaches a prefab spawner for script Instantiate calls.
func WithSpawner(s Spawner) Option {
	return func(w *World) { w.spawner = s }
}

// NewWorld creates an empty simulation world.
func NewWorld(opts ...Option) *World {
	w := &World{
		Components:  newComponentStore(),
		names:       make(map[core.Entity]string),
		byName:      make(map[string]core.Entity),
		clock:       NewClock(1.0 / 60.0),
		gravity:     vmath.Vec3{Y: -9.81},
		tracker:     physics.NewPairTracker(),
		inputState:  input.NewState(),
		frameInput:  &input.Snapshot{},
		log:         zerolog.Nop(),
		pendingAdds: make(map[pendingKey]struct{}),
		faulted:     make(map[core.Entity]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Clock returns the world's simulation clock.
func (w *World) Clock() *Clock {
	return w.clock
}

// SetSpawner attaches a prefab spawner after construction.
func (w *World) SetSpawner(s Spawner) {
	w.spawner = s
}

// CreateEntity reserves a new entity slot and returns its handle. Safe to
// call from scripts mid-step; the new entity holds no components until the
// buffered adds apply at the step boundary.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
		w.slots[idx].alive = true
		w.slots[idx].pendingDestroy = false
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{generation: 1, alive: true})
	}
	return core.PackEntity(idx, w.slots[idx].generation)
}

// DestroyEntity marks an entity for removal at the next step boundary.
// Idempotent: destroying an already-destroyed or unknown handle is a no-op.
// Until reclamation the entity keeps its components and stays visible to
// queries, so in-flight phases observe a consistent set for the whole step.
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.aliveLocked(e) {
		return
	}
	w.slots[e.Index()].pendingDestroy = true
}

// Alive reports whether the handle refers to a live slot. Entities pending
// destruction are still alive until the boundary.
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.aliveLocked(e)
}

// PendingDestroy reports whether the entity is queued for reclamation.
func (w *World) PendingDestroy(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.aliveLocked(e) && w.slots[e.Index()].pendingDestroy
}

func (w *World) aliveLocked(e core.Entity) bool {
	idx := e.Index()
	if int(idx) >= len(w.slots) {
		return false
	}
	s := w.slots[idx]
	return s.alive && s.generation == e.Generation()
}

// SetName assigns a scene name to an entity. The first entity registered
// under a name wins lookups.
func (w *World) SetName(e core.Entity, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.aliveLocked(e) || name == "" {
		return
	}
	w.names[e] = name
	if _, taken := w.byName[name]; !taken {
		w.byName[name] = e
	}
}

// Name returns the entity's scene name.
func (w *World) Name(e core.Entity) string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.names[e]
}

// FindByName resolves an entity by scene name.
func (w *World) FindByName(name string) (core.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.byName[name]
	if ok && !w.aliveLocked(e) {
		return core.NilEntity, false
	}
	return e, ok
}

// Maintain applies the deferred registry work at a step boundary: entities
// marked for destruction are reclaimed (their OnDestroy handlers fire, all
// components release atomically, the slot generation bumps so stale handles
// fail), then buffered script commands flush. Step calls this first; editors
// call it directly while the simulation is paused.
func (w *World) Maintain() {
	w.mu.Lock()
	var doomed []core.Entity
	for idx := range w.slots {
		if w.slots[idx].alive && w.slots[idx].pendingDestroy {
			doomed = append(doomed, core.PackEntity(uint32(idx), w.slots[idx].generation))
		}
	}
	w.mu.Unlock()
	sort.Slice(doomed, func(i, j int) bool { return doomed[i] < doomed[j] })

	for _, e := range doomed {
		w.fireDestroy(e)
	}

	w.mu.Lock()
	for _, e := range doomed {
		idx := e.Index()
		w.slots[idx].alive = false
		w.slots[idx].pendingDestroy = false
		w.slots[idx].generation++
		w.free = append(w.free, idx)

		if name, ok := w.names[e]; ok {
			delete(w.names, e)
			if w.byName[name] == e {
				delete(w.byName, name)
			}
		}
	}
	cmds := w.commands
	w.commands = nil
	w.pendingAdds = make(map[pendingKey]struct{})
	w.faulted = make(map[core.Entity]struct{})
	w.mu.Unlock()

	for _, e := range doomed {
		w.Components.removeAll(e)
	}
	for _, cmd := range cmds {
		cmd(w)
	}
}

// Clear removes every entity and resets all deferred state. Contact history
// is dropped, so a reloaded scene reports fresh enter events.
func (w *World) Clear() {
	w.mu.Lock()
	w.slots = nil
	w.free = nil
	w.names = make(map[core.Entity]string)
	w.byName = make(map[string]core.Entity)
	w.commands = nil
	w.pendingAdds = make(map[pendingKey]struct{})
	w.faulted = make(map[core.Entity]struct{})
	w.mu.Unlock()

	w.Components.Transform.Clear()
	w.Components.Mesh.Clear()
	w.Components.Light.Clear()
	w.Components.Camera.Clear()
	w.Components.Rigidbody.Clear()
	w.Components.Collider.Clear()
	w.Components.Script.Clear()
	w.tracker.Reset()
}

func (w *World) isFaulted(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.faulted[e]
	return ok
}

func (w *World) markFaulted(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.faulted[e] = struct{}{}
}

func (w *World) enqueue(cmd func(*World)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.commands = append(w.commands, cmd)
}

func (w *World) deferring() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.inStep
}
