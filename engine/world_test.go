package engine

import (
	"testing"

	"github.com/rotisserie/eris"

	"github.com/void191/v0-game-engine/component"
	"github.com/void191/v0-game-engine/core"
	"github.com/void191/v0-game-engine/vmath"
)

func TestCreateDestroyReclaim(t *testing.T) {
	w := NewWorld()

	e := w.CreateEntity()
	if !w.Alive(e) {
		t.Fatalf("freshly created entity %v not alive", e)
	}
	if e.Generation() != 1 {
		t.Errorf("first generation = %d, want 1", e.Generation())
	}

	w.DestroyEntity(e)
	if !w.Alive(e) {
		t.Errorf("entity should stay alive until the boundary")
	}
	if !w.PendingDestroy(e) {
		t.Errorf("entity should be pending destroy")
	}

	w.Maintain()
	if w.Alive(e) {
		t.Errorf("entity alive after reclamation")
	}

	reused := w.CreateEntity()
	if reused.Index() != e.Index() {
		t.Errorf("slot not reused: index %d, want %d", reused.Index(), e.Index())
	}
	if reused.Generation() != e.Generation()+1 {
		t.Errorf("generation = %d, want %d", reused.Generation(), e.Generation()+1)
	}
	if w.Alive(e) {
		t.Errorf("stale handle reports alive after slot reuse")
	}
}

func TestDestroyIdempotent(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)
	w.DestroyEntity(e)
	w.Maintain()
	w.DestroyEntity(e)

	if w.Alive(e) {
		t.Errorf("destroyed entity still alive")
	}
	if len(w.free) != 1 {
		t.Errorf("free list length = %d, want 1", len(w.free))
	}
}

func TestStaleHandleRejected(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)
	w.Maintain()

	err := Add(w, w.Components.Transform, e, component.NewTransform())
	if !eris.Is(err, core.ErrStaleEntity) {
		t.Errorf("Add on stale handle: err = %v, want ErrStaleEntity", err)
	}
	if err := Set(w, w.Components.Transform, e, component.NewTransform()); !eris.Is(err, core.ErrStaleEntity) {
		t.Errorf("Set on stale handle: err = %v, want ErrStaleEntity", err)
	}
	if _, err := Get(w, w.Components.Transform, e); !eris.Is(err, core.ErrStaleEntity) {
		t.Errorf("Get on stale handle: err = %v, want ErrStaleEntity", err)
	}
}

func TestGetDistinguishesStaleFromMissing(t *testing.T) {
	w := NewWorld()

	// Live entity without the kind: missing, not stale.
	e := w.CreateEntity()
	if _, err := Get(w, w.Components.Mesh, e); !eris.Is(err, core.ErrMissingComponent) {
		t.Errorf("Get on live entity without component: err = %v, want ErrMissingComponent", err)
	}

	// Reclaimed handle: stale, even though the slot once held the kind.
	if err := Add(w, w.Components.Mesh, e, component.NewMesh("cube.obj")); err != nil {
		t.Fatal(err)
	}
	w.DestroyEntity(e)
	w.Maintain()
	if _, err := Get(w, w.Components.Mesh, e); !eris.Is(err, core.ErrStaleEntity) {
		t.Errorf("Get on reclaimed handle: err = %v, want ErrStaleEntity", err)
	}

	// Present component reads back clean.
	live := w.CreateEntity()
	if err := Add(w, w.Components.Mesh, live, component.NewMesh("ball.obj")); err != nil {
		t.Fatal(err)
	}
	m, err := Get(w, w.Components.Mesh, live)
	if err != nil {
		t.Fatalf("get present component: %v", err)
	}
	if m.MeshPath != "ball.obj" {
		t.Errorf("mesh path = %q", m.MeshPath)
	}
}

func TestDuplicateComponentRejected(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add(w, w.Components.Transform, e, component.NewTransform()); err != nil {
		t.Fatalf("first add: %v", err)
	}
	err := Add(w, w.Components.Transform, e, component.NewTransform())
	if !eris.Is(err, core.ErrDuplicateComponent) {
		t.Errorf("second add: err = %v, want ErrDuplicateComponent", err)
	}
}

func TestAddValidation(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	bad := component.NewSphereCollider(-1)
	if err := Add(w, w.Components.Collider, e, bad); !eris.Is(err, core.ErrInvalidShape) {
		t.Errorf("invalid collider accepted: %v", err)
	}
	if w.Components.Collider.Has(e) {
		t.Errorf("rejected component was stored")
	}
}

func TestComponentRemoval(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add(w, w.Components.Mesh, e, component.NewMesh("cube.obj")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := Remove(w, w.Components.Mesh, e); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if w.Components.Mesh.Has(e) {
		t.Errorf("component still present after removal")
	}
	// Removing an absent kind is a no-op.
	if err := Remove(w, w.Components.Mesh, e); err != nil {
		t.Errorf("remove of absent kind: %v", err)
	}
}

func TestDestroyReleasesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Add(w, w.Components.Transform, e, component.NewTransform()); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := Add(w, w.Components.Rigidbody, e, component.NewRigidbody()); err != nil {
		t.Fatalf("add rigidbody: %v", err)
	}

	w.DestroyEntity(e)
	w.Maintain()

	if w.Components.Transform.Has(e) || w.Components.Rigidbody.Has(e) {
		t.Errorf("components survived entity reclamation")
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()

	both := w.CreateEntity()
	onlyTr := w.CreateEntity()
	if err := Add(w, w.Components.Transform, both, component.NewTransform()); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, w.Components.Rigidbody, both, component.NewRigidbody()); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, w.Components.Transform, onlyTr, component.NewTransform()); err != nil {
		t.Fatal(err)
	}

	got := w.Query().With(w.Components.Transform).With(w.Components.Rigidbody).Execute()
	if len(got) != 1 || got[0] != both {
		t.Errorf("query = %v, want [%v]", got, both)
	}
}

func TestQueryIncludesPendingDestroy(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Add(w, w.Components.Transform, e, component.NewTransform()); err != nil {
		t.Fatal(err)
	}

	w.DestroyEntity(e)
	got := w.Query().With(w.Components.Transform).Execute()
	if len(got) != 1 {
		t.Errorf("pending-destroy entity missing from query: %v", got)
	}

	w.Maintain()
	got = w.Query().With(w.Components.Transform).Execute()
	if len(got) != 0 {
		t.Errorf("reclaimed entity still in query: %v", got)
	}
}

func TestQueryDeterministicOrder(t *testing.T) {
	w := NewWorld()
	var want []core.Entity
	for i := 0; i < 8; i++ {
		e := w.CreateEntity()
		if err := Add(w, w.Components.Transform, e, component.NewTransform()); err != nil {
			t.Fatal(err)
		}
		want = append(want, e)
	}

	for run := 0; run < 3; run++ {
		got := w.Query().With(w.Components.Transform).Execute()
		if len(got) != len(want) {
			t.Fatalf("run %d: %d results, want %d", run, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("run %d: result[%d] = %v, want %v", run, i, got[i], want[i])
			}
		}
	}
}

func TestFindByName(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.SetName(a, "player")
	w.SetName(b, "player")

	got, ok := w.FindByName("player")
	if !ok || got != a {
		t.Errorf("FindByName = %v,%v, want first-registered %v", got, ok, a)
	}

	w.DestroyEntity(a)
	w.Maintain()
	if _, ok := w.FindByName("player"); ok {
		t.Errorf("name resolved after owner reclaimed")
	}
}

func TestClearResetsWorld(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Add(w, w.Components.Transform, e, component.NewTransform()); err != nil {
		t.Fatal(err)
	}
	w.SetName(e, "thing")

	w.Clear()

	if w.Alive(e) {
		t.Errorf("entity alive after Clear")
	}
	if w.Components.Transform.Count() != 0 {
		t.Errorf("transform store not empty after Clear")
	}
	if _, ok := w.FindByName("thing"); ok {
		t.Errorf("name survived Clear")
	}
}

func TestSetRequiresPresence(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	tr := component.NewTransform()
	tr.Position = vmath.Vec3{X: 3}

	if err := Set(w, w.Components.Transform, e, tr); !eris.Is(err, core.ErrMissingComponent) {
		t.Errorf("Set without prior Add: err = %v, want ErrMissingComponent", err)
	}
	if err := Add(w, w.Components.Transform, e, component.NewTransform()); err != nil {
		t.Fatal(err)
	}
	if err := Set(w, w.Components.Transform, e, tr); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ := Get(w, w.Components.Transform, e)
	if got.Position.X != 3 {
		t.Errorf("Set did not overwrite: %v", got.Position)
	}
}
