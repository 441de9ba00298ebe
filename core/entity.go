package core

import "fmt"

// Entity is a packed handle to a registry slot: low 32 bits hold the dense
// slot index, high 32 bits hold the slot's generation at the time the handle
// was issued. A handle whose generation no longer matches the slot is stale.
type Entity uint64

// NilEntity is the zero handle. Generations start at 1, so no live entity
// ever packs to zero.
const NilEntity Entity = 0

// PackEntity builds a handle from a slot index and generation.
func PackEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the dense slot index of the handle.
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the generation the handle was issued with.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
