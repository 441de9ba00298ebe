package engine

import (
	"sort"

	"github.com/void191/v0-game-engine/core"
)

// QueryBuilder collects entities holding every requested component kind.
// Intersection starts from the smallest store, so a query anchored on a rare
// component stays cheap even in a large world.
type QueryBuilder struct {
	world  *World
	stores []QueryableStore
}

// Query starts building an entity query.
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{world: w}
}

// With adds a required component store to the query.
func (qb *QueryBuilder) With(st QueryableStore) *QueryBuilder {
	if st != nil {
		qb.stores = append(qb.stores, st)
	}
	return qb
}

// Execute returns the entities holding all requested kinds, sorted ascending
// by handle so iteration order is deterministic across runs. Entities pending
// destruction are still included; they leave result sets only after the
// boundary reclaims them.
func (qb *QueryBuilder) Execute() []core.Entity {
	if len(qb.stores) == 0 {
		return nil
	}

	smallest := 0
	for i := 1; i < len(qb.stores); i++ {
		if qb.stores[i].Count() < qb.stores[smallest].Count() {
			smallest = i
		}
	}

	var result []core.Entity
	for _, e := range qb.stores[smallest].All() {
		if !qb.world.Alive(e) {
			continue
		}
		match := true
		for i, st := range qb.stores {
			if i == smallest {
				continue
			}
			if !st.Has(e) {
				match = false
				break
			}
		}
		if match {
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
