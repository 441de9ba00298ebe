package physics

import "sort"

// PairEventKind classifies an overlap transition between two frames.
type PairEventKind uint8

const (
	PairEnter PairEventKind = iota
	PairStay
	PairExit
)

func (k PairEventKind) String() string {
	switch k {
	case PairEnter:
		return "enter"
	case PairStay:
		return "stay"
	case PairExit:
		return "exit"
	}
	return "unknown"
}

// PairEvent reports that an entity pair started, kept, or stopped
// overlapping this frame. Trigger carries the flag the pair had while
// overlapping; on exit the contact no longer exists, so the previous frame's
// flag is used.
type PairEvent struct {
	Pair    PairKey
	Kind    PairEventKind
	Trigger bool
}

// PairTracker diffs each frame's overlap set against the previous frame's to
// produce enter/stay/exit events. One tracker instance belongs to one world;
// Reset clears history when a scene is reloaded.
type PairTracker struct {
	prev map[PairKey]bool
}

// NewPairTracker returns an empty tracker.
func NewPairTracker() *PairTracker {
	return &PairTracker{prev: make(map[PairKey]bool)}
}

// Reset drops all tracked pairs. The next Update reports every overlap as an
// enter.
func (t *PairTracker) Reset() {
	t.prev = make(map[PairKey]bool)
}

// Update consumes this frame's contact set and returns transitions in a
// deterministic order: enters and stays in contact order, then exits sorted
// by pair key.
func (t *PairTracker) Update(contacts []Contact) []PairEvent {
	cur := make(map[PairKey]bool, len(contacts))
	var events []PairEvent

	for _, c := range contacts {
		key := MakePairKey(c.A, c.B)
		if _, dup := cur[key]; dup {
			continue
		}
		cur[key] = c.Trigger

		kind := PairEnter
		if _, seen := t.prev[key]; seen {
			kind = PairStay
		}
		events = append(events, PairEvent{Pair: key, Kind: kind, Trigger: c.Trigger})
	}

	var exits []PairEvent
	for key, trigger := range t.prev {
		if _, still := cur[key]; still {
			continue
		}
		exits = append(exits, PairEvent{Pair: key, Kind: PairExit, Trigger: trigger})
	}
	sort.Slice(exits, func(i, j int) bool {
		if exits[i].Pair.A != exits[j].Pair.A {
			return exits[i].Pair.A < exits[j].Pair.A
		}
		return exits[i].Pair.B < exits[j].Pair.B
	})
	events = append(events, exits...)

	t.prev = cur
	return events
}
