package sendstats

import (
	"sync/atomic"

	"Go2SendGraph/internal/model"
)

// Slot holds the active CounterSet for one task and implements
// collect-and-reset as a single atomic pointer exchange. Senders always
// write through the Slot; a set returned by CollectAndReset belongs to
// the collector and is no longer reachable through the slot.
//
// The swap means the send path never blocks on a collection: an
// increment that races with the swap lands in exactly one of the two
// adjacent sets, so it is attributed to one of the two adjacent
// intervals and never lost or double counted.
type Slot struct {
	ref atomic.Pointer[CounterSet]
}

// NewSlot creates a slot holding an empty counter set.
func NewSlot() *Slot {
	s := &Slot{}
	s.ref.Store(NewCounterSet())
	return s
}

// Increment adds one to the counter for dst in the currently active set.
func (s *Slot) Increment(dst model.TaskID) {
	s.ref.Load().Increment(dst)
}

// CollectAndReset swaps in a fresh empty CounterSet and returns the
// previous one. Every increment that completed before the call is in the
// returned set; every increment that starts after it goes to the new
// set. Collection runs on a slow timer (seconds), so in-flight racing
// increments have long settled by the time the returned set is
// serialized.
func (s *Slot) CollectAndReset() *CounterSet {
	return s.ref.Swap(NewCounterSet())
}
