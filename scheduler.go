// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

import "container/heap"

// delayHeap is a min-heap of pending commit times, used to pop the
// earliest scheduled sub-step in O(log n).
//
type delayHeap []Delay

func (h delayHeap) Len() int            { return len(h) }
func (h delayHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h delayHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *delayHeap) Push(x interface{}) { *h = append(*h, x.(Delay)) }
func (h *delayHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// schedule is the scheduler's map from absolute simulated time to the set
// of component indices whose outputs commit then (§4.5), backed by a
// min-heap for ordered popping.
//
type schedule struct {
	times   delayHeap
	pending map[Delay][]int
}

func newSchedule() *schedule {
	return &schedule{pending: make(map[Delay][]int)}
}

func (s *schedule) insert(at Delay, idx int) {
	if _, ok := s.pending[at]; !ok {
		heap.Push(&s.times, at)
	}
	s.pending[at] = append(s.pending[at], idx)
}

func (s *schedule) empty() bool { return s.times.Len() == 0 }

// popEarliest returns the earliest pending time and its component
// indices, removing both from the schedule.
//
func (s *schedule) popEarliest() (Delay, []int) {
	at := heap.Pop(&s.times).(Delay)
	idxs := s.pending[at]
	delete(s.pending, at)
	return at, idxs
}

// CompleteBoard is the complete-phase handle (§4.3): the board's component
// set and wiring are frozen; MoveTime and Eval drive the simulation.
//
type CompleteBoard struct {
	components []boundComponent
	store      *netStore
	logger     *Logger
	now        Delay
}

// MoveTime sets the current simulated time for the next Eval call.
//
func (cb *CompleteBoard) MoveTime(t Delay) {
	cb.now = t
}

// Time returns the board's current simulated time.
//
func (cb *CompleteBoard) Time() Delay { return cb.now }

// Eval runs the scheduler to quiescence (§4.5): every component is
// evaluated once at the current time to seed the schedule, then the
// earliest pending commits are applied, logged, and any component whose
// observed inputs no longer match the net values is re-evaluated, until
// nothing is left pending.
//
func (cb *CompleteBoard) Eval() {
	now := cb.now
	sched := newSchedule()

	for i := range cb.components {
		c := &cb.components[i]
		c.bus.Clear()
		d := c.component.Eval()
		sched.insert(now.Plus(d), i)
	}

	for !sched.empty() {
		t, idxs := sched.popEarliest()
		now = t

		for _, i := range idxs {
			cb.components[i].bus.Apply()
		}

		cb.logger.Log(cb.store.signals, now)

		for i := range cb.components {
			c := &cb.components[i]
			if !c.bus.IsDirty() {
				continue
			}
			c.bus.Clear()
			d := c.component.Eval()
			sched.insert(now.Plus(d), i)
		}

		for i := range cb.store.raised {
			cb.store.raised[i] = false
		}
	}

	cb.now = now
}
