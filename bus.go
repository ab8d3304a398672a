// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

// ioAction records either "nothing happened on this pin this evaluation"
// or the Signal that was read/staged.
//
type ioAction struct {
	valid bool
	value Signal
}

// netStore holds the global, board-wide net arrays shared by every Bus. A
// single CompleteBoard owns one netStore; Buses only ever borrow it.
//
type netStore struct {
	signals []Signal
	raised  []bool
}

func newNetStore(n int) *netStore {
	s := &netStore{signals: make([]Signal, n), raised: make([]bool, n)}
	for i := range s.signals {
		s.signals[i] = HIGH
	}
	return s
}

// A Bus is a component's private, staged view of its pins (§4.2). ids[i] is
// the net index backing local pin i; read/output are parallel staging
// arrays of the same length.
//
type Bus struct {
	ids    []int
	read   []ioAction
	output []ioAction
	store  *netStore
}

func newBus(ids []int, store *netStore) *Bus {
	return &Bus{
		ids:    ids,
		read:   make([]ioAction, len(ids)),
		output: make([]ioAction, len(ids)),
		store:  store,
	}
}

// Len returns the number of pins bound to this bus.
//
func (b *Bus) Len() int { return len(b.ids) }

// Get returns the current signal on local pin i and records it for later
// dirty-detection.
//
func (b *Bus) Get(i int) Signal {
	v := b.store.signals[b.ids[i]]
	b.read[i] = ioAction{valid: true, value: v}
	return v
}

// Raised reports whether local pin i's net had a ZERO->ONE transition in
// the current sub-step. Querying it counts as a read for dirty-detection.
//
func (b *Bus) Raised(i int) bool {
	id := b.ids[i]
	b.read[i] = ioAction{valid: true, value: b.store.signals[id]}
	return b.store.raised[id]
}

// Set stages a write of s to local pin i. It does not affect net values
// until Apply is called; a second Set on the same pin within one
// evaluation overwrites the first.
//
func (b *Bus) Set(i int, s Signal) {
	b.output[i] = ioAction{valid: true, value: s}
}

// Clear resets all staged reads and writes. The scheduler calls this
// before every Eval.
//
func (b *Bus) Clear() {
	for i := range b.read {
		b.read[i] = ioAction{}
		b.output[i] = ioAction{}
	}
}

// Apply commits every staged write to the shared net store, setting the
// raised flag on any net that transitions ZERO->ONE.
//
func (b *Bus) Apply() {
	for i, id := range b.ids {
		o := b.output[i]
		if !o.valid {
			continue
		}
		if b.store.signals[id] == ZERO && o.value == ONE {
			b.store.raised[id] = true
		}
		b.store.signals[id] = o.value
	}
}

// IsDirty reports whether any pin previously read by this bus now
// disagrees with the current net value.
//
func (b *Bus) IsDirty() bool {
	for i, id := range b.ids {
		r := b.read[i]
		if r.valid && r.value != b.store.signals[id] {
			return true
		}
	}
	return false
}
