// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

// A Component is the uniform evaluation contract every plugged part
// implements (§4.4).
//
type Component interface {
	// Connect binds bus to the component's pins. Called once, at plug
	// time.
	Connect(bus *Bus)
	// Eval reads inputs via the bus, stages next-outputs, and returns the
	// component's propagation delay. Eval must be a pure function of bus
	// reads and the component's own internal state; it must never inspect
	// another component's state.
	Eval() Delay
}

// Namer is an optional capability for macro-generated-style components:
// it supplies a human-readable name for a local (1-based datasheet) pin
// number, used by the VCD logger when no explicit Pin.Name was set on the
// board. Components without it simply fall back to the logger's default
// "B<net>" naming.
//
type Namer interface {
	PinName(localPin int) string
}
