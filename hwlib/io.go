// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"
	"io"
	"os"

	"github.com/wonsjb/caemu"
)

// Terminal models a simple memory-mapped character output device: on a
// rising edge of we while ce is asserted low, it writes the byte on its
// data bus to its sink as a single rune. Per §5, this write is the
// simulator's only sanctioned I/O side effect and happens synchronously
// within Eval; it never blocks.
//
type Terminal struct {
	d      caemu.InBus
	we, ce caemu.In
	sink   io.Writer
}

// NewTerminal returns a fresh, unconnected Terminal writing to os.Stdout.
//
func NewTerminal() *Terminal {
	return NewTerminalTo(os.Stdout)
}

// NewTerminalTo returns a fresh, unconnected Terminal writing to sink.
//
func NewTerminalTo(sink io.Writer) *Terminal {
	return &Terminal{
		d:    caemu.NewInBus([]int{1, 2, 3, 4, 5, 6, 7, 8}),
		we:   caemu.NewIn(9),
		ce:   caemu.NewIn(10),
		sink: sink,
	}
}

// Connect implements caemu.Component.
//
func (t *Terminal) Connect(bus *caemu.Bus) {
	t.d.Connect(bus)
	t.we.Connect(bus)
	t.ce.Connect(bus)
}

// Eval implements caemu.Component.
//
func (t *Terminal) Eval() caemu.Delay {
	if t.ce.Get() == caemu.ZERO && t.we.Raised() {
		fmt.Fprintf(t.sink, "%c", rune(t.d.GetU8()))
	}
	return caemu.FromNanos(40)
}
