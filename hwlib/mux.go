// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/wonsjb/caemu"

// Decoder138 models a 74138-style 1-of-8 decoder/demultiplexer.
//
//	Pins:   a[1,2,3]  e0[4] e1[5] e2[6]  y[15,14,13,12,11,10,9,7]  gnd[8] vcc[16]
//	Delay:  53 ns
//
// The chip only drives an output when e0==0, e1==0 and e2==1 (the
// datasheet's active-low/active-high enable triple, e == 0b100 read as
// e2:e1:e0); any other enable combination drives every output low.
//
// The original source lists pin 5 twice in this chip's enable-pin group,
// almost certainly a transcription bug (spec's design notes flag this);
// this model uses the three distinct datasheet enable pins 4, 5 and 6
// instead.
//
type Decoder138 struct {
	a        caemu.InBus
	e        caemu.InBus
	y        caemu.OutBus
	gnd, vcc caemu.In
}

// NewDecoder138 returns a fresh, unconnected Decoder138.
//
func NewDecoder138() *Decoder138 {
	return &Decoder138{
		a:   caemu.NewInBus([]int{1, 2, 3}),
		e:   caemu.NewInBus([]int{4, 5, 6}),
		y:   caemu.NewOutBus([]int{15, 14, 13, 12, 11, 10, 9, 7}),
		gnd: caemu.NewIn(8),
		vcc: caemu.NewIn(16),
	}
}

// Connect implements caemu.Component.
//
func (c *Decoder138) Connect(bus *caemu.Bus) {
	c.a.Connect(bus)
	c.e.Connect(bus)
	c.y.Connect(bus)
	c.gnd.Connect(bus)
	c.vcc.Connect(bus)
}

// Eval implements caemu.Component.
//
func (c *Decoder138) Eval() caemu.Delay {
	if c.e.GetU8() != 0b100 {
		c.y.SetU8(0)
	} else {
		a := c.a.GetU8()
		c.y.SetU8(1 << a)
	}
	return caemu.FromNanos(53)
}
