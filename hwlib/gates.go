// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a small library of illustrative chip models built
// on top of the caemu component contract: logic gates, a decoder, a latch,
// memory, and a terminal. None of these are required by caemu itself; they
// exist to exercise and unit-test the simulator core.
package hwlib

import "github.com/wonsjb/caemu"

// Nand74x00 models a 74LS00-style quad 2-input NAND gate package: four
// independent NAND gates sharing one ground/Vcc pair, addressed as a
// single 4-bit bus for convenience.
//
//	Pins:    a[1,4,10,13]  b[2,5,9,12]  y[3,6,8,11]  gnd[7]  vcc[14]
//	Delay:   15 ns
//
// Built with caemu.BindTags, a struct-tag-driven alternative to the
// declarative pin list a macro would otherwise expand (spec's "macro-
// generated pin layout" note); compare with Not74x04 below, which wires
// its pins explicitly.
//
type Nand74x00 struct {
	A   caemu.InBus  `caemu:"1,4,10,13"`
	B   caemu.InBus  `caemu:"2,5,9,12"`
	Y   caemu.OutBus `caemu:"3,6,8,11"`
	Gnd caemu.In     `caemu:"7"`
	Vcc caemu.In     `caemu:"14"`
}

// NewNand74x00 returns a fresh, unconnected Nand74x00.
//
func NewNand74x00() *Nand74x00 {
	c := &Nand74x00{}
	caemu.BindTags(c)
	return c
}

// Connect implements caemu.Component.
//
func (c *Nand74x00) Connect(bus *caemu.Bus) { caemu.ConnectTags(c, bus) }

// Eval implements caemu.Component.
//
func (c *Nand74x00) Eval() caemu.Delay {
	a, b := c.A.GetU8(), c.B.GetU8()
	c.Y.SetU8(^(a & b))
	return caemu.FromNanos(15)
}

// Not74x04 models a 74LS04-style hex inverter package.
//
//	Pins:    a[1,3,5,9,11,13]  y[2,4,6,8,10,12]  gnd[7]  vcc[14]
//	Delay:   22 ns
//
type Not74x04 struct {
	a        caemu.InBus
	outBus   caemu.OutBus
	gnd, vcc caemu.In
}

// NewNot74x04 returns a fresh, unconnected Not74x04.
//
func NewNot74x04() *Not74x04 {
	return &Not74x04{
		a:      caemu.NewInBus([]int{1, 3, 5, 9, 11, 13}),
		outBus: caemu.NewOutBus([]int{2, 4, 6, 8, 10, 12}),
		gnd:    caemu.NewIn(7),
		vcc:    caemu.NewIn(14),
	}
}

// Connect implements caemu.Component.
//
func (c *Not74x04) Connect(bus *caemu.Bus) {
	c.a.Connect(bus)
	c.outBus.Connect(bus)
	c.gnd.Connect(bus)
	c.vcc.Connect(bus)
}

// Eval implements caemu.Component.
//
func (c *Not74x04) Eval() caemu.Delay {
	c.outBus.SetU8(^c.a.GetU8())
	return caemu.FromNanos(22)
}
