// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/wonsjb/caemu"

// CPU6502Stub is a deliberately minimal stand-in for a 6502-style CPU: it
// exposes a realistic 6502 pinout (address bus, bidirectional data bus,
// read/write and clock/reset/interrupt lines) but its Eval just advances
// an internal register file by one each cycle, without decoding or
// executing any instruction stream. Per spec's design notes, CPU models
// are illustrative examples of the component contract, not a requirement;
// this one exists only to show a wide, mixed In/Out/InOut pinout wired up
// through caemu's typed pin helpers.
//
type CPU6502Stub struct {
	addr     caemu.OutBus
	data     caemu.InOutBus
	rw       caemu.Out
	phi, irq caemu.In
	nmi, rdy caemu.In
	rst      caemu.In

	pc, acc, x, y, sp uint16
}

// NewCPU6502Stub returns a fresh, unconnected CPU6502Stub.
//
func NewCPU6502Stub() *CPU6502Stub {
	return &CPU6502Stub{
		addr: caemu.NewOutBus([]int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 22, 23, 24, 25}),
		data: caemu.NewInOutBus([]int{33, 32, 31, 30, 29, 28, 27, 26}),
		rw:   caemu.NewOut(36),
		phi:  caemu.NewIn(3),
		irq:  caemu.NewIn(4),
		nmi:  caemu.NewIn(6),
		rdy:  caemu.NewIn(2),
		rst:  caemu.NewIn(40),
	}
}

// Connect implements caemu.Component.
//
func (c *CPU6502Stub) Connect(bus *caemu.Bus) {
	c.addr.Connect(bus)
	c.data.Connect(bus)
	c.rw.Connect(bus)
	c.phi.Connect(bus)
	c.irq.Connect(bus)
	c.nmi.Connect(bus)
	c.rdy.Connect(bus)
	c.rst.Connect(bus)
}

// Eval implements caemu.Component.
//
func (c *CPU6502Stub) Eval() caemu.Delay {
	if c.rst.Get() == caemu.ZERO {
		c.pc, c.acc, c.x, c.y, c.sp = 0, 0, 0, 0, 0xFD
		c.rw.Set(caemu.ONE)
		return caemu.FromMicros(1)
	}

	c.pc++
	c.acc++
	c.x++
	c.y++
	c.sp++
	c.rw.Set(caemu.ONE)
	c.addr.SetU16(c.pc)
	c.data.SetHigh()

	return caemu.FromMicros(1)
}
