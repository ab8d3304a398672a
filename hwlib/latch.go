// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/wonsjb/caemu"

// DLatch models a single level-triggered D latch: while clock is ONE, the
// output follows the data input and the value is memorized; while clock
// is ZERO, the output holds the last memorized value.
//
//	Pins:  d[1]  c[2]  q[3]
//	Delay: 40 ns
//
type DLatch struct {
	d, c caemu.In
	q    caemu.Out
	mem  caemu.Signal
}

// NewDLatch returns a fresh, unconnected DLatch. The memorized value
// starts ZERO, matching the datasheet's power-on state.
//
func NewDLatch() *DLatch {
	return &DLatch{
		d:   caemu.NewIn(1),
		c:   caemu.NewIn(2),
		q:   caemu.NewOut(3),
		mem: caemu.ZERO,
	}
}

// Connect implements caemu.Component.
//
func (l *DLatch) Connect(bus *caemu.Bus) {
	l.d.Connect(bus)
	l.c.Connect(bus)
	l.q.Connect(bus)
}

// Eval implements caemu.Component.
//
func (l *DLatch) Eval() caemu.Delay {
	if l.c.Get() == caemu.ONE {
		l.mem = l.d.Get()
	}
	l.q.Set(l.mem)
	return caemu.FromNanos(40)
}

// QuadLatch models a 74LS77-style quad latch with two independent
// controls: c0 gates d0/d1, c1 gates d2/d3.
//
//	Pins:  d[1,2,5,6]  c[12,3]  q[14,13,9,8]  vcc[4] gnd[11] nc[7,10]
//	Delay: 40 ns
//
type QuadLatch struct {
	d, nc    caemu.InBus
	c        caemu.InBus
	q        caemu.OutBus
	vcc, gnd caemu.In
	mem      [4]caemu.Signal
}

// NewQuadLatch returns a fresh, unconnected QuadLatch. All four memorized
// bits start ZERO.
//
func NewQuadLatch() *QuadLatch {
	return &QuadLatch{
		d:   caemu.NewInBus([]int{1, 2, 5, 6}),
		c:   caemu.NewInBus([]int{12, 3}),
		q:   caemu.NewOutBus([]int{14, 13, 9, 8}),
		vcc: caemu.NewIn(4),
		gnd: caemu.NewIn(11),
		nc:  caemu.NewInBus([]int{7, 10}),
	}
}

// Connect implements caemu.Component.
//
func (l *QuadLatch) Connect(bus *caemu.Bus) {
	l.d.Connect(bus)
	l.c.Connect(bus)
	l.q.Connect(bus)
	l.vcc.Connect(bus)
	l.gnd.Connect(bus)
	l.nc.Connect(bus)
}

// Eval implements caemu.Component.
//
func (l *QuadLatch) Eval() caemu.Delay {
	if l.c.Get(0) == caemu.ONE {
		l.mem[0] = l.d.Get(0)
		l.mem[1] = l.d.Get(1)
	}
	l.q.Set(0, l.mem[0])
	l.q.Set(1, l.mem[1])

	if l.c.Get(1) == caemu.ONE {
		l.mem[2] = l.d.Get(2)
		l.mem[3] = l.d.Get(3)
	}
	l.q.Set(2, l.mem[2])
	l.q.Set(3, l.mem[3])

	return caemu.FromNanos(40)
}
