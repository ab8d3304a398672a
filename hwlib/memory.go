// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/wonsjb/caemu"

// SRAM models an AS6C62256-style 32Kx8 static RAM: a 15-bit address bus,
// an 8-bit bidirectional data bus, and active-low chip-enable/output-
// enable/write-enable controls.
//
//	ce==ONE at any time drives the data bus HIGH regardless of we/oe.
//	we==ZERO (with ce==ZERO) writes the data bus into the addressed cell
//	and stages nothing on the data bus, whatever oe is.
//	oe==ZERO (with ce==ZERO, we==ONE) drives the addressed cell onto the
//	data bus; oe==ONE (with ce==ZERO, we==ONE) drives the data bus HIGH.
//
type SRAM struct {
	a          caemu.InBus
	d          caemu.InOutBus
	ce, oe, we caemu.In
	mem        [1 << 15]uint8
}

// NewSRAM returns a fresh, unconnected, zeroed SRAM.
//
func NewSRAM() *SRAM {
	return &SRAM{
		a:  caemu.NewInBus([]int{10, 9, 8, 7, 6, 5, 4, 3, 25, 24, 21, 23, 2, 26, 1}),
		d:  caemu.NewInOutBus([]int{11, 12, 13, 15, 16, 17, 18, 19}),
		ce: caemu.NewIn(20),
		oe: caemu.NewIn(22),
		we: caemu.NewIn(27),
	}
}

// Connect implements caemu.Component.
//
func (m *SRAM) Connect(bus *caemu.Bus) {
	m.a.Connect(bus)
	m.d.Connect(bus)
	m.ce.Connect(bus)
	m.oe.Connect(bus)
	m.we.Connect(bus)
}

// Eval implements caemu.Component.
//
func (m *SRAM) Eval() caemu.Delay {
	if m.ce.Get() == caemu.ONE {
		m.d.SetHigh()
		return caemu.FromNanos(20)
	}

	if m.we.Get() == caemu.ZERO {
		m.mem[m.a.GetU16()] = m.d.GetU8()
		return caemu.FromNanos(20)
	}

	if m.oe.Get() == caemu.ONE {
		m.d.SetHigh()
		return caemu.FromNanos(20)
	}

	m.d.SetU8(m.mem[m.a.GetU16()])
	return caemu.FromNanos(55)
}

// EEPROM models an AT28C256-style 32Kx8 EEPROM: read-only at simulation
// time, preloaded via Load. Like SRAM, ce==ONE drives the data bus HIGH.
//
type EEPROM struct {
	a      caemu.InBus
	d      caemu.OutBus
	ce, oe caemu.In
	mem    [1 << 15]uint8
}

// NewEEPROM returns a fresh, unconnected, zeroed EEPROM.
//
func NewEEPROM() *EEPROM {
	return &EEPROM{
		a:  caemu.NewInBus([]int{10, 9, 8, 7, 6, 5, 4, 3, 25, 24, 21, 23, 2, 26, 1}),
		d:  caemu.NewOutBus([]int{11, 12, 13, 15, 16, 17, 18, 19}),
		ce: caemu.NewIn(20),
		oe: caemu.NewIn(22),
	}
}

// Load copies data into the EEPROM's backing store starting at address 0,
// truncating at the device's capacity.
//
func (m *EEPROM) Load(data []uint8) {
	copy(m.mem[:], data)
}

// Connect implements caemu.Component.
//
func (m *EEPROM) Connect(bus *caemu.Bus) {
	m.a.Connect(bus)
	m.d.Connect(bus)
	m.ce.Connect(bus)
	m.oe.Connect(bus)
}

// Eval implements caemu.Component.
//
func (m *EEPROM) Eval() caemu.Delay {
	if m.ce.Get() == caemu.ONE || m.oe.Get() == caemu.ONE {
		m.d.SetHigh()
		return caemu.FromNanos(20)
	}
	m.d.SetU8(m.mem[m.a.GetU16()])
	return caemu.FromNanos(55)
}
