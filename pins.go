// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

// Typed pin helpers wrap a Bus index with datasheet-style, 1-based pin
// numbering (§4.3): the caller passes the datasheet pin number once, at
// construction, and every other method works with the 0-based local index
// internally.

// In is a read-only single-pin wrapper.
//
type In struct {
	id  int
	bus *Bus
}

// NewIn returns an In bound to datasheet pin id (1-based).
//
func NewIn(id int) In { return In{id: id - 1} }

// Connect implements the binding step a component's Connect(bus) performs
// once at plug time.
//
func (p *In) Connect(bus *Bus) { p.bus = bus }

// Get returns the pin's current signal, or HIGH if not yet connected.
//
func (p *In) Get() Signal {
	if p.bus == nil {
		return HIGH
	}
	return p.bus.Get(p.id)
}

// Raised reports a ZERO->ONE transition on this pin's net.
//
func (p *In) Raised() bool {
	if p.bus == nil {
		return false
	}
	return p.bus.Raised(p.id)
}

// Out is a write-only single-pin wrapper.
//
type Out struct {
	id  int
	bus *Bus
}

// NewOut returns an Out bound to datasheet pin id (1-based).
//
func NewOut(id int) Out { return Out{id: id - 1} }

// Connect implements the binding step a component's Connect(bus) performs
// once at plug time.
//
func (p *Out) Connect(bus *Bus) { p.bus = bus }

// Set stages s for commit on this pin's net.
//
func (p *Out) Set(s Signal) {
	if p.bus != nil {
		p.bus.Set(p.id, s)
	}
}

// InOut is a bidirectional single-pin wrapper.
//
type InOut struct {
	id  int
	bus *Bus
}

// NewInOut returns an InOut bound to datasheet pin id (1-based).
//
func NewInOut(id int) InOut { return InOut{id: id - 1} }

// Connect implements the binding step a component's Connect(bus) performs
// once at plug time.
//
func (p *InOut) Connect(bus *Bus) { p.bus = bus }

// Get returns the pin's current signal, or HIGH if not yet connected.
//
func (p *InOut) Get() Signal {
	if p.bus == nil {
		return HIGH
	}
	return p.bus.Get(p.id)
}

// Raised reports a ZERO->ONE transition on this pin's net.
//
func (p *InOut) Raised() bool {
	if p.bus == nil {
		return false
	}
	return p.bus.Raised(p.id)
}

// Set stages s for commit on this pin's net.
//
func (p *InOut) Set(s Signal) {
	if p.bus != nil {
		p.bus.Set(p.id, s)
	}
}

// bitWidth caps the little-endian encode/decode helpers at 16 bits, per
// spec.
const bitWidth = 16

// InBus is a read-only multi-pin wrapper, used to decode little-endian
// unsigned integers across up to 16 pins. Bit i of the integer corresponds
// to the i-th listed pin.
//
type InBus []In

// NewInBus returns an InBus bound to the given datasheet pin numbers
// (1-based), bit 0 first.
//
func NewInBus(ids []int) InBus {
	b := make(InBus, len(ids))
	for i, id := range ids {
		b[i] = NewIn(id)
	}
	return b
}

// Connect implements the binding step a component's Connect(bus) performs
// once at plug time.
//
func (b InBus) Connect(bus *Bus) {
	for i := range b {
		b[i].Connect(bus)
	}
}

// Get returns the signal on the i-th wrapped pin.
//
func (b InBus) Get(i int) Signal { return b[i].Get() }

// GetU8 decodes the first min(8, len(b)) pins into a little-endian uint8.
// Pins beyond the 8th are ignored.
//
func (b InBus) GetU8() uint8 {
	var v uint8
	for i := 0; i < len(b) && i < 8; i++ {
		if b[i].Get() == ONE {
			v |= 1 << uint(i)
		}
	}
	return v
}

// GetU16 decodes the first min(16, len(b)) pins into a little-endian
// uint16. Pins beyond the 16th are ignored.
//
func (b InBus) GetU16() uint16 {
	var v uint16
	for i := 0; i < len(b) && i < bitWidth; i++ {
		if b[i].Get() == ONE {
			v |= 1 << uint(i)
		}
	}
	return v
}

// OutBus is a write-only multi-pin wrapper, the output counterpart of
// InBus.
//
type OutBus []Out

// NewOutBus returns an OutBus bound to the given datasheet pin numbers
// (1-based), bit 0 first.
//
func NewOutBus(ids []int) OutBus {
	b := make(OutBus, len(ids))
	for i, id := range ids {
		b[i] = NewOut(id)
	}
	return b
}

// Connect implements the binding step a component's Connect(bus) performs
// once at plug time.
//
func (b OutBus) Connect(bus *Bus) {
	for i := range b {
		b[i].Connect(bus)
	}
}

// Set stages signal s on the i-th wrapped pin.
//
func (b OutBus) Set(i int, s Signal) { b[i].Set(s) }

// SetHigh drives every wrapped pin to HIGH.
//
func (b OutBus) SetHigh() {
	for i := range b {
		b[i].Set(HIGH)
	}
}

// SetU8 encodes v as little-endian bits across the first min(8, len(b))
// pins; pins beyond the 8th are left untouched.
//
func (b OutBus) SetU8(v uint8) {
	for i := 0; i < len(b) && i < 8; i++ {
		if v&(1<<uint(i)) != 0 {
			b[i].Set(ONE)
		} else {
			b[i].Set(ZERO)
		}
	}
}

// SetU16 encodes v as little-endian bits across the first min(16, len(b))
// pins; pins beyond the 16th are left untouched.
//
func (b OutBus) SetU16(v uint16) {
	for i := 0; i < len(b) && i < bitWidth; i++ {
		if v&(1<<uint(i)) != 0 {
			b[i].Set(ONE)
		} else {
			b[i].Set(ZERO)
		}
	}
}

// InOutBus is a bidirectional multi-pin wrapper combining InBus and OutBus.
//
type InOutBus []InOut

// NewInOutBus returns an InOutBus bound to the given datasheet pin numbers
// (1-based), bit 0 first.
//
func NewInOutBus(ids []int) InOutBus {
	b := make(InOutBus, len(ids))
	for i, id := range ids {
		b[i] = NewInOut(id)
	}
	return b
}

// Connect implements the binding step a component's Connect(bus) performs
// once at plug time.
//
func (b InOutBus) Connect(bus *Bus) {
	for i := range b {
		b[i].Connect(bus)
	}
}

// Get returns the signal on the i-th wrapped pin.
//
func (b InOutBus) Get(i int) Signal { return b[i].Get() }

// Set stages signal s on the i-th wrapped pin.
//
func (b InOutBus) Set(i int, s Signal) { b[i].Set(s) }

// SetHigh drives every wrapped pin to HIGH.
//
func (b InOutBus) SetHigh() {
	for i := range b {
		b[i].Set(HIGH)
	}
}

// GetU8 decodes the first min(8, len(b)) pins into a little-endian uint8.
//
func (b InOutBus) GetU8() uint8 {
	var v uint8
	for i := 0; i < len(b) && i < 8; i++ {
		if b[i].Get() == ONE {
			v |= 1 << uint(i)
		}
	}
	return v
}

// GetU16 decodes the first min(16, len(b)) pins into a little-endian
// uint16.
//
func (b InOutBus) GetU16() uint16 {
	var v uint16
	for i := 0; i < len(b) && i < bitWidth; i++ {
		if b[i].Get() == ONE {
			v |= 1 << uint(i)
		}
	}
	return v
}

// SetU8 encodes v as little-endian bits across the first min(8, len(b))
// pins.
//
func (b InOutBus) SetU8(v uint8) {
	for i := 0; i < len(b) && i < 8; i++ {
		if v&(1<<uint(i)) != 0 {
			b[i].Set(ONE)
		} else {
			b[i].Set(ZERO)
		}
	}
}

// SetU16 encodes v as little-endian bits across the first min(16, len(b))
// pins.
//
func (b InOutBus) SetU16(v uint16) {
	for i := 0; i < len(b) && i < bitWidth; i++ {
		if v&(1<<uint(i)) != 0 {
			b[i].Set(ONE)
		} else {
			b[i].Set(ZERO)
		}
	}
}
