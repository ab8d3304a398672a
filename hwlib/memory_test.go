// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	"github.com/wonsjb/caemu"
	"github.com/wonsjb/caemu/hwlib"
)

// driveBus is a minimal multi-pin output component used to exercise the
// SRAM/EEPROM address and data lines directly, without pulling in the
// tester package's single-pin probes. When driving is false it floats
// (drives HIGH) instead of its staged value.
type driveBus struct {
	out     caemu.OutBus
	value   uint16
	driving bool
}

func newDriveBus(ids []int) *driveBus {
	return &driveBus{out: caemu.NewOutBus(ids)}
}

func (d *driveBus) Connect(bus *caemu.Bus) { d.out.Connect(bus) }
func (d *driveBus) Eval() caemu.Delay {
	if d.driving {
		d.out.SetU16(d.value)
	} else {
		d.out.SetHigh()
	}
	return caemu.NoDelay()
}

type sampleBus struct {
	in    caemu.InBus
	value uint16
}

func newSampleBus(ids []int) *sampleBus {
	return &sampleBus{in: caemu.NewInBus(ids)}
}

func (s *sampleBus) Connect(bus *caemu.Bus) { s.in.Connect(bus) }
func (s *sampleBus) Eval() caemu.Delay {
	s.value = s.in.GetU16()
	return caemu.NoDelay()
}

type driveSingle struct {
	out   caemu.Out
	value caemu.Signal
}

func newDriveSingle(id int) *driveSingle {
	return &driveSingle{out: caemu.NewOut(id), value: caemu.HIGH}
}

func (d *driveSingle) Connect(bus *caemu.Bus) { d.out.Connect(bus) }
func (d *driveSingle) Eval() caemu.Delay {
	d.out.Set(d.value)
	return caemu.NoDelay()
}

func TestSRAMWriteRead(t *testing.T) {
	board := caemu.NewBoard()
	sram := board.Socket(28)
	addrS := board.Socket(15)
	dataDriveS := board.Socket(8)
	dataSampleS := board.Socket(8)
	ceS := board.Socket(1)
	oeS := board.Socket(1)
	weS := board.Socket(1)

	addrIDs := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	sramAddrPins := []int{10, 9, 8, 7, 6, 5, 4, 3, 25, 24, 21, 23, 2, 26, 1}
	for i := range addrIDs {
		addrS.Pin(addrIDs[i]).Connect(sram.Pin(sramAddrPins[i]))
	}
	dataIDs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	sramDataPins := []int{11, 12, 13, 15, 16, 17, 18, 19}
	for i := range dataIDs {
		dataDriveS.Pin(dataIDs[i]).Connect(sram.Pin(sramDataPins[i]))
		dataSampleS.Pin(dataIDs[i]).Connect(sram.Pin(sramDataPins[i]))
	}
	ceS.Pin(1).Connect(sram.Pin(20))
	oeS.Pin(1).Connect(sram.Pin(22))
	weS.Pin(1).Connect(sram.Pin(27))

	wired, err := board.Wire()
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}

	wired.Plug(hwlib.NewSRAM()).Into(sram)
	addr := newDriveBus(addrIDs)
	data := newDriveBus(dataIDs)
	sample := newSampleBus(dataIDs)
	ce := newDriveSingle(1)
	oe := newDriveSingle(1)
	we := newDriveSingle(1)
	wired.Plug(addr).Into(addrS)
	wired.Plug(data).Into(dataDriveS)
	wired.Plug(sample).Into(dataSampleS)
	wired.Plug(ce).Into(ceS)
	wired.Plug(oe).Into(oeS)
	wired.Plug(we).Into(weS)

	complete := wired.Complete()

	// settle address and data, then write on a we falling edge.
	addr.driving = true
	addr.value = 0x42
	data.driving = true
	data.value = 0x99
	ce.value = caemu.ZERO
	oe.value = caemu.ONE
	we.value = caemu.ONE
	complete.Eval()

	we.value = caemu.ZERO
	complete.Eval()

	// read it back: float our driver, assert oe, deassert we.
	data.driving = false
	we.value = caemu.ONE
	oe.value = caemu.ZERO
	complete.Eval()

	if got := uint8(sample.value); got != 0x99 {
		t.Errorf("read back = %#x, want 0x99", got)
	}

	// ce=1 forces the data bus HIGH at any time.
	ce.value = caemu.ONE
	complete.Eval()
	if got := uint8(sample.value); got != 0 {
		t.Errorf("data bus with ce=1 decoded to %#x, want 0 (all HIGH)", got)
	}
}

func TestEEPROMLoadAndRead(t *testing.T) {
	board := caemu.NewBoard()
	rom := board.Socket(28)
	addrS := board.Socket(15)
	dataSampleS := board.Socket(8)
	ceS := board.Socket(1)
	oeS := board.Socket(1)

	addrIDs := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	romAddrPins := []int{10, 9, 8, 7, 6, 5, 4, 3, 25, 24, 21, 23, 2, 26, 1}
	for i := range addrIDs {
		addrS.Pin(addrIDs[i]).Connect(rom.Pin(romAddrPins[i]))
	}
	dataIDs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	romDataPins := []int{11, 12, 13, 15, 16, 17, 18, 19}
	for i := range dataIDs {
		dataSampleS.Pin(dataIDs[i]).Connect(rom.Pin(romDataPins[i]))
	}
	ceS.Pin(1).Connect(rom.Pin(20))
	oeS.Pin(1).Connect(rom.Pin(22))

	wired, err := board.Wire()
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}

	eeprom := hwlib.NewEEPROM()
	eeprom.Load([]uint8{0x11, 0x22, 0x33})

	wired.Plug(eeprom).Into(rom)
	addr := newDriveBus(addrIDs)
	sample := newSampleBus(dataIDs)
	ce := newDriveSingle(1)
	oe := newDriveSingle(1)
	wired.Plug(addr).Into(addrS)
	wired.Plug(sample).Into(dataSampleS)
	wired.Plug(ce).Into(ceS)
	wired.Plug(oe).Into(oeS)

	complete := wired.Complete()

	addr.driving = true
	addr.value = 2
	ce.value = caemu.ZERO
	oe.value = caemu.ZERO
	complete.Eval()

	if got := uint8(sample.value); got != 0x33 {
		t.Errorf("EEPROM[2] = %#x, want 0x33", got)
	}

	ce.value = caemu.ONE
	complete.Eval()
	if got := uint8(sample.value); got != 0 {
		t.Errorf("data bus with ce=1 decoded to %#x, want 0 (all HIGH)", got)
	}
}
