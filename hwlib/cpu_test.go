// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	"github.com/wonsjb/caemu"
	"github.com/wonsjb/caemu/hwlib"
)

// TestCPU6502StubReset drives the illustrative stub's reset low for one
// evaluation, then high for five more, and only shows that each
// evaluation settles. It makes no assertion about the register file,
// which is unexported, nor about instruction semantics, since the stub
// implements none.
func TestCPU6502StubReset(t *testing.T) {
	board := caemu.NewBoard()
	cpu := board.Socket(40)
	rst := board.Socket(1)

	rst.Pin(1).Connect(cpu.Pin(40))

	wired, err := board.Wire()
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}

	wired.Plug(hwlib.NewCPU6502Stub()).Into(cpu)
	rstDrv := newDriveSingle(1)
	wired.Plug(rstDrv).Into(rst)

	complete := wired.Complete()

	rstDrv.value = caemu.ZERO
	complete.Eval()

	rstDrv.value = caemu.ONE
	for i := 0; i < 5; i++ {
		complete.Eval()
	}
}
