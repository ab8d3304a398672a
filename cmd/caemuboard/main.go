// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command caemuboard assembles a small demonstration board-a double
// inverted NAND, a 1-of-8 decoder, an SRAM and a terminal-wires it up and
// runs it forward in time, streaming the resulting VCD trace to standard
// output.
package main

import (
	"fmt"
	"os"

	"github.com/wonsjb/caemu"
	"github.com/wonsjb/caemu/hwlib"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "caemuboard:", err)
		os.Exit(1)
	}
}

func run() error {
	board := caemu.NewBoard()

	nand := board.Socket(14)
	not1 := board.Socket(14)
	not2 := board.Socket(14)
	dec := board.Socket(16)
	sram := board.Socket(28)
	term := board.Socket(10)

	a := board.Socket(1)
	b := board.Socket(1)
	out := board.Socket(1)

	a.Pin(1).Name("a_in")
	b.Pin(1).Name("b_in")
	out.Pin(1).Name("y_out")

	a.Pin(1).Connect(nand.Pin(1))
	a.Pin(1).Connect(nand.Pin(4))
	b.Pin(1).Connect(nand.Pin(2))
	b.Pin(1).Connect(nand.Pin(5))

	nand.Pin(3).Connect(not1.Pin(1))
	not1.Pin(2).Connect(not2.Pin(1))
	not2.Pin(2).Connect(out.Pin(1))

	dec.Pins(1, 2, 3).Connect(board.Socket(3).Pins(1, 2, 3))
	dec.Pin(5).Name("dec_e1")

	sram.Pins(11, 12, 13, 15, 16, 17, 18, 19).Connect(term.Pins(1, 2, 3, 4, 5, 6, 7, 8))

	wired, err := board.Wire()
	if err != nil {
		return err
	}

	wired.Plug(hwlib.NewNand74x00()).Into(nand)
	wired.Plug(hwlib.NewNot74x04()).Into(not1)
	wired.Plug(hwlib.NewNot74x04()).Into(not2)
	wired.Plug(hwlib.NewDecoder138()).Into(dec)
	wired.Plug(hwlib.NewSRAM()).Into(sram)
	wired.Plug(hwlib.NewTerminal()).Into(term)

	complete := wired.Complete()

	for t := uint64(0); t < 10; t++ {
		complete.MoveTime(caemu.FromMicros(t))
		complete.Eval()
	}

	return nil
}
