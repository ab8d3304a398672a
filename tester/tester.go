// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package tester provides the probe pseudo-components and harness used to
// unit-test caemu components (§4.7).
package tester

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/wonsjb/caemu"
)

// ProbeInput is a single-pin output driver: Eval stages whatever value Set
// last recorded, with no propagation delay.
//
type ProbeInput struct {
	value caemu.Signal
	out   caemu.Out
}

func newProbeInput() *ProbeInput {
	return &ProbeInput{value: caemu.HIGH, out: caemu.NewOut(1)}
}

// Set records the value ProbeInput will drive on the next Eval.
//
func (p *ProbeInput) Set(s caemu.Signal) { p.value = s }

// Connect implements caemu.Component.
//
func (p *ProbeInput) Connect(bus *caemu.Bus) { p.out.Connect(bus) }

// Eval implements caemu.Component.
//
func (p *ProbeInput) Eval() caemu.Delay {
	p.out.Set(p.value)
	return caemu.NoDelay()
}

// ProbeOutput is a single-pin input sampler: Eval latches the net's
// current value into an internal field, with no propagation delay.
//
type ProbeOutput struct {
	value caemu.Signal
	in    caemu.In
}

func newProbeOutput() *ProbeOutput {
	return &ProbeOutput{value: caemu.HIGH, in: caemu.NewIn(1)}
}

// Get returns the last value latched by Eval.
//
func (p *ProbeOutput) Get() caemu.Signal { return p.value }

// Connect implements caemu.Component.
//
func (p *ProbeOutput) Connect(bus *caemu.Bus) { p.in.Connect(bus) }

// Eval implements caemu.Component.
//
func (p *ProbeOutput) Eval() caemu.Delay {
	p.value = p.in.Get()
	return caemu.NoDelay()
}

// Tester is a harness that wires probe components to a device under test
// and drives test cases against it.
//
type Tester struct {
	inputs  []*ProbeInput
	outputs []*ProbeOutput
}

// New returns a Tester with inCount free-standing input probes and
// outCount free-standing output probes, not yet wired to any board. Use
// Input/Output to retrieve the probes for manual wiring, or see From for
// the common single-DUT case.
//
func New(inCount, outCount int) *Tester {
	t := &Tester{
		inputs:  make([]*ProbeInput, inCount),
		outputs: make([]*ProbeOutput, outCount),
	}
	for i := range t.inputs {
		t.inputs[i] = newProbeInput()
	}
	for i := range t.outputs {
		t.outputs[i] = newProbeOutput()
	}
	return t
}

// From builds a complete board wiring a single device under test (dutSize
// pins) to one probe per listed input/output pin (1-based, datasheet
// numbering) and returns the ready Tester and CompleteBoard.
//
func From(inPins, outPins []int, dut caemu.Component, dutSize int) (*Tester, *caemu.CompleteBoard, error) {
	board := caemu.NewBoard()
	dutSocket := board.Socket(dutSize)

	t := New(len(inPins), len(outPins))

	inSockets := make([]*caemu.Socket, len(inPins))
	for i, pin := range inPins {
		s := board.Socket(1)
		s.Pin(1).Connect(dutSocket.Pin(pin))
		inSockets[i] = s
	}

	outSockets := make([]*caemu.Socket, len(outPins))
	for i, pin := range outPins {
		s := board.Socket(1)
		s.Pin(1).Connect(dutSocket.Pin(pin))
		outSockets[i] = s
	}

	wired, err := board.Wire()
	if err != nil {
		return nil, nil, errors.Wrap(err, "tester.From")
	}

	wired.Plug(dut).Into(dutSocket)
	for i, s := range inSockets {
		wired.Plug(t.inputs[i]).Into(s)
	}
	for i, s := range outSockets {
		wired.Plug(t.outputs[i]).Into(s)
	}

	return t, wired.Complete(), nil
}

// Input returns the i-th input probe.
//
func (t *Tester) Input(i int) *ProbeInput { return t.inputs[i] }

// Output returns the i-th output probe.
//
func (t *Tester) Output(i int) *ProbeOutput { return t.outputs[i] }

// Test sets every input probe, runs one board.Eval(), and asserts each
// output probe matches the expected value, reporting any mismatch via tb.
//
func (t *Tester) Test(tb testing.TB, board *caemu.CompleteBoard, inputs, outputs []caemu.Signal) {
	tb.Helper()
	if len(inputs) != len(t.inputs) {
		tb.Fatalf("tester: got %d inputs, want %d", len(inputs), len(t.inputs))
	}
	if len(outputs) != len(t.outputs) {
		tb.Fatalf("tester: got %d expected outputs, want %d", len(outputs), len(t.outputs))
	}

	for i, s := range inputs {
		t.inputs[i].Set(s)
	}

	board.Eval()

	for i, want := range outputs {
		if got := t.outputs[i].Get(); got != want {
			tb.Errorf("output %d = %v, want %v", i, got, want)
		}
	}
}
