// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tester_test

import (
	"testing"

	"github.com/wonsjb/caemu"
	"github.com/wonsjb/caemu/tester"
)

// passthrough is a trivial 2-pin device under test: it echoes its input
// pin onto its output pin with no delay.
type passthrough struct {
	a caemu.In
	y caemu.Out
}

func newPassthrough() *passthrough {
	return &passthrough{a: caemu.NewIn(1), y: caemu.NewOut(2)}
}

func (p *passthrough) Connect(bus *caemu.Bus) {
	p.a.Connect(bus)
	p.y.Connect(bus)
}

func (p *passthrough) Eval() caemu.Delay {
	p.y.Set(p.a.Get())
	return caemu.NoDelay()
}

func TestFromWiresProbesToDUT(t *testing.T) {
	tr, board, err := tester.From([]int{1}, []int{2}, newPassthrough(), 2)
	if err != nil {
		t.Fatalf("tester.From: %v", err)
	}

	tr.Test(t, board, []caemu.Signal{caemu.ONE}, []caemu.Signal{caemu.ONE})
	tr.Test(t, board, []caemu.Signal{caemu.ZERO}, []caemu.Signal{caemu.ZERO})
}

func TestTesterInputOutputAccessors(t *testing.T) {
	tr := tester.New(2, 1)
	if tr.Input(0) == nil || tr.Input(1) == nil {
		t.Fatal("Input returned nil probe")
	}
	if tr.Output(0) == nil {
		t.Fatal("Output returned nil probe")
	}

	// unconnected probes report HIGH, matching every other pin wrapper's
	// behavior before Connect is called.
	if got := tr.Output(0).Get(); got != caemu.HIGH {
		t.Fatalf("unconnected output probe = %v, want HIGH", got)
	}
}

func TestTestReportsMismatch(t *testing.T) {
	tr, board, err := tester.From([]int{1}, []int{2}, newPassthrough(), 2)
	if err != nil {
		t.Fatalf("tester.From: %v", err)
	}

	rec := &recordingTB{TB: t}
	tr.Test(rec, board, []caemu.Signal{caemu.ONE}, []caemu.Signal{caemu.ZERO})
	if !rec.errored {
		t.Fatal("expected Test to report a mismatch via Errorf")
	}
}

// recordingTB wraps a testing.TB to capture whether Errorf was called,
// without failing the outer test when the wrapped assertion fails.
type recordingTB struct {
	testing.TB
	errored bool
}

func (r *recordingTB) Errorf(format string, args ...interface{}) {
	r.errored = true
}
