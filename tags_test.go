// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu_test

import (
	"testing"

	"github.com/wonsjb/caemu"
)

type taggedPassthrough struct {
	A caemu.In  `caemu:"1"`
	Y caemu.Out `caemu:"2"`
}

func (p *taggedPassthrough) Connect(bus *caemu.Bus) { caemu.ConnectTags(p, bus) }

func (p *taggedPassthrough) Eval() caemu.Delay {
	p.Y.Set(p.A.Get())
	return caemu.NoDelay()
}

func TestBindTagsSinglePin(t *testing.T) {
	p := &taggedPassthrough{}
	caemu.BindTags(p)

	board := caemu.NewBoard()
	s := board.Socket(2)
	in := board.Socket(1)
	out := board.Socket(1)
	in.Pin(1).Connect(s.Pin(1))
	s.Pin(2).Connect(out.Pin(1))

	wired, err := board.Wire()
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}
	wired.Plug(p).Into(s)
	pa := newProbe()
	po := newSampler()
	wired.Plug(pa).Into(in)
	wired.Plug(po).Into(out)

	complete := wired.Complete()

	pa.Set(caemu.ONE)
	complete.Eval()
	if got := po.Get(); got != caemu.ONE {
		t.Errorf("Y = %v, want ONE", got)
	}
}

type taggedQuad struct {
	A caemu.InBus  `caemu:"1,2,3,4"`
	Y caemu.OutBus `caemu:"5,6,7,8"`
}

func (p *taggedQuad) Connect(bus *caemu.Bus) { caemu.ConnectTags(p, bus) }

func (p *taggedQuad) Eval() caemu.Delay {
	p.Y.SetU8(p.A.GetU8())
	return caemu.NoDelay()
}

func TestBindTagsSizesBusFields(t *testing.T) {
	p := &taggedQuad{}
	caemu.BindTags(p)

	if len(p.A) != 4 || len(p.Y) != 4 {
		t.Fatalf("BindTags did not size bus fields: len(A)=%d len(Y)=%d", len(p.A), len(p.Y))
	}
}

func TestBindTagsRejectsNonPointer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected BindTags to panic on a non-pointer argument")
		}
	}()
	caemu.BindTags(taggedPassthrough{})
}

type taggedBadField struct {
	A int `caemu:"1"`
}

func TestBindTagsRejectsUnsupportedFieldType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected BindTags to panic on an unsupported tagged field type")
		}
	}()
	caemu.BindTags(&taggedBadField{})
}
