// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Board is the open-phase handle (§4.3): sockets are reserved and pins
// wired together, but nothing is plugged yet. Once Wire is called no more
// connections may be added.
//
type Board struct {
	pinCount    int
	connections []connection
	names       map[int]string
}

// NewBoard returns a new, empty board in the open phase.
//
func NewBoard() *Board {
	return &Board{names: make(map[int]string)}
}

// Socket reserves size consecutive pin IDs on the board and returns a
// handle to them.
//
func (b *Board) Socket(size int) *Socket {
	s := &Socket{board: b, offset: b.pinCount, size: size}
	b.pinCount += size
	return s
}

// A Socket is a reservation on the board for a component of a fixed pin
// count.
//
type Socket struct {
	board  *Board
	offset int
	size   int
}

// Size returns the number of pins reserved by this socket.
//
func (s *Socket) Size() int { return s.size }

// Pin returns the board-scoped handle for the k-th pin of this socket.
// k is 1-based, matching datasheet pinouts (§4.3).
//
func (s *Socket) Pin(k int) Pin {
	return Pin{board: s.board, id: s.offset + k - 1}
}

// Pins returns a PinGroup over the listed 1-based pin numbers, for
// ganged connections.
//
func (s *Socket) Pins(ks ...int) PinGroup {
	ids := make([]int, len(ks))
	for i, k := range ks {
		ids[i] = s.offset + k - 1
	}
	return PinGroup{board: s.board, ids: ids}
}

// A Pin is a board-scoped pin identifier.
//
type Pin struct {
	board *Board
	id    int
}

// Connect records an undirected edge between p and o. Only valid during
// the open phase.
//
func (p Pin) Connect(o Pin) {
	p.board.connections = append(p.board.connections, connection{p.id, o.id})
}

// Name attaches a display name to p's eventual net, used by the VCD
// logger. Naming the same pin again replaces its name. If several
// different pins on the same net are named, one of those names is used;
// which one is not defined.
//
func (p Pin) Name(name string) {
	p.board.names[p.id] = name
}

// A PinGroup is a same-board-scoped connector over several pins at once,
// for ganging bus connections in one call.
//
type PinGroup struct {
	board *Board
	ids   []int
}

// Connect pairs up g and o pin-by-pin (in listed order) and records an
// edge for each pair, up to the shorter of the two groups' lengths. It
// returns g to allow chaining several Connect calls from one group.
//
func (g PinGroup) Connect(o PinGroup) PinGroup {
	n := len(g.ids)
	if len(o.ids) < n {
		n = len(o.ids)
	}
	for i := 0; i < n; i++ {
		g.board.connections = append(g.board.connections, connection{g.ids[i], o.ids[i]})
	}
	return g
}

// Wire resolves the recorded connections into electrical nets (§4.1) and
// returns a WiredBoard. The Board must not be used afterwards.
//
func (b *Board) Wire() (*WiredBoard, error) {
	pinToNet, netCount, err := buildNets(b.pinCount, b.connections)
	if err != nil {
		return nil, errors.Wrap(err, "wire")
	}
	netNames := make(map[int]string, len(b.names))
	for pin, name := range b.names {
		netNames[pinToNet[pin]] = name
	}
	return &WiredBoard{
		pinToNet: pinToNet,
		netCount: netCount,
		store:    newNetStore(netCount),
		netNames: netNames,
	}, nil
}

// boundComponent pairs a plugged Component with the Bus it was given.
//
type boundComponent struct {
	component Component
	bus       *Bus
}

// WiredBoard is the wired-phase handle (§4.3): nets exist, components may
// be plugged into sockets.
//
type WiredBoard struct {
	pinToNet   []int
	netCount   int
	store      *netStore
	netNames   map[int]string
	components []boundComponent
}

// Plug begins binding c to a socket; call Into on the result to finish.
//
func (w *WiredBoard) Plug(c Component) Placement {
	return Placement{board: w, component: c}
}

// A Placement is a component awaiting assignment to a socket.
//
type Placement struct {
	board     *WiredBoard
	component Component
}

// Into binds the placement's component to socket s: it constructs the
// component's Bus (mapping each local pin to its net), calls the
// component's Connect(bus) hookup, and-if the component implements
// Namer-fills in any net names not already set explicitly via Pin.Name.
//
func (p Placement) Into(s *Socket) {
	w := p.board
	ids := make([]int, s.size)
	for i := 0; i < s.size; i++ {
		ids[i] = w.pinToNet[s.offset+i]
	}
	bus := newBus(ids, w.store)
	p.component.Connect(bus)
	w.components = append(w.components, boundComponent{component: p.component, bus: bus})

	if namer, ok := p.component.(Namer); ok {
		for i := 0; i < s.size; i++ {
			net := ids[i]
			if _, named := w.netNames[net]; named {
				continue
			}
			if name := namer.PinName(i + 1); name != "" {
				w.netNames[net] = name
			}
		}
	}
}

// Complete ends the wired phase (§4.3), initializing the VCD logger to
// write to os.Stdout. No further components may be plugged.
//
func (w *WiredBoard) Complete() *CompleteBoard {
	return w.CompleteTo(os.Stdout)
}

// CompleteTo is like Complete but writes the VCD trace to sink instead of
// standard output (spec §9 open question (b)).
//
func (w *WiredBoard) CompleteTo(sink io.Writer) *CompleteBoard {
	return &CompleteBoard{
		components: w.components,
		store:      w.store,
		logger:     newLogger(sink, w.netCount, w.netNames),
	}
}
