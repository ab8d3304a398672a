// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package caemu provides a discrete-event simulator for digital circuits at
the gate-and-chip level.

A board is a collection of sockets whose pins are wired together during an
open phase; wiring the board collapses those connections into electrical
nets. Component models are then plugged into sockets during a wired phase,
each binding to a private Bus view of its pins. Completing the board starts
a VCD trace and allows simulated time to advance: every call to Eval runs
the scheduler to quiescence, propagating signal changes through the net
graph in picosecond-delay order.

The sub-package hwlib provides a small library of illustrative chips (gates,
a latch, a decoder, memory, a terminal). The sub-package tester provides the
probe components and harness used to unit-test them.
*/
package caemu
