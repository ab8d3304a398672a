// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

// A Delay is a non-negative picosecond count. It is used both as a
// component's propagation delay and as an absolute point in simulated
// time; the two share a representation since the scheduler only ever adds
// delays to a current time.
//
type Delay uint64

// NoDelay returns a zero delay.
//
func NoDelay() Delay { return 0 }

// FromPicos returns a Delay of n picoseconds.
//
func FromPicos(n uint64) Delay { return Delay(n) }

// FromNanos returns a Delay of n nanoseconds.
//
func FromNanos(n uint64) Delay { return Delay(n * 1_000) }

// FromMicros returns a Delay of n microseconds.
//
func FromMicros(n uint64) Delay { return Delay(n * 1_000_000) }

// FromMillis returns a Delay of n milliseconds.
//
func FromMillis(n uint64) Delay { return Delay(n * 1_000_000_000) }

// FromSeconds returns a Delay of n seconds.
//
func FromSeconds(n uint64) Delay { return Delay(n * 1_000_000_000_000) }

// Plus returns d+o.
//
func (d Delay) Plus(o Delay) Delay { return d + o }

// Picoseconds returns d as a raw picosecond count.
//
func (d Delay) Picoseconds() uint64 { return uint64(d) }
