// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

import (
	"fmt"
	"io"
	"time"
)

// Logger emits a VCD-format trace of every net transition (§4.6).
//
type Logger struct {
	w        io.Writer
	previous []Signal
}

func newLogger(w io.Writer, netCount int, names map[int]string) *Logger {
	fmt.Fprintf(w, "$date %s $end\n", time.Now().Format(time.RFC1123))
	fmt.Fprintf(w, "$version caemu $end\n")
	fmt.Fprintf(w, "$comment\n   caemu simulation trace\n$end\n")
	fmt.Fprintf(w, "$timescale 1 ps $end\n")
	fmt.Fprintf(w, "$scope module caemu $end\n")

	previous := make([]Signal, netCount)
	for i := 0; i < netCount; i++ {
		name, ok := names[i]
		if !ok {
			name = fmt.Sprintf("B%d", i)
		}
		fmt.Fprintf(w, "$var wire 1 B%d %s $end\n", i, name)
		previous[i] = HIGH
	}

	fmt.Fprintf(w, "$upscope $end\n")
	fmt.Fprintf(w, "$enddefinitions $end\n")

	return &Logger{w: w, previous: previous}
}

// Log emits one sub-step of transitions for the given net snapshot at
// simulated time t: a single "#<t>" token followed by "<v>B<i>" tokens for
// every net whose value changed since the last Log call, but only if at
// least one net changed.
//
func (l *Logger) Log(signals []Signal, t Delay) {
	started := false
	for i, s := range signals {
		if s == l.previous[i] {
			continue
		}
		if !started {
			fmt.Fprintf(l.w, "#%d", t.Picoseconds())
			started = true
		}
		fmt.Fprintf(l.w, " %sB%d", s, i)
		l.previous[i] = s
	}
	if started {
		fmt.Fprintln(l.w)
	}
}
