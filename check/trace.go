package check

import (
	"fmt"
	"strings"

	"heissim/elevator"
)

// Trace is a counterexample witness: a sequence of snapshots from the
// initial state. For a liveness violation LoopStart marks where the
// infinitely repeated suffix begins; for a safety violation it is -1 and
// the trace is plain finite.
type Trace struct {
	Steps     []elevator.Snapshot
	LoopStart int
}

// String renders the trace with only the fields that changed since the
// previous snapshot, in the style of a model checker witness.
func (t Trace) String() string {
	var b strings.Builder
	for i, s := range t.Steps {
		if i == t.LoopStart {
			b.WriteString("-- loop starts here\n")
		}
		fmt.Fprintf(&b, "-- state %d\n", i+1)
		if i == 0 {
			writeFull(&b, s)
			continue
		}
		writeDelta(&b, t.Steps[i-1], s)
	}
	return b.String()
}

func writeFull(b *strings.Builder, s elevator.Snapshot) {
	fmt.Fprintf(b, "  floor = %d\n", s.Floor)
	fmt.Fprintf(b, "  dirn = %s\n", s.Dirn)
	fmt.Fprintf(b, "  door = %s\n", s.Door)
	fmt.Fprintf(b, "  pressed = %v\n", s.Pressed)
	fmt.Fprintf(b, "  lastDir = %s\n", s.LastDir)
	fmt.Fprintf(b, "  quake = %v\n", s.Quake)
	fmt.Fprintf(b, "  sensor = %v\n", s.Sensor)
}

func writeDelta(b *strings.Builder, prev, s elevator.Snapshot) {
	if s.Floor != prev.Floor {
		fmt.Fprintf(b, "  floor = %d\n", s.Floor)
	}
	if s.Dirn != prev.Dirn {
		fmt.Fprintf(b, "  dirn = %s\n", s.Dirn)
	}
	if s.Door != prev.Door {
		fmt.Fprintf(b, "  door = %s\n", s.Door)
	}
	if !equalBools(s.Pressed, prev.Pressed) {
		fmt.Fprintf(b, "  pressed = %v\n", s.Pressed)
	}
	if s.LastDir != prev.LastDir {
		fmt.Fprintf(b, "  lastDir = %s\n", s.LastDir)
	}
	if s.Quake != prev.Quake {
		fmt.Fprintf(b, "  quake = %v\n", s.Quake)
	}
	if s.Sensor != prev.Sensor {
		fmt.Fprintf(b, "  sensor = %v\n", s.Sensor)
	}
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
