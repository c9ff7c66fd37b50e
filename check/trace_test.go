package check

import (
	"strings"
	"testing"

	"heissim/elevator"
)

func TestTraceDeltaEncoding(t *testing.T) {
	a := elevator.NewSnapshot(3, 0)
	b := a.Clone()
	b.Floor = 1
	b.Dirn = elevator.DirnUp

	out := Trace{Steps: []elevator.Snapshot{a, b}, LoopStart: -1}.String()

	if !strings.Contains(out, "-- state 1") || !strings.Contains(out, "-- state 2") {
		t.Fatalf("missing state headers:\n%s", out)
	}
	if strings.Contains(out, "-- loop starts here") {
		t.Errorf("finite trace rendered a loop marker:\n%s", out)
	}

	// the second state lists only what changed
	second := out[strings.Index(out, "-- state 2"):]
	if !strings.Contains(second, "floor = 1") || !strings.Contains(second, "dirn = up") {
		t.Errorf("changed fields missing from delta:\n%s", second)
	}
	if strings.Contains(second, "door") || strings.Contains(second, "pressed") {
		t.Errorf("unchanged fields leaked into delta:\n%s", second)
	}
}

func TestTraceLoopMarkerPosition(t *testing.T) {
	a := elevator.NewSnapshot(3, 0)
	b := a.Clone()
	b.Pressed[1] = true

	out := Trace{Steps: []elevator.Snapshot{a, b}, LoopStart: 1}.String()

	markerAt := strings.Index(out, "-- loop starts here")
	stateAt := strings.Index(out, "-- state 2")
	if markerAt == -1 {
		t.Fatalf("no loop marker:\n%s", out)
	}
	if markerAt > stateAt {
		t.Errorf("loop marker after the looping state:\n%s", out)
	}
}
