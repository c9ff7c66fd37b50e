package check

import (
	"strings"
	"testing"

	"heissim/elevator"
	"heissim/fsm"
)

func cleanOutputs(n int) fsm.Outputs {
	return fsm.Outputs{Dirn: elevator.DirnStop, Door: elevator.DoorNop, Reset: make([]bool, n)}
}

func TestCheckTransitionClean(t *testing.T) {
	prev := elevator.NewSnapshot(3, 1)
	next := prev.Clone()
	if v := CheckTransition(prev, cleanOutputs(3), next); len(v) != 0 {
		t.Errorf("clean idle transition flagged: %v", v)
	}
}

func TestCheckTransitionCatchesViolations(t *testing.T) {
	base := elevator.NewSnapshot(3, 1)

	cases := []struct {
		name string
		prev elevator.Snapshot
		out  func(fsm.Outputs) fsm.Outputs
		next func(elevator.Snapshot) elevator.Snapshot
		want string
	}{
		{
			name: "reset of unpressed button",
			prev: base,
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Reset[0] = true
				return o
			},
			want: "reset of unpressed",
		},
		{
			name: "up at top floor",
			prev: withFloor(base, 2, 2),
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Dirn = elevator.DirnUp
				return o
			},
			want: "top floor",
		},
		{
			name: "down at bottom floor",
			prev: withFloor(base, 0, 2),
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Dirn = elevator.DirnDown
				return o
			},
			want: "bottom floor",
		},
		{
			name: "open command with open door",
			prev: withOpenDoor(withFloor(base, 1, 1)),
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Door = elevator.DoorOpenCmd
				return o
			},
			want: "open command",
		},
		{
			name: "close command with closed door",
			prev: withFloor(base, 1, 2),
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Door = elevator.DoorCloseCmd
				return o
			},
			want: "close command",
		},
		{
			name: "moving with door open",
			prev: withOpenDoor(withFloor(base, 1, 2)),
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Dirn = elevator.DirnUp
				return o
			},
			want: "door open",
		},
		{
			name: "activity while idle",
			prev: base,
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Dirn = elevator.DirnUp
				return o
			},
			want: "no pending requests",
		},
		{
			name: "service withheld",
			prev: withOpenDoor(withFloor(base, 1, 1)),
			want: "service withheld",
		},
		{
			name: "close on obstruction",
			prev: withSensor(withOpenDoor(withFloor(base, 1, 2))),
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Door = elevator.DoorCloseCmd
				return o
			},
			want: "obstruction",
		},
		{
			name: "moving during quake",
			prev: withQuake(withFloor(base, 1, 2)),
			out: func(o fsm.Outputs) fsm.Outputs {
				o.Dirn = elevator.DirnUp
				return o
			},
			want: "during earthquake",
		},
		{
			name: "door stays closed during quake",
			prev: withQuake(base),
			want: "door not opening",
		},
		{
			name: "floor jump",
			prev: base,
			next: func(n elevator.Snapshot) elevator.Snapshot {
				n.Floor = 3
				return n
			},
			want: "cabin",
		},
		{
			name: "sensor with closed door",
			prev: base,
			next: func(n elevator.Snapshot) elevator.Snapshot {
				n.Sensor = true
				return n
			},
			want: "sensor asserted",
		},
	}

	for _, c := range cases {
		out := cleanOutputs(3)
		if c.out != nil {
			out = c.out(out)
		}
		next := c.prev.Clone()
		if c.next != nil {
			next = c.next(next)
		}
		viols := CheckTransition(c.prev, out, next)
		found := false
		for _, v := range viols {
			if strings.Contains(v, c.want) {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: violations %v do not mention %q", c.name, viols, c.want)
		}
	}
}

func withFloor(s elevator.Snapshot, floor int, pressed int) elevator.Snapshot {
	c := s.Clone()
	c.Floor = floor
	c.Pressed[pressed] = true
	return c
}

func withOpenDoor(s elevator.Snapshot) elevator.Snapshot {
	c := s.Clone()
	c.Door = elevator.DoorOpen
	return c
}

func withSensor(s elevator.Snapshot) elevator.Snapshot {
	c := s.Clone()
	c.Sensor = true
	return c
}

func withQuake(s elevator.Snapshot) elevator.Snapshot {
	c := s.Clone()
	c.Quake = true
	return c
}
