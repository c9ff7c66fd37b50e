package check

import (
	"fmt"

	"heissim/elevator"
	"heissim/fsm"
)

// CheckTransition evaluates every single-step safety property over one
// transition: the snapshot the controller saw, the commands it issued,
// and the snapshot the plant produced. It returns one message per
// violated property, empty when the transition is clean.
func CheckTransition(prev elevator.Snapshot, out fsm.Outputs, next elevator.Snapshot) []string {
	var v []string
	top := len(prev.Pressed) - 1

	for f, r := range out.Reset {
		if r && !prev.Pressed[f] && !prev.Quake {
			v = append(v, fmt.Sprintf("reset of unpressed button %d", f))
		}
	}
	if out.Dirn == elevator.DirnUp && prev.Floor == top {
		v = append(v, "up commanded at top floor")
	}
	if out.Dirn == elevator.DirnDown && prev.Floor == 0 {
		v = append(v, "down commanded at bottom floor")
	}
	if out.Door == elevator.DoorOpenCmd && prev.Door != elevator.DoorClosed {
		v = append(v, "open command with door not closed")
	}
	if out.Door == elevator.DoorCloseCmd && prev.Door != elevator.DoorOpen {
		v = append(v, "close command with door not open")
	}
	if out.Dirn != elevator.DirnStop && prev.Door == elevator.DoorOpen {
		v = append(v, "cabin commanded to move with door open")
	}
	if !prev.AnyPressed() && !prev.Quake &&
		(out.Dirn != elevator.DirnStop || out.Door != elevator.DoorNop) {
		v = append(v, "activity with no pending requests")
	}
	for f := range prev.Pressed {
		if prev.Pressed[f] && prev.Floor == f && prev.Door == elevator.DoorOpen &&
			!prev.Sensor && !out.Reset[f] {
			v = append(v, fmt.Sprintf("service withheld at floor %d", f))
		}
	}
	if prev.Sensor && out.Door == elevator.DoorCloseCmd {
		v = append(v, "close command while obstruction sensed")
	}
	if prev.Quake && out.Dirn != elevator.DirnStop {
		v = append(v, "cabin commanded to move during earthquake")
	}
	if prev.Quake && prev.Door == elevator.DoorClosed && out.Door != elevator.DoorOpenCmd {
		v = append(v, "door not opening during earthquake")
	}
	if d := next.Floor - prev.Floor; d < -1 || d > 1 {
		v = append(v, "cabin moved more than one floor")
	}
	if next.Floor < 0 || next.Floor > top {
		v = append(v, "cabin left the shaft")
	}
	if next.Sensor && next.Door != elevator.DoorOpen {
		v = append(v, "sensor asserted with door closed")
	}
	return v
}
