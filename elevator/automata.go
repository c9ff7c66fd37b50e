package elevator

// The plant automata. Each is a total, deterministic next-state function;
// all decision making lives in the fsm package.

// ButtonNext advances one call button. A reset wins over everything else;
// an unpressed button latches when the environment raises a new request.
func ButtonNext(pressed, reset, newRequest bool) bool {
	return !reset && (pressed || newRequest)
}

// CabinNext advances the cabin one floor in the commanded direction,
// clamped to the shaft. The controller never commands up at the top floor
// or down at the bottom; the clamp keeps the function total regardless.
func CabinNext(floor int, d Dirn, numFloors int) int {
	switch d {
	case DirnUp:
		if floor < numFloors-1 {
			return floor + 1
		}
	case DirnDown:
		if floor > 0 {
			return floor - 1
		}
	}
	return floor
}

// DoorNext advances the door. It accepts any command; the open-only-when-
// closed discipline is the controller's obligation.
func DoorNext(status DoorStatus, cmd DoorCmd) DoorStatus {
	switch cmd {
	case DoorOpenCmd:
		return DoorOpen
	case DoorCloseCmd:
		return DoorClosed
	default:
		return status
	}
}
