package elevator

// Dirn is the commanded motor direction.
type Dirn int

const (
	DirnDown Dirn = -1
	DirnStop Dirn = 0
	DirnUp   Dirn = 1
)

func (d Dirn) String() string {
	switch d {
	case DirnUp:
		return "up"
	case DirnDown:
		return "down"
	case DirnStop:
		return "stop"
	default:
		return "unknown"
	}
}

// DoorStatus is the sensed door position.
type DoorStatus int

const (
	DoorClosed DoorStatus = iota
	DoorOpen
)

func (s DoorStatus) String() string {
	if s == DoorOpen {
		return "open"
	}
	return "closed"
}

// DoorCmd is the command issued to the door automaton each tick. The
// controller only issues DoorOpenCmd while the door is closed and
// DoorCloseCmd while it is open.
type DoorCmd int

const (
	DoorNop DoorCmd = iota
	DoorOpenCmd
	DoorCloseCmd
)

func (c DoorCmd) String() string {
	switch c {
	case DoorOpenCmd:
		return "open"
	case DoorCloseCmd:
		return "close"
	default:
		return "nop"
	}
}
