package elevator

import (
	"strconv"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// Snapshot is the full system state at one tick: the plant (floor, door,
// buttons), the controller memory (LastDir) and the fault flags. A tick
// maps one snapshot to the next; nothing else is stateful.
type Snapshot struct {
	Floor   int
	Dirn    Dirn
	Door    DoorStatus
	Pressed []bool
	LastDir Dirn
	Quake   bool
	Sensor  bool
}

// NewSnapshot is the initial state: parked at startFloor with the door
// closed, no requests, and LastDir defaulting to up.
func NewSnapshot(numFloors, startFloor int) Snapshot {
	return Snapshot{
		Floor:   startFloor,
		Dirn:    DirnStop,
		Door:    DoorClosed,
		Pressed: make([]bool, numFloors),
		LastDir: DirnUp,
	}
}

func (s Snapshot) Clone() Snapshot {
	var c Snapshot
	if err := deepcopy.Copy(&c, &s); err != nil {
		panic("failed to deepcopy snapshot")
	}
	return c
}

func (s Snapshot) AnyPressed() bool {
	for _, p := range s.Pressed {
		if p {
			return true
		}
	}
	return false
}

// Key encodes the snapshot as a compact comparable string, used by the
// checker to index visited states.
func (s Snapshot) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.Floor))
	b.WriteByte(dirnByte(s.Dirn))
	if s.Door == DoorOpen {
		b.WriteByte('O')
	} else {
		b.WriteByte('C')
	}
	for _, p := range s.Pressed {
		b.WriteByte(boolByte(p))
	}
	b.WriteByte(dirnByte(s.LastDir))
	b.WriteByte(boolByte(s.Quake))
	b.WriteByte(boolByte(s.Sensor))
	return b.String()
}

func dirnByte(d Dirn) byte {
	switch d {
	case DirnUp:
		return 'u'
	case DirnDown:
		return 'd'
	default:
		return 's'
	}
}

func boolByte(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}
