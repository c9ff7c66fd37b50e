package fault

import (
	"fmt"

	"heissim/elevator"
)

// Choice is the fault-related nondeterminism the environment supplies for
// one tick. Which bits are meaningful depends on the active policy.
type Choice struct {
	QuakeStart bool
	Repair     bool
	Sensor     bool
}

// Policy plugs a fault extension into the controller. The basic,
// earthquake and sensor variants share one controller core and differ
// only through this interface.
type Policy interface {
	Name() string

	// ForceStop holds the cabin still while the fault demands it.
	ForceStop(s elevator.Snapshot) bool
	// DoorOverride, when it reports true, replaces the normal door
	// decision entirely.
	DoorOverride(s elevator.Snapshot) (elevator.DoorCmd, bool)
	// BlockClose vetoes a close command the controller would otherwise
	// issue.
	BlockClose(s elevator.Snapshot) bool
	// ForceReset resets every button regardless of the service condition.
	ForceReset(s elevator.Snapshot) bool
	// BlockReset suppresses the normal per-floor reset condition.
	BlockReset(s elevator.Snapshot) bool

	// Advance writes the next-tick fault flags into next, given the
	// current snapshot and the environment's choice. Illegal choices
	// (repair without an open door, sensor through a closed door) are
	// ignored here rather than rejected.
	Advance(cur elevator.Snapshot, c Choice, next *elevator.Snapshot)

	// Choices enumerates every legal fault choice from the given
	// snapshot, for exhaustive exploration.
	Choices(s elevator.Snapshot) []Choice
}

// FromName maps a variant name from the configuration to its policy.
func FromName(name string) (Policy, error) {
	switch name {
	case "basic":
		return None{}, nil
	case "earthquake":
		return Earthquake{}, nil
	case "sensor":
		return Sensor{}, nil
	default:
		return nil, fmt.Errorf("unknown fault variant %q", name)
	}
}

// None is the fault-free variant.
type None struct{}

func (None) Name() string                           { return "basic" }
func (None) ForceStop(elevator.Snapshot) bool       { return false }
func (None) BlockClose(elevator.Snapshot) bool      { return false }
func (None) ForceReset(elevator.Snapshot) bool      { return false }
func (None) BlockReset(elevator.Snapshot) bool      { return false }
func (None) DoorOverride(elevator.Snapshot) (elevator.DoorCmd, bool) {
	return elevator.DoorNop, false
}
func (None) Advance(elevator.Snapshot, Choice, *elevator.Snapshot) {}
func (None) Choices(elevator.Snapshot) []Choice                    { return []Choice{{}} }

// Earthquake models the quake/repair fault. A quake may start at any
// tick and persists until a repair, which is only possible while the
// door stands open. While active the cabin is held still, the door is
// forced open and every button reads as reset, so no request survives
// the fault.
type Earthquake struct{}

func (Earthquake) Name() string { return "earthquake" }

func (Earthquake) ForceStop(s elevator.Snapshot) bool { return s.Quake }

func (Earthquake) DoorOverride(s elevator.Snapshot) (elevator.DoorCmd, bool) {
	if !s.Quake {
		return elevator.DoorNop, false
	}
	if s.Door == elevator.DoorClosed {
		return elevator.DoorOpenCmd, true
	}
	return elevator.DoorNop, true
}

func (Earthquake) BlockClose(elevator.Snapshot) bool   { return false }
func (Earthquake) ForceReset(s elevator.Snapshot) bool { return s.Quake }
func (Earthquake) BlockReset(elevator.Snapshot) bool   { return false }

// RepairPossible reports whether a repair choice is legal right now.
func (Earthquake) RepairPossible(s elevator.Snapshot) bool {
	return s.Quake && s.Door == elevator.DoorOpen
}

func (e Earthquake) Advance(cur elevator.Snapshot, c Choice, next *elevator.Snapshot) {
	if cur.Quake {
		next.Quake = !(c.Repair && e.RepairPossible(cur))
	} else {
		next.Quake = c.QuakeStart
	}
}

func (e Earthquake) Choices(s elevator.Snapshot) []Choice {
	if !s.Quake {
		return []Choice{{}, {QuakeStart: true}}
	}
	if e.RepairPossible(s) {
		return []Choice{{}, {Repair: true}}
	}
	return []Choice{{}}
}

// Sensor models a nondeterministic door presence sensor. It can only
// read an obstruction through an open door; while asserted it vetoes
// both closing the door and resetting the local button.
type Sensor struct{}

func (Sensor) Name() string { return "sensor" }

func (Sensor) ForceStop(elevator.Snapshot) bool { return false }
func (Sensor) DoorOverride(elevator.Snapshot) (elevator.DoorCmd, bool) {
	return elevator.DoorNop, false
}
func (Sensor) BlockClose(s elevator.Snapshot) bool { return s.Sensor }
func (Sensor) ForceReset(elevator.Snapshot) bool   { return false }
func (Sensor) BlockReset(s elevator.Snapshot) bool { return s.Sensor }

func (Sensor) Advance(cur elevator.Snapshot, c Choice, next *elevator.Snapshot) {
	next.Sensor = c.Sensor && next.Door == elevator.DoorOpen
}

func (Sensor) Choices(s elevator.Snapshot) []Choice {
	return []Choice{{}, {Sensor: true}}
}
