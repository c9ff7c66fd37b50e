package requests

import "heissim/elevator"

// Pending-request predicates over the current snapshot. Recomputed every
// tick, never cached.

func Above(s elevator.Snapshot) bool {
	for f := s.Floor + 1; f < len(s.Pressed); f++ {
		if s.Pressed[f] {
			return true
		}
	}
	return false
}

func Below(s elevator.Snapshot) bool {
	for f := 0; f < s.Floor; f++ {
		if s.Pressed[f] {
			return true
		}
	}
	return false
}

func Here(s elevator.Snapshot) bool {
	return s.Pressed[s.Floor]
}

// ChooseDirn picks the travel direction from the pending requests. A
// request at the current floor is served before anything else. With
// requests on both sides the cabin keeps its current direction, or falls
// back on LastDir when standing still, so it does not oscillate between
// the two sides tick by tick.
func ChooseDirn(s elevator.Snapshot) elevator.Dirn {
	switch {
	case Here(s):
		return elevator.DirnStop
	case Above(s) && Below(s):
		if s.Dirn == elevator.DirnStop {
			return s.LastDir
		}
		return s.Dirn
	case Above(s):
		return elevator.DirnUp
	case Below(s):
		return elevator.DirnDown
	default:
		return elevator.DirnStop
	}
}
