package fsm

import (
	"heissim/elevator"
	"heissim/fault"
	"heissim/requests"
)

// Outputs are the actuator commands for one tick.
type Outputs struct {
	Dirn  elevator.Dirn
	Door  elevator.DoorCmd
	Reset []bool
}

// EnvChoice is the environment's nondeterminism for one tick, passed in
// explicitly so a harness can enumerate every possibility.
type EnvChoice struct {
	NewRequests []bool
	Fault       fault.Choice
}

// Controller is the decision engine. It carries no mutable state of its
// own; the one bit of controller memory (LastDir) and the fault flags
// travel in the snapshot, so Step is a pure function.
type Controller struct {
	NumFloors int
	Policy    fault.Policy
}

func New(numFloors int, p fault.Policy) *Controller {
	return &Controller{NumFloors: numFloors, Policy: p}
}

// Decide computes this tick's commands from the current snapshot. Every
// input combination reaches exactly one branch per output; the defaults
// are Stop and Nop.
func (c *Controller) Decide(s elevator.Snapshot) Outputs {
	out := Outputs{
		Dirn:  elevator.DirnStop,
		Door:  elevator.DoorNop,
		Reset: make([]bool, c.NumFloors),
	}

	// Direction first: never move with the door open, or while a fault
	// holds the cabin. A request at the current floor also stops here,
	// which is what lets the door logic below open for it.
	if s.Door != elevator.DoorOpen && !c.Policy.ForceStop(s) {
		out.Dirn = requests.ChooseDirn(s)
	}

	if cmd, ok := c.Policy.DoorOverride(s); ok {
		out.Door = cmd
	} else {
		switch {
		case out.Dirn != elevator.DirnStop:
			// never touch the door while moving
		case requests.Here(s) && s.Door == elevator.DoorClosed:
			out.Door = elevator.DoorOpenCmd
		case s.Door == elevator.DoorOpen &&
			(requests.Above(s) || requests.Below(s)) &&
			!c.Policy.BlockClose(s):
			out.Door = elevator.DoorCloseCmd
		}
	}

	forceReset := c.Policy.ForceReset(s)
	for f := 0; f < c.NumFloors; f++ {
		if forceReset {
			out.Reset[f] = true
			continue
		}
		out.Reset[f] = s.Pressed[f] &&
			s.Floor == f &&
			s.Door == elevator.DoorOpen &&
			!c.Policy.BlockReset(s)
	}
	return out
}

// Step advances the whole system one tick: commands are computed from the
// current snapshot, then every automaton moves on those commands and the
// environment's choices. Replaying the same snapshot and choice always
// yields the same result.
func (c *Controller) Step(s elevator.Snapshot, env EnvChoice) (elevator.Snapshot, Outputs) {
	out := c.Decide(s)

	next := s.Clone()
	next.Floor = elevator.CabinNext(s.Floor, out.Dirn, c.NumFloors)
	next.Dirn = out.Dirn
	next.Door = elevator.DoorNext(s.Door, out.Door)
	for f := range next.Pressed {
		newRequest := f < len(env.NewRequests) && env.NewRequests[f]
		next.Pressed[f] = elevator.ButtonNext(s.Pressed[f], out.Reset[f], newRequest)
	}
	if out.Dirn != elevator.DirnStop {
		next.LastDir = out.Dirn
	}
	c.Policy.Advance(s, env.Fault, &next)
	return next, out
}
