package sim

import (
	"math/rand"

	"heissim/elevator"
	"heissim/fault"
	"heissim/fsm"
)

// Env draws the environment's nondeterministic choices for simulation.
// It is fair: a fault choice that stays enabled without being taken for
// fairnessBound consecutive ticks gets forced, so a repair always
// arrives and the sensor never sticks. The exhaustive checker does not
// use Env; it enumerates choices directly.
type Env struct {
	rng        *rand.Rand
	policy     fault.Policy
	pressProb  float64
	bound      int
	repairHeld int
	sensorHeld int
}

func NewEnv(seed int64, pressProb float64, fairnessBound int, p fault.Policy) *Env {
	return &Env{
		rng:       rand.New(rand.NewSource(seed)),
		policy:    p,
		pressProb: pressProb,
		bound:     fairnessBound,
	}
}

func (e *Env) Choose(s elevator.Snapshot) fsm.EnvChoice {
	env := fsm.EnvChoice{
		NewRequests: make([]bool, len(s.Pressed)),
		Fault:       e.pickFault(s),
	}
	if s.Quake {
		// the fault wipes every request anyway
		return env
	}
	for f := range env.NewRequests {
		if !s.Pressed[f] && e.rng.Float64() < e.pressProb {
			env.NewRequests[f] = true
		}
	}
	return env
}

func (e *Env) pickFault(s elevator.Snapshot) fault.Choice {
	switch p := e.policy.(type) {
	case fault.Earthquake:
		if !s.Quake {
			e.repairHeld = 0
			return fault.Choice{QuakeStart: e.rng.Float64() < e.pressProb}
		}
		if !p.RepairPossible(s) {
			e.repairHeld = 0
			return fault.Choice{}
		}
		e.repairHeld++
		if e.repairHeld >= e.bound || e.rng.Intn(2) == 0 {
			e.repairHeld = 0
			return fault.Choice{Repair: true}
		}
		return fault.Choice{}
	case fault.Sensor:
		if !s.Sensor {
			e.sensorHeld = 0
			return fault.Choice{Sensor: e.rng.Float64() < e.pressProb}
		}
		e.sensorHeld++
		if e.sensorHeld >= e.bound {
			e.sensorHeld = 0
			return fault.Choice{Sensor: false}
		}
		return fault.Choice{Sensor: e.rng.Intn(2) == 0}
	default:
		return fault.Choice{}
	}
}
