package check

import (
	"fmt"

	"heissim/elevator"
	"heissim/fsm"
)

// maxReported bounds how many safety violations one run collects; past
// that the state space is broken enough that more traces add nothing.
const maxReported = 20

// Violation pairs a broken property with the witness trace.
type Violation struct {
	Property string
	Trace    Trace
}

// Result summarises one exhaustive exploration.
type Result struct {
	Variant     string
	States      int
	Transitions int
	Violations  []Violation
}

func (r Result) Ok() bool { return len(r.Violations) == 0 }

type explorer struct {
	ctrl    *fsm.Controller
	snaps   []elevator.Snapshot
	parent  []int
	succ    [][]int
	visited map[string]int
	result  Result
}

// Explore enumerates the full reachable state space from the initial
// snapshot, one transition per (state, environment choice) pair, checks
// the safety properties on every transition, then checks the liveness
// properties over the resulting graph. The space is small by
// construction, a few hundred states for three floors.
func Explore(ctrl *fsm.Controller, initial elevator.Snapshot) Result {
	e := &explorer{
		ctrl:    ctrl,
		visited: make(map[string]int),
		result:  Result{Variant: ctrl.Policy.Name()},
	}
	e.add(initial, -1)

	masks := requestMasks(ctrl.NumFloors)
	for idx := 0; idx < len(e.snaps); idx++ {
		snap := e.snaps[idx]
		for _, fc := range ctrl.Policy.Choices(snap) {
			for _, reqs := range masks {
				env := fsm.EnvChoice{NewRequests: reqs, Fault: fc}
				next, out := ctrl.Step(snap, env)
				e.result.Transitions++

				if len(e.result.Violations) < maxReported {
					for _, msg := range CheckTransition(snap, out, next) {
						e.report(msg, idx, next)
					}
				}

				childIdx, seen := e.visited[next.Key()]
				if !seen {
					childIdx = e.add(next, idx)
				}
				e.succ[idx] = append(e.succ[idx], childIdx)
			}
		}
	}

	e.result.States = len(e.snaps)
	e.checkLiveness()
	return e.result
}

func (e *explorer) add(s elevator.Snapshot, parent int) int {
	idx := len(e.snaps)
	e.visited[s.Key()] = idx
	e.snaps = append(e.snaps, s)
	e.parent = append(e.parent, parent)
	e.succ = append(e.succ, nil)
	return idx
}

func (e *explorer) report(msg string, fromIdx int, next elevator.Snapshot) {
	steps := append(e.pathTo(fromIdx), next)
	e.result.Violations = append(e.result.Violations, Violation{
		Property: msg,
		Trace:    Trace{Steps: steps, LoopStart: -1},
	})
}

// pathTo reconstructs the snapshot sequence from the initial state.
func (e *explorer) pathTo(idx int) []elevator.Snapshot {
	var rev []int
	for i := idx; i != -1; i = e.parent[i] {
		rev = append(rev, i)
	}
	steps := make([]elevator.Snapshot, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		steps = append(steps, e.snaps[rev[i]])
	}
	return steps
}

// checkLiveness verifies that from every reachable state where button f
// is pressed, some state with the button released is reachable. The
// controller is deterministic, so a reachable release means any fair
// environment schedule gets there; no reachable release at all is a
// genuine liveness violation, witnessed by a lasso through states where
// the button stays pressed.
func (e *explorer) checkLiveness() {
	pred := e.reverse()
	for f := 0; f < e.ctrl.NumFloors; f++ {
		canRelease := e.reachesRelease(f, pred)
		for idx, snap := range e.snaps {
			if snap.Pressed[f] && !canRelease[idx] {
				e.result.Violations = append(e.result.Violations, Violation{
					Property: fmt.Sprintf("button %d can stay pressed forever", f),
					Trace:    e.lasso(idx, canRelease),
				})
				break
			}
		}
	}
}

func (e *explorer) reverse() [][]int {
	pred := make([][]int, len(e.snaps))
	for from, tos := range e.succ {
		for _, to := range tos {
			pred[to] = append(pred[to], from)
		}
	}
	return pred
}

// reachesRelease marks every state from which a state with button f
// released is reachable, by walking the reversed graph from all release
// states.
func (e *explorer) reachesRelease(f int, pred [][]int) []bool {
	marked := make([]bool, len(e.snaps))
	var queue []int
	for idx, snap := range e.snaps {
		if !snap.Pressed[f] {
			marked[idx] = true
			queue = append(queue, idx)
		}
	}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		for _, p := range pred[idx] {
			if !marked[p] {
				marked[p] = true
				queue = append(queue, p)
			}
		}
	}
	return marked
}

// lasso builds a liveness witness: the path from the initial state to a
// trapped state, then a cycle through trapped states. Every successor of
// a trapped state is itself trapped, and every state has a successor, so
// walking forward must revisit a state.
func (e *explorer) lasso(idx int, canRelease []bool) Trace {
	steps := e.pathTo(idx)
	seen := map[int]int{idx: len(steps) - 1}
	cur := idx
	for {
		next := e.succ[cur][0]
		for _, s := range e.succ[cur] {
			if !canRelease[s] {
				next = s
				break
			}
		}
		if at, ok := seen[next]; ok {
			return Trace{Steps: steps, LoopStart: at}
		}
		steps = append(steps, e.snaps[next])
		seen[next] = len(steps) - 1
		cur = next
	}
}

// requestMasks enumerates every subset of new button requests.
func requestMasks(numFloors int) [][]bool {
	masks := make([][]bool, 0, 1<<numFloors)
	for m := 0; m < 1<<numFloors; m++ {
		reqs := make([]bool, numFloors)
		for f := 0; f < numFloors; f++ {
			reqs[f] = m&(1<<f) != 0
		}
		masks = append(masks, reqs)
	}
	return masks
}
