package sim

import (
	"fmt"

	"github.com/eiannone/keyboard"

	"heissim/fault"
	"heissim/fsm"
)

// RunInteractive steps the simulation one keypress at a time: digit keys
// press call buttons, 'e' starts an earthquake, 'r' repairs it, 's'
// toggles the door sensor, anything else just advances the tick. Ctrl-C
// or 'q' quits.
func (s *Simulator) RunInteractive() error {
	if err := s.life.Fire(triggerStart); err != nil {
		return fmt.Errorf("simulator already ran: %w", err)
	}
	fmt.Printf("variant %s, %d floors. keys: 0-%d press, e quake, r repair, s sensor, q quit\n",
		s.cfg.Variant, s.cfg.NumFloors, s.cfg.NumFloors-1)
	s.render(fsm.Outputs{Reset: make([]bool, s.cfg.NumFloors)})

	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			_ = s.life.Fire(triggerAbort)
			return fmt.Errorf("reading key: %w", err)
		}
		if key == keyboard.KeyCtrlC || char == 'q' {
			return s.life.Fire(triggerFinish)
		}

		env := fsm.EnvChoice{NewRequests: make([]bool, s.cfg.NumFloors)}
		switch {
		case char >= '0' && int(char-'0') < s.cfg.NumFloors:
			env.NewRequests[char-'0'] = true
		case char == 'e':
			env.Fault = fault.Choice{QuakeStart: true}
		case char == 'r':
			env.Fault = fault.Choice{Repair: true}
		case char == 's':
			env.Fault = fault.Choice{Sensor: !s.snap.Sensor}
		}

		out, viols := s.StepOnce(env)
		s.render(out)
		for _, v := range viols {
			fmt.Printf("  !! property violated: %s\n", v)
		}
	}
}

func (s *Simulator) render(out fsm.Outputs) {
	fmt.Printf("tick %3d  ", s.tick)
	for f := s.cfg.NumFloors - 1; f >= 0; f-- {
		mark := "."
		if f == s.snap.Floor {
			mark = "#"
		}
		if s.snap.Pressed[f] {
			mark += "*"
		} else {
			mark += " "
		}
		fmt.Printf("[%d%s]", f, mark)
	}
	fmt.Printf("  dirn=%-4s door=%-6s", out.Dirn, s.snap.Door)
	if s.snap.Quake {
		fmt.Print("  QUAKE")
	}
	if s.snap.Sensor {
		fmt.Print("  SENSOR")
	}
	fmt.Println()
}
