package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/qmuntal/stateless"
	"github.com/rs/zerolog"

	"heissim/check"
	"heissim/config"
	"heissim/elevator"
	"heissim/fault"
	"heissim/fsm"
)

const (
	stateCreated  = "created"
	stateRunning  = "running"
	stateFinished = "finished"
	stateAborted  = "aborted"

	triggerStart  = "start"
	triggerFinish = "finish"
	triggerAbort  = "abort"
)

// Simulator runs the controller against a random fair environment in
// lock-step ticks, checking the safety properties as it goes.
type Simulator struct {
	cfg  config.Config
	ctrl *fsm.Controller
	env  *Env
	log  zerolog.Logger
	life *stateless.StateMachine
	snap elevator.Snapshot
	tick int
}

func New(cfg config.Config, log zerolog.Logger) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := fault.FromName(cfg.Variant)
	if err != nil {
		return nil, err
	}

	life := stateless.NewStateMachine(stateCreated)
	life.Configure(stateCreated).Permit(triggerStart, stateRunning)
	life.Configure(stateRunning).
		Permit(triggerFinish, stateFinished).
		Permit(triggerAbort, stateAborted)

	return &Simulator{
		cfg:  cfg,
		ctrl: fsm.New(cfg.NumFloors, policy),
		env:  NewEnv(cfg.Seed, cfg.PressProb, cfg.FairnessBound, policy),
		log:  log,
		life: life,
		snap: elevator.NewSnapshot(cfg.NumFloors, cfg.StartFloor),
	}, nil
}

func (s *Simulator) Snapshot() elevator.Snapshot { return s.snap.Clone() }

func (s *Simulator) Tick() int { return s.tick }

// StepOnce advances one tick with the given environment choice and
// returns the issued commands plus any property violations.
func (s *Simulator) StepOnce(env fsm.EnvChoice) (fsm.Outputs, []string) {
	prev := s.snap
	next, out := s.ctrl.Step(prev, env)
	viols := check.CheckTransition(prev, out, next)
	s.snap = next
	s.tick++

	s.log.Debug().
		Int("tick", s.tick).
		Int("floor", next.Floor).
		Str("dirn", out.Dirn.String()).
		Str("door", next.Door.String()).
		Bools("pressed", next.Pressed).
		Msg("tick")
	if next.Quake != prev.Quake {
		s.log.Warn().Bool("quake", next.Quake).Msg("earthquake state changed")
	}
	if next.Sensor != prev.Sensor {
		s.log.Info().Bool("sensor", next.Sensor).Msg("door sensor changed")
	}
	for f, r := range out.Reset {
		if r && prev.Pressed[f] {
			s.log.Info().Int("floor", f).Msg("request served")
		}
	}
	return out, viols
}

// Run drives the tick loop until MaxTicks, the context is cancelled, or
// a property violation aborts the run. Run can only be called once.
func (s *Simulator) Run(ctx context.Context) error {
	if err := s.life.Fire(triggerStart); err != nil {
		return fmt.Errorf("simulator already ran: %w", err)
	}
	s.log.Info().
		Str("variant", s.cfg.Variant).
		Int("floors", s.cfg.NumFloors).
		Int64("seed", s.cfg.Seed).
		Msg("simulation started")

	ticker := time.NewTicker(s.cfg.TickInterval())
	defer ticker.Stop()

	for s.tick < s.cfg.MaxTicks {
		select {
		case <-ctx.Done():
			_ = s.life.Fire(triggerAbort)
			return ctx.Err()
		case <-ticker.C:
			_, viols := s.StepOnce(s.env.Choose(s.snap))
			if len(viols) > 0 {
				_ = s.life.Fire(triggerAbort)
				for _, v := range viols {
					s.log.Error().Int("tick", s.tick).Msg(v)
				}
				return fmt.Errorf("property violated at tick %d: %s", s.tick, viols[0])
			}
		}
	}
	if err := s.life.Fire(triggerFinish); err != nil {
		return err
	}
	s.log.Info().Int("ticks", s.tick).Msg("simulation finished")
	return nil
}

func (s *Simulator) State() string {
	return s.life.MustState().(string)
}
