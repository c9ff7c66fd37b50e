package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"heissim/check"
	"heissim/config"
	"heissim/elevator"
	"heissim/fault"
	"heissim/fsm"
	"heissim/logger"
	"heissim/sim"
)

func main() {
	mode := flag.String("mode", "check", "check, sim or interactive")
	cfgPath := flag.String("config", "", "YAML config file")
	variant := flag.String("variant", "", "basic, earthquake, sensor, or all (check mode only)")
	floors := flag.Int("floors", 0, "override number of floors")
	seed := flag.Int64("seed", 0, "override simulation seed")
	ticks := flag.Int("ticks", 0, "override simulation length")
	debug := flag.Bool("debug", false, "per-tick debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := logger.GetLeveled(level)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}
	if *variant != "" && *variant != "all" {
		cfg.Variant = *variant
	}
	if *floors != 0 {
		cfg.NumFloors = *floors
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *ticks != 0 {
		cfg.MaxTicks = *ticks
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	switch *mode {
	case "check":
		variants := []string{cfg.Variant}
		if *variant == "all" {
			variants = []string{"basic", "earthquake", "sensor"}
		}
		failed := false
		for _, name := range variants {
			policy, err := fault.FromName(name)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid variant")
			}
			ctrl := fsm.New(cfg.NumFloors, policy)
			res := check.Explore(ctrl, elevator.NewSnapshot(cfg.NumFloors, cfg.StartFloor))
			log.Info().
				Str("variant", res.Variant).
				Int("states", res.States).
				Int("transitions", res.Transitions).
				Int("violations", len(res.Violations)).
				Msg("exploration done")
			for _, viol := range res.Violations {
				failed = true
				fmt.Printf("-- property violated (%s): %s\n%s", res.Variant, viol.Property, viol.Trace)
			}
		}
		if failed {
			os.Exit(1)
		}

	case "sim":
		s, err := sim.New(cfg, *log)
		if err != nil {
			log.Fatal().Err(err).Msg("creating simulator")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := s.Run(ctx); err != nil {
			log.Error().Err(err).Msg("simulation failed")
			os.Exit(1)
		}

	case "interactive":
		s, err := sim.New(cfg, *log)
		if err != nil {
			log.Fatal().Err(err).Msg("creating simulator")
		}
		if err := s.RunInteractive(); err != nil {
			log.Error().Err(err).Msg("interactive run failed")
			os.Exit(1)
		}

	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
