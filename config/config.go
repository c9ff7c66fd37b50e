package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"heissim/fault"
)

const (
	NFloors = 3

	// The shaft model is only validated for small buildings; bigger
	// floor counts blow up the state space without telling us anything
	// new.
	MaxFloors = 8
)

type Config struct {
	NumFloors     int     `yaml:"numFloors"`
	Variant       string  `yaml:"variant"`
	StartFloor    int     `yaml:"startFloor"`
	TickMs        int     `yaml:"tickMs"`
	MaxTicks      int     `yaml:"maxTicks"`
	Seed          int64   `yaml:"seed"`
	PressProb     float64 `yaml:"pressProb"`
	FairnessBound int     `yaml:"fairnessBound"`
}

func Default() Config {
	return Config{
		NumFloors:     NFloors,
		Variant:       "basic",
		StartFloor:    0,
		TickMs:        250,
		MaxTicks:      200,
		Seed:          1,
		PressProb:     0.15,
		FairnessBound: 5,
	}
}

// Load reads a YAML file over the defaults. A missing path just returns
// the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("opening config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects malformed configuration before anything runs.
func (c Config) Validate() error {
	if c.NumFloors < 2 || c.NumFloors > MaxFloors {
		return fmt.Errorf("numFloors must be in [2, %d], got %d", MaxFloors, c.NumFloors)
	}
	if c.StartFloor < 0 || c.StartFloor >= c.NumFloors {
		return fmt.Errorf("startFloor %d outside [0, %d]", c.StartFloor, c.NumFloors-1)
	}
	if _, err := fault.FromName(c.Variant); err != nil {
		return err
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("tickMs must be positive, got %d", c.TickMs)
	}
	if c.MaxTicks <= 0 {
		return fmt.Errorf("maxTicks must be positive, got %d", c.MaxTicks)
	}
	if c.PressProb < 0 || c.PressProb > 1 {
		return fmt.Errorf("pressProb %v outside [0, 1]", c.PressProb)
	}
	if c.FairnessBound < 1 {
		return fmt.Errorf("fairnessBound must be at least 1, got %d", c.FairnessBound)
	}
	return nil
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}
