package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration rejected: %v", err)
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few floors", func(c *Config) { c.NumFloors = 1 }},
		{"too many floors", func(c *Config) { c.NumFloors = 50 }},
		{"start floor below shaft", func(c *Config) { c.StartFloor = -1 }},
		{"start floor above shaft", func(c *Config) { c.StartFloor = 3 }},
		{"unknown variant", func(c *Config) { c.Variant = "flood" }},
		{"zero tick", func(c *Config) { c.TickMs = 0 }},
		{"zero ticks", func(c *Config) { c.MaxTicks = 0 }},
		{"probability above one", func(c *Config) { c.PressProb = 1.5 }},
		{"negative probability", func(c *Config) { c.PressProb = -0.1 }},
		{"zero fairness bound", func(c *Config) { c.FairnessBound = 0 }},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heis.yaml")
	content := "numFloors: 4\nvariant: sensor\nseed: 42\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NumFloors != 4 || cfg.Variant != "sensor" || cfg.Seed != 42 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.TickMs != Default().TickMs {
		t.Errorf("unset field lost its default: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded configuration rejected: %v", err)
	}
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/no/such/file.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
