package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Simulation holds the tunables of one simulation run. Zero values are filled
// from Default, so a config file only needs the keys it changes.
type Simulation struct {
	Strategy        string  `yaml:"Strategy"`
	ReversalPenalty float64 `yaml:"ReversalPenalty"`
	LoadFactor      float64 `yaml:"LoadFactor"`
	StarvationTicks int     `yaml:"StarvationTicks"`
	DefaultCapacity int     `yaml:"DefaultCapacity"`
}

func Default() Simulation {
	return Simulation{
		Strategy:        "shortest_path",
		ReversalPenalty: 2.0,
		LoadFactor:      1.0,
		StarvationTicks: 10,
		DefaultCapacity: 8,
	}
}

func Load(path string) (Simulation, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.StarvationTicks < 1 {
		return cfg, fmt.Errorf("StarvationTicks must be at least 1, got %d", cfg.StarvationTicks)
	}
	if cfg.DefaultCapacity < 1 {
		return cfg, fmt.Errorf("DefaultCapacity must be at least 1, got %d", cfg.DefaultCapacity)
	}
	return cfg, nil
}
