package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AugmentConfig describes the random-objective augmentation `convert`
// applies when promoting a parity game to a generalized one, loadable
// from YAML via --config instead of individual flags. Mirrors
// dshills-dungo/pkg/dungeon.Config's load-then-validate shape.
type AugmentConfig struct {
	// Count is the number of additional colorings to generate.
	Count int `yaml:"count"`
	// MaxColor is the inclusive color ceiling for generated objectives.
	MaxColor uint32 `yaml:"max_color"`
	// Seed seeds the generator; 0 makes convert pick a time-based seed and
	// print it to stderr.
	Seed int64 `yaml:"seed"`
}

// LoadAugmentConfig reads and validates an AugmentConfig from a YAML file.
func LoadAugmentConfig(path string) (*AugmentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pargame: reading config file: %w", err)
	}

	var cfg AugmentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pargame: parsing YAML config: %w", err)
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("pargame: config: count must be non-negative, got %d", cfg.Count)
	}
	return &cfg, nil
}
