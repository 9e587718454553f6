// Package config loads runtime configuration: embedded defaults overlaid
// with an optional yaml file. The simulation tuning block feeds both the
// live engine and the offline approximator, so a tweaked constant reaches
// both paths from one place.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/anthill/internal/engine"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the full runtime configuration.
type Config struct {
	Seed             uint64 `yaml:"seed"`
	Database         string `yaml:"database"`
	Listen           string `yaml:"listen"`
	TickIntervalMS   int    `yaml:"tick_interval_ms"`
	AutosaveInterval uint64 `yaml:"autosave_interval_ticks"`

	Tuning engine.Tuning `yaml:"tuning"`
}

// Load returns the embedded defaults, overlaid with the yaml file at path if
// one is given. Fields absent from the override keep their default values.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	t := &c.Tuning
	switch {
	case t.MaxHunger <= 0:
		return fmt.Errorf("tuning: max_hunger must be positive")
	case t.HungerEatThreshold <= 0 || t.HungerEatThreshold > t.MaxHunger:
		return fmt.Errorf("tuning: hunger_eat_threshold must be in (0, max_hunger]")
	case t.SummonChance < 0 || t.SummonChance > 1:
		return fmt.Errorf("tuning: summon_chance must be in [0, 1]")
	case t.OfflineHungerDiscount < 0 || t.OfflineHungerDiscount > 1:
		return fmt.Errorf("tuning: offline_hunger_discount must be in [0, 1]")
	case t.CorpseProcessingTicks == 0:
		return fmt.Errorf("tuning: corpse_processing_ticks must be positive")
	}
	for i := 1; i < len(t.ResourceThresholds); i++ {
		if t.ResourceThresholds[i] <= t.ResourceThresholds[i-1] {
			return fmt.Errorf("tuning: resource_thresholds must be strictly ascending")
		}
	}
	return nil
}
