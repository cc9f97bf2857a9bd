package app

import (
	"flag"
	"time"

	"mini-forest/internal/sims/forest"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale      int
	Size       int
	Seed       int64
	Period     time.Duration
	ConfigPath string
}

// NewConfig returns a Config populated with sensible defaults. Zero Size,
// Seed and Period defer to the forest config file or its defaults.
func NewConfig() *Config {
	return &Config{Scale: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.IntVar(&c.Size, "size", c.Size, "grid size in cells (overrides config file)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (overrides config file)")
	fs.DurationVar(&c.Period, "period", c.Period, "minimum time between ticks (overrides config file)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML forest config")
}

// ForestConfig resolves the forest configuration: defaults, then the YAML
// file when one is given, then any non-zero flag overrides.
func (c *Config) ForestConfig() (forest.Config, error) {
	cfg := forest.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := forest.LoadConfig(c.ConfigPath)
		if err != nil {
			return forest.Config{}, err
		}
		cfg = loaded
	}
	if c.Size > 0 {
		cfg.Size = c.Size
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Period > 0 {
		cfg.Period = c.Period
	}
	if err := cfg.Validate(); err != nil {
		return forest.Config{}, err
	}
	return cfg, nil
}
