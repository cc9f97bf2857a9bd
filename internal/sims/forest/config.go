package forest

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid forest config")

// Params holds the tunable growth and fire rules.
type Params struct {
	SlowMaxAge    int `yaml:"slowMaxAge"`
	FastMaxAge    int `yaml:"fastMaxAge"`
	BurningMaxAge int `yaml:"burningMaxAge"`

	SlowSpreadRadius   int `yaml:"slowSpreadRadius"`
	SlowSpreadAttempts int `yaml:"slowSpreadAttempts"`
	FastSpreadRadius   int `yaml:"fastSpreadRadius"`
	FastSpreadAttempts int `yaml:"fastSpreadAttempts"`
	FireSpreadRadius   int `yaml:"fireSpreadRadius"`
	FireSpreadAttempts int `yaml:"fireSpreadAttempts"`

	// TreeFallLength is the number of cells a fallen slow-growing tree covers.
	TreeFallLength int `yaml:"treeFallLength"`
	// PioneerOdds is N in the 1-in-N chance that ash reseeds as a fast-growing
	// seedling. Zero disables pioneer reseeding.
	PioneerOdds int `yaml:"pioneerOdds"`
}

// Config controls the forest simulation dimensions and pacing.
type Config struct {
	Size   int           `yaml:"size"`
	Seed   int64         `yaml:"seed"`
	Period time.Duration `yaml:"period"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:   64,
		Seed:   1337,
		Period: 100 * time.Millisecond,
		Params: Params{
			SlowMaxAge:         SlowMaxAge,
			FastMaxAge:         FastMaxAge,
			BurningMaxAge:      BurningMaxAge,
			SlowSpreadRadius:   6,
			SlowSpreadAttempts: 1,
			FastSpreadRadius:   10,
			FastSpreadAttempts: 3,
			FireSpreadRadius:   2,
			FireSpreadAttempts: 6,
			TreeFallLength:     6,
			PioneerOdds:        10,
		},
	}
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Period < 0 {
		return fmt.Errorf("%w: period must not be negative, got %v", ErrInvalidConfig, c.Period)
	}
	p := c.Params
	ages := map[string]int{
		"slowMaxAge":    p.SlowMaxAge,
		"fastMaxAge":    p.FastMaxAge,
		"burningMaxAge": p.BurningMaxAge,
	}
	for key, v := range ages {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, key, v)
		}
	}
	nonNegative := map[string]int{
		"slowSpreadRadius":   p.SlowSpreadRadius,
		"slowSpreadAttempts": p.SlowSpreadAttempts,
		"fastSpreadRadius":   p.FastSpreadRadius,
		"fastSpreadAttempts": p.FastSpreadAttempts,
		"fireSpreadRadius":   p.FireSpreadRadius,
		"fireSpreadAttempts": p.FireSpreadAttempts,
		"treeFallLength":     p.TreeFallLength,
		"pioneerOdds":        p.PioneerOdds,
	}
	for key, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, key, v)
		}
	}
	return nil
}

// LoadConfig reads a YAML file on top of the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read forest config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML bytes on top of the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse forest config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().With(cfg)
}

// With returns a copy of c with the string map overrides applied. Keys match
// the parameter snapshot keys.
func (c Config) With(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["period"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Period = parsed
		}
	}
	positive := map[string]*int{
		"slow_max_age":    &c.Params.SlowMaxAge,
		"fast_max_age":    &c.Params.FastMaxAge,
		"burning_max_age": &c.Params.BurningMaxAge,
	}
	for key, dst := range positive {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	nonNegative := map[string]*int{
		"slow_spread_radius":   &c.Params.SlowSpreadRadius,
		"slow_spread_attempts": &c.Params.SlowSpreadAttempts,
		"fast_spread_radius":   &c.Params.FastSpreadRadius,
		"fast_spread_attempts": &c.Params.FastSpreadAttempts,
		"fire_spread_radius":   &c.Params.FireSpreadRadius,
		"fire_spread_attempts": &c.Params.FireSpreadAttempts,
		"tree_fall_length":     &c.Params.TreeFallLength,
		"pioneer_odds":         &c.Params.PioneerOdds,
	}
	for key, dst := range nonNegative {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	return c
}
