package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// EntityConfig sizes one kind of entity.
type EntityConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BaseSpeed float64 `yaml:"base_speed"`
}

func (e EntityConfig) Size() Size {
	return Size{Width: e.Width, Height: e.Height}
}

// Config is the simulation's tuning. Durations are written as Go duration
// strings ("5s", "1500ms") in YAML.
type Config struct {
	Arena    Arena        `yaml:"arena"`
	Player   EntityConfig `yaml:"player"`
	Wanderer EntityConfig `yaml:"wanderer"`

	// SpawnInterval is how much elapsed time separates wanderer spawns.
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	// InitialRetarget is a new wanderer's delay before its first heading.
	InitialRetarget time.Duration `yaml:"initial_retarget"`
	// RetargetMin and RetargetMax bound every later retarget delay,
	// as the half-open range [min, max). Min must be positive and the range
	// non-empty.
	RetargetMin time.Duration `yaml:"retarget_min"`
	RetargetMax time.Duration `yaml:"retarget_max"`

	// MaxElapsed caps the elapsed time of a single tick. Zero disables the cap.
	MaxElapsed time.Duration `yaml:"max_elapsed"`

	// Seed seeds the wanderers' random source. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the stock 800x600 arena with a centred 32x32 player
// moving 10px per frame and a wanderer every five seconds.
func DefaultConfig() Config {
	return Config{
		Arena:           Arena{Width: 800, Height: 600},
		Player:          EntityConfig{Width: 32, Height: 32, BaseSpeed: 10},
		Wanderer:        EntityConfig{Width: 32, Height: 32, BaseSpeed: 5},
		SpawnInterval:   5 * time.Second,
		InitialRetarget: time.Second,
		RetargetMin:     500 * time.Millisecond,
		RetargetMax:     1500 * time.Millisecond,
		MaxElapsed:      5 * time.Second,
	}
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every size and interval is usable.
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena must be positive, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	}

	entities := []struct {
		name string
		EntityConfig
	}{
		{"player", c.Player},
		{"wanderer", c.Wanderer},
	}
	for _, e := range entities {
		name := e.name
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %vx%v", ErrInvalidConfig, name, e.Width, e.Height)
		}
		if e.Width > c.Arena.Width || e.Height > c.Arena.Height {
			return fmt.Errorf("%w: %s does not fit in the arena", ErrInvalidConfig, name)
		}
		if e.BaseSpeed < 0 {
			return fmt.Errorf("%w: %s base_speed must not be negative", ErrInvalidConfig, name)
		}
	}

	if c.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn_interval must be positive", ErrInvalidConfig)
	}
	if c.InitialRetarget < 0 {
		return fmt.Errorf("%w: initial_retarget must not be negative", ErrInvalidConfig)
	}
	// A zero retarget delay rerolls the heading every frame, undoing each
	// reflection before it can bring a wanderer back inside.
	if c.RetargetMin <= 0 {
		return fmt.Errorf("%w: retarget_min must be positive", ErrInvalidConfig)
	}
	if c.RetargetMax <= c.RetargetMin {
		return fmt.Errorf("%w: retarget range [%v, %v) is empty", ErrInvalidConfig, c.RetargetMin, c.RetargetMax)
	}
	if c.MaxElapsed < 0 {
		return fmt.Errorf("%w: max_elapsed must not be negative", ErrInvalidConfig)
	}
	return nil
}
