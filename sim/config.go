package sim

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samsarge/particles/constant"
)

// Config carries the driver-level knobs: world size, spawn burst, timing
// and optional features. Physics tuning stays in the constant package; the
// config deliberately cannot change the motion model.
type Config struct {
	// Width and Height are the world bounds in world units.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// InitialSpawn is the burst issued before the first tick.
	InitialSpawn int `yaml:"initial_spawn"`

	// TickInterval is the delay between simulation steps.
	TickInterval time.Duration `yaml:"tick_interval"`

	// Seed seeds the world's random generator; 0 means time-based.
	Seed int64 `yaml:"seed"`

	// Sound enables the chime on spawn bursts.
	Sound bool `yaml:"sound"`

	// MonitorInterval is the process heap sampling window.
	MonitorInterval time.Duration `yaml:"monitor_interval"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		Width:           constant.DefaultWorldWidth,
		Height:          constant.DefaultWorldHeight,
		InitialSpawn:    constant.InitialSpawnCount,
		TickInterval:    constant.TickInterval,
		MonitorInterval: constant.MonitorInterval,
	}
}

// UnmarshalYAML overlays only the fields present in the document, so
// defaults survive a partial file. Durations use Go notation ("16ms", "5s").
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		Width           *float64 `yaml:"width"`
		Height          *float64 `yaml:"height"`
		InitialSpawn    *int     `yaml:"initial_spawn"`
		TickInterval    *string  `yaml:"tick_interval"`
		Seed            *int64   `yaml:"seed"`
		Sound           *bool    `yaml:"sound"`
		MonitorInterval *string  `yaml:"monitor_interval"`
	}

	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}

	if r.Width != nil {
		c.Width = *r.Width
	}
	if r.Height != nil {
		c.Height = *r.Height
	}
	if r.InitialSpawn != nil {
		c.InitialSpawn = *r.InitialSpawn
	}
	if r.Seed != nil {
		c.Seed = *r.Seed
	}
	if r.Sound != nil {
		c.Sound = *r.Sound
	}
	if r.TickInterval != nil {
		d, err := time.ParseDuration(*r.TickInterval)
		if err != nil {
			return fmt.Errorf("tick_interval: %w", err)
		}
		c.TickInterval = d
	}
	if r.MonitorInterval != nil {
		d, err := time.ParseDuration(*r.MonitorInterval)
		if err != nil {
			return fmt.Errorf("monitor_interval: %w", err)
		}
		c.MonitorInterval = d
	}
	return nil
}

// LoadConfig reads a YAML file over the defaults. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("bounds must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.InitialSpawn < 0 {
		return fmt.Errorf("initial_spawn must be non-negative, got %d", c.InitialSpawn)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.MonitorInterval <= 0 {
		return fmt.Errorf("monitor_interval must be positive, got %s", c.MonitorInterval)
	}
	return nil
}
