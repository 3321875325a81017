package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/PrincetonUniversity/gassim"
)

// Config holds the various parameters required for running a simulation.
// Every field can be overridden by the environment variable in its env tag.
type Config struct {
	// Mode selects the host. Possible values:
	// window (interactive), hdf5 (record to Output), headless (log only).
	Mode string `env:"GAS_MODE"`

	// Output is the path of the HDF5 output file (hdf5 mode only).
	Output string `env:"GAS_OUTPUT"`

	Particles int   `env:"GAS_PARTICLES"` // number of particles
	Steps     int   `env:"GAS_STEPS"`     // number of ticks, 0 runs until quit (must be positive in hdf5 mode)
	TickRate  int   `env:"GAS_TICK_RATE"` // unit: tick/s (window and headless)
	Seed      int64 `env:"GAS_SEED"`      // 0 draws a random seed

	// Arena and particle parameters
	Width       float64 `env:"GAS_WIDTH"`       // unit: arena unit
	Height      float64 `env:"GAS_HEIGHT"`      // unit: arena unit
	Radius      float64 `env:"GAS_RADIUS"`      // unit: arena unit
	Mass        float64 `env:"GAS_MASS"`        // unit: 1
	SpeedLimit  float64 `env:"GAS_SPEED_LIMIT"` // unit: arena unit/tick
	Restitution float64 `env:"GAS_RESTITUTION"` // unit: 1

	// Reporting parameters
	LogEvery int     `env:"GAS_LOG_EVERY"` // ticks between stats lines, 0 disables
	Scale    float64 `env:"GAS_SCALE"`     // unit: pixel/arena unit
}

// DefaultConf are the default parameters.
var DefaultConf = Config{
	Mode:        "window",
	Output:      "",
	Particles:   50,
	Steps:       0,
	TickRate:    60,
	Seed:        0,
	Width:       800,
	Height:      600,
	Radius:      5,
	Mass:        1,
	SpeedLimit:  2,
	Restitution: 1,
	LogEvery:    600,
	Scale:       1,
}

// ParseConfig returns the default parameters overwritten by the TOML
// config file whose path is provided, if any, then by the environment.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConf
	if path != "" {
		md, err := toml.DecodeFile(path, &conf)
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return nil, fmt.Errorf("parse config: unknown keys %s", strings.Join(names, ", "))
		}
	}
	if err := env.Parse(&conf); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks the parameters that are not checked by gassim.Initialize.
func (c *Config) Validate() error {
	switch c.Mode {
	case "window", "headless":
		if c.TickRate <= 0 {
			return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
		}
	case "hdf5":
		if c.Output == "" {
			return fmt.Errorf("hdf5 mode needs an output file ('output' key in the config file)")
		}
		if c.Steps <= 0 {
			return fmt.Errorf("hdf5 mode needs a positive number of steps, got %d", c.Steps)
		}
	default:
		return fmt.Errorf("bad mode %q", c.Mode)
	}
	if c.Steps < 0 {
		return fmt.Errorf("negative number of steps %d", c.Steps)
	}
	return nil
}

// World returns the parameters of the simulated world.
func (c *Config) World() gassim.Config {
	return gassim.Config{
		Particles:   c.Particles,
		Width:       c.Width,
		Height:      c.Height,
		Radius:      c.Radius,
		Mass:        c.Mass,
		SpeedLimit:  c.SpeedLimit,
		Restitution: c.Restitution,
		Seed:        c.Seed,
	}
}
