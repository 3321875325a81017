// Command gas runs gassim: a 2D gas of particles colliding in a box.
//
// # Usage
//
// The gas command takes one optional argument:
//
//	gas [config_file]
//
// It is the path to a TOML config file.
// If no config file is specified, an interactive simulation
// with default parameters will run in a window.
// Any parameter can also be set through a GAS_* environment variable,
// which takes precedence over the config file.
//
// # Modes
//
// In window mode, the simulation can be paused/resumed with space.
// While in pause, pressing right arrow will perform a single step.
// Pressing Esc or closing the window will quit, as does reaching Steps ticks
// when Steps is positive.
//
// In hdf5 mode, Steps frames of particle positions and velocities
// are written to Output along with the configuration.
//
// In headless mode, the simulation runs at TickRate and only logs
// statistics, until Steps ticks have run or the process is interrupted.
package main

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/PrincetonUniversity/gassim"
	"github.com/PrincetonUniversity/gassim/display"
	"github.com/PrincetonUniversity/gassim/driver"
)

const usage = `Usage: gas [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive simulation
with default parameters will run in a window.
`

func main() {
	var path string
	switch len(os.Args) {
	case 1:
	case 2:
		path = os.Args[1]
	default:
		Fatal(fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage))
	}

	conf, err := ParseConfig(path)
	if err != nil {
		Fatal(err)
	}
	if conf.Seed == 0 {
		if conf.Seed, err = newSeed(); err != nil {
			Fatal(err)
		}
		log.Printf("no seed configured, using %d", conf.Seed)
	}

	// setup simulation
	w, err := gassim.Initialize(conf.World())
	if err != nil {
		Fatal(err)
	}
	log.Printf("%d particles in %gx%g, radius %g, restitution %g, seed %d",
		conf.Particles, conf.Width, conf.Height, conf.Radius, conf.Restitution, conf.Seed)

	d := driver.New(w)
	stats := driver.LogStats(log.Default(), d, conf.LogEvery)

	switch conf.Mode {
	case "window":
		err = display.Run(d, &display.Config{
			TickRate: conf.TickRate,
			Scale:    conf.Scale,
			MaxSpeed: math.Sqrt2 * conf.SpeedLimit,
			OnFrame:  driver.Multi(stats, stopAfter(conf.Steps)).Render,
		})
	case "hdf5":
		err = RunHDF5(conf, d, stats)
	case "headless":
		err = RunHeadless(conf, d, stats)
	}
	if err != nil {
		Fatal(err)
	}
}

// RunHeadless steps the simulation in real time until interrupted
// or until conf.Steps ticks have run.
func RunHeadless(conf *Config, d *driver.Driver, r driver.Renderer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := d.Run(ctx, conf.TickRate, driver.Multi(r, stopAfter(conf.Steps)))
	log.Printf("stopped after %d ticks", d.Tick())
	return err
}

// stopAfter returns a renderer that ends the run once n ticks have run.
// It never stops if n is 0.
func stopAfter(n int) driver.Renderer {
	return driver.RendererFunc(func(f driver.Frame) error {
		if n > 0 && f.Tick >= n {
			return driver.ErrStop
		}
		return nil
	})
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// newSeed draws a seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
