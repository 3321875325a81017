// Package driver advances a gassim.World over time and hands
// consistent snapshots of it to renderers.
//
// A Driver serializes ticks with reads: Step holds a write lock around
// World.Tick and Frame holds a read lock while copying the particles,
// so a renderer running on another goroutine never sees a half-done tick.
package driver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/PrincetonUniversity/gassim"
)

// A Frame is the state of the world after a given number of ticks.
type Frame struct {
	Tick   int
	Arena  gassim.Arena
	Bodies []gassim.Body
}

// A Renderer consumes frames. It must not keep Bodies past the call
// unless it copies them.
type Renderer interface {
	Render(f Frame) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f Frame) error

// Render calls fn(f).
func (fn RendererFunc) Render(f Frame) error {
	return fn(f)
}

// Multi returns a renderer that hands each frame to every r in order
// and stops at the first error.
func Multi(rs ...Renderer) Renderer {
	return RendererFunc(func(f Frame) error {
		for _, r := range rs {
			if err := r.Render(f); err != nil {
				return err
			}
		}
		return nil
	})
}

// ErrStop can be returned by a renderer to end Run or RunSteps without error.
var ErrStop = errors.New("driver: stop")

// A Driver owns a world and the number of ticks run so far.
type Driver struct {
	mu    sync.RWMutex
	world *gassim.World
	tick  int
}

// New returns a driver for w. The caller must not touch w afterwards.
func New(w *gassim.World) *Driver {
	return &Driver{world: w}
}

// Step runs a single tick.
func (d *Driver) Step() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.world.Tick()
	d.tick++
}

// Tick returns the number of ticks run so far.
func (d *Driver) Tick() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tick
}

// Frame returns a snapshot of the current state.
func (d *Driver) Frame() Frame {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Frame{
		Tick:   d.tick,
		Arena:  d.world.Arena,
		Bodies: d.world.Particles(),
	}
}

// Stats returns the energy, momentum and degenerate pair count of the world.
func (d *Driver) Stats() (energy float64, momentum gassim.Vec2, degenerate int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.world.Energy(), d.world.Momentum(), d.world.Degenerate
}

// RunSteps renders the current frame then steps, n times, as fast as possible.
// A renderer returning ErrStop ends the run early without error.
func (d *Driver) RunSteps(n int, r Renderer) error {
	for k := 0; k < n; k++ {
		if err := r.Render(d.Frame()); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return fmt.Errorf("render tick %d: %w", d.Tick(), err)
		}
		d.Step()
	}
	return nil
}

// Run steps the world hz times per second and renders a frame after each
// step, until ctx is done or the renderer returns an error.
// The context error is not reported: stopping the loop is the normal way out.
func (d *Driver) Run(ctx context.Context, hz int, r Renderer) error {
	if hz <= 0 {
		return fmt.Errorf("driver: tick rate must be positive, got %d", hz)
	}
	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.Step()
			if err := r.Render(d.Frame()); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return fmt.Errorf("render tick %d: %w", d.Tick(), err)
			}
		}
	}
}
