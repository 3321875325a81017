// Package gassim runs discrete-time simulations of a 2D gas of circular particles.
//
// A fixed number of particles move inside a rectangular arena.
// Each tick they advance by their velocity, bounce off the walls
// and exchange momentum through pairwise elastic collisions.
// Collisions are detected by overlap at the end of the step only.
package gassim

import "log"

// An Arena is the rectangle [0, Width] x [0, Height] enclosing the particles.
type Arena struct {
	Width  float64
	Height float64
}

// A Body is the read-only view of a particle handed to renderers.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// A World contains all the state and parameters of a simulation.
// It is not safe for concurrent use; see package driver.
type World struct {
	Arena Arena

	// Restitution is the coefficient applied to every collision.
	// 1 is perfectly elastic.
	Restitution float64

	// Swarm holds the particles in insertion order.
	// The order fixes the order in which pairs are resolved.
	Swarm []Particle

	// Log receives decisions taken during a tick, such as skipped pairs.
	Log *log.Logger

	// Degenerate counts the pairs skipped because their centers coincided.
	Degenerate int

	// pairs already reported in the log
	skipped map[[2]int]bool
}

// NewWorld returns a world holding the given particles.
func NewWorld(a Arena, restitution float64, swarm []Particle) *World {
	return &World{
		Arena:       a,
		Restitution: restitution,
		Swarm:       swarm,
		Log:         log.Default(),
	}
}

// Tick runs a single simulation step.
func (w *World) Tick() {
	for i := range w.Swarm {
		w.Swarm[i].Advance()
		w.Swarm[i].CheckWalls(w.Arena)
	}
	for i := range w.Swarm {
		p := &w.Swarm[i]
		for j := i + 1; j < len(w.Swarm); j++ {
			q := &w.Swarm[j]
			if !p.Overlaps(q) {
				continue
			}
			if err := p.Collide(q, w.Restitution); err != nil {
				w.Degenerate++
				w.logSkip(i, j, err)
			}
		}
	}
}

// Particles returns a snapshot of the particles for rendering.
func (w *World) Particles() []Body {
	return w.AppendParticles(make([]Body, 0, len(w.Swarm)))
}

// AppendParticles appends a snapshot of the particles to dst.
func (w *World) AppendParticles(dst []Body) []Body {
	for _, p := range w.Swarm {
		dst = append(dst, Body{Pos: p.Pos, Vel: p.Vel, Radius: p.Radius})
	}
	return dst
}

// Energy returns the total kinetic energy of the particles.
func (w *World) Energy() float64 {
	var e float64
	for i := range w.Swarm {
		e += w.Swarm[i].energy()
	}
	return e
}

// Momentum returns the total linear momentum of the particles.
func (w *World) Momentum() Vec2 {
	var m Vec2
	for _, p := range w.Swarm {
		m = Add(m, Scale(mass(p.Mass), p.Vel))
	}
	return m
}

// logSkip logs a skipped pair the first time it is skipped only.
func (w *World) logSkip(i, j int, err error) {
	k := [2]int{i, j}
	if w.skipped[k] {
		return
	}
	if w.skipped == nil {
		w.skipped = make(map[[2]int]bool)
	}
	w.skipped[k] = true
	w.logf("skipping pair (%d, %d): %v", i, j, err)
}

func (w *World) logf(format string, v ...interface{}) {
	if w.Log != nil {
		w.Log.Printf(format, v...)
	}
}
