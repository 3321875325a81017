package gassim

import (
	"math"
	"math/rand"
)

// Config holds the parameters needed to build a world.
type Config struct {
	Particles   int     // number of particles
	Width       float64 // arena width
	Height      float64 // arena height
	Radius      float64 // radius shared by all particles
	Mass        float64 // mass shared by all particles, 0 means 1
	SpeedLimit  float64 // bound on each initial velocity component
	Restitution float64 // in [0, 1]
	Seed        int64   // seed of the initial placement
}

// Validate reports the first parameter that makes placement impossible.
func (c Config) Validate() error {
	switch {
	case c.Particles < 0:
		return ErrNegativeCount
	case !finite(c.Radius) || c.Radius <= 0:
		return ErrBadRadius
	case !finite(c.SpeedLimit) || c.SpeedLimit < 0:
		return ErrBadSpeed
	case !finite(c.Mass) || c.Mass < 0:
		return ErrBadMass
	case !finite(c.Restitution) || c.Restitution < 0 || c.Restitution > 1:
		return ErrBadRestitution
	case !finite(c.Width) || !finite(c.Height):
		return ErrBadArena
	case c.Width < 2*c.Radius || c.Height < 2*c.Radius:
		return ErrArenaTooSmall
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Initialize builds a world of c.Particles particles with random positions
// and velocities drawn from a generator seeded with c.Seed.
// The same configuration always yields the same world.
// Particles may overlap each other at creation.
func Initialize(c Config) (*World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m := c.Mass
	if m == 0 {
		m = 1
	}

	a := Arena{Width: c.Width, Height: c.Height}
	rng := rand.New(rand.NewSource(c.Seed))
	swarm := make([]Particle, c.Particles)
	for i := range swarm {
		swarm[i] = Particle{
			Pos:    PlaceParticle(rng, a, c.Radius),
			Vel:    RandomVelocity(rng, c.SpeedLimit),
			Radius: c.Radius,
			Mass:   m,
		}
	}
	return NewWorld(a, c.Restitution, swarm), nil
}

// PlaceParticle returns a point drawn uniformly in the arena
// inset by r on every side, so that a disc of radius r fits.
func PlaceParticle(rng *rand.Rand, a Arena, r float64) Vec2 {
	return Vec2{
		X: r + rng.Float64()*(a.Width-2*r),
		Y: r + rng.Float64()*(a.Height-2*r),
	}
}

// RandomVelocity returns a velocity whose components are
// drawn uniformly in [-limit, limit].
func RandomVelocity(rng *rand.Rand, limit float64) Vec2 {
	return Vec2{
		X: limit * (2*rng.Float64() - 1),
		Y: limit * (2*rng.Float64() - 1),
	}
}
