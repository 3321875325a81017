package gassim

// A Side names one of the four walls of the arena.
type Side int

// Walls in the order CheckWalls tests them.
const (
	None Side = iota
	Left
	Top
	Bottom
	Right
)

// String returns the lowercase name of the wall.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// A Particle is a circular body moving in the arena.
type Particle struct {
	Pos    Vec2    // center
	Vel    Vec2    // displacement per tick
	Radius float64 // constant, > 0
	Mass   float64 // constant, 0 counts as 1
}

// Advance moves the particle by one tick of its velocity.
// Walls crossed during the step are only seen by CheckWalls afterwards.
func (p *Particle) Advance() {
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
}

// Reflect flips the velocity component orthogonal to the given wall.
func (p *Particle) Reflect(s Side) {
	switch s {
	case Left, Right:
		p.Vel.X = -p.Vel.X
	case Top, Bottom:
		p.Vel.Y = -p.Vel.Y
	}
}

// CheckWalls reflects p off the first wall it penetrates,
// testing left, top, bottom then right, and returns that wall.
// Only one axis is reflected per call, even in a corner.
// The position is left as is.
func (p *Particle) CheckWalls(a Arena) Side {
	var s Side
	switch {
	case p.Pos.X < p.Radius:
		s = Left
	case p.Pos.Y < p.Radius:
		s = Top
	case p.Pos.Y > a.Height-p.Radius:
		s = Bottom
	case p.Pos.X > a.Width-p.Radius:
		s = Right
	default:
		return None
	}
	p.Reflect(s)
	return s
}

// Overlaps reports whether the discs of p and q intersect.
func (p *Particle) Overlaps(q *Particle) bool {
	return Dist(p.Pos, q.Pos) < p.Radius+q.Radius
}

// Collide resolves an elastic collision between p and q with restitution e
// by exchanging impulse along the line of centers. Tangential velocities
// are kept (frictionless contact). Positions are not changed.
//
// If the centers coincide, ErrCoincident is returned and nothing changes.
func (p *Particle) Collide(q *Particle, e float64) error {
	d := Dist(p.Pos, q.Pos)
	if d == 0 {
		return ErrCoincident
	}

	// unit normal along the line of centers, from q to p
	ax, ay := (p.Pos.X-q.Pos.X)/d, (p.Pos.Y-q.Pos.Y)/d

	// rotate velocities into normal/tangential frame
	va := p.Vel.X*ax + p.Vel.Y*ay
	vb := q.Vel.X*ax + q.Vel.Y*ay
	ta := -p.Vel.X*ay + p.Vel.Y*ax
	tb := -q.Vel.X*ay + q.Vel.Y*ax

	va, vb = exchange(va, vb, mass(p.Mass), mass(q.Mass), e)

	// rotate back
	p.Vel = Vec2{X: va*ax - ta*ay, Y: va*ay + ta*ax}
	q.Vel = Vec2{X: vb*ax - tb*ay, Y: vb*ay + tb*ax}
	return nil
}

// exchange returns the normal velocities after a 1D collision
// of bodies with masses ma and mb and restitution e.
func exchange(va, vb, ma, mb, e float64) (float64, float64) {
	if ma == mb {
		return va + (1+e)*(vb-va)/2, vb + (1+e)*(va-vb)/2
	}
	m := ma + mb
	p := ma*va + mb*vb
	return (p + mb*e*(vb-va)) / m, (p + ma*e*(va-vb)) / m
}

// energy returns the kinetic energy of p. A zero mass counts as one.
func (p *Particle) energy() float64 {
	return 0.5 * mass(p.Mass) * Dot(p.Vel, p.Vel)
}

func mass(m float64) float64 {
	if m == 0 {
		return 1
	}
	return m
}
