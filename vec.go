package gassim

import "gonum.org/v1/gonum/spatial/r2"

// A Vec2 is a 2D point or displacement.
type Vec2 = r2.Vec

// Sub returns the vector pointing from b to a.
func Sub(a, b Vec2) Vec2 {
	return r2.Sub(a, b)
}

// Add returns a+b.
func Add(a, b Vec2) Vec2 {
	return r2.Add(a, b)
}

// Scale returns f*v.
func Scale(f float64, v Vec2) Vec2 {
	return r2.Scale(f, v)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 {
	return r2.Dot(a, b)
}

// Norm returns the length of v.
func Norm(v Vec2) float64 {
	return r2.Norm(v)
}

// Dist returns the euclidean distance between a and b.
// It is used as a divisor when resolving collisions,
// so callers must check it is not zero first.
func Dist(a, b Vec2) float64 {
	return r2.Norm(r2.Sub(a, b))
}
