// Package physics provides the wrap-around arithmetic and overlap tests used
// by the simulation.
package physics

import "math"

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// FloorMod returns a modulo m with the sign of m, so FloorMod(-1, 5) == 4.
func FloorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// Wrap maps v into [0, size) on a toroidal axis. A non-positive size leaves
// v unchanged.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = FloorMod(v, size)
	// FloorMod can round up to size for tiny negative inputs.
	if v >= size {
		v = 0
	}
	return v
}

// NormalizeAngle maps a into [-π, π).
func NormalizeAngle(a float64) float64 {
	return FloorMod(a+math.Pi, TwoPi) - math.Pi
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap. Touching circles do not.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}
