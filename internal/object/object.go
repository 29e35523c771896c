// Package object holds the simulated entities: the polygon entity shared by
// the ship and asteroids, the tilt integrator and the asteroid field.
package object

import (
	"image/color"
	"math/rand"

	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/draw"
	"github.com/tomz197/spacetilt/internal/physics"
)

// Canvas is the drawing capability entities need.
type Canvas interface {
	Polygon(shape draw.Shape, x, y int, c color.RGBA, angle float64)
}

// Screen represents the playfield dimensions in pixels.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a screen of the given size.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height, CenterX: width >> 1, CenterY: height >> 1}
}

// WrapPosition wraps x and y coordinates around screen boundaries (Asteroids-style).
func (s Screen) WrapPosition(x, y *float64) {
	*x = physics.Wrap(*x, float64(s.Width))
	*y = physics.Wrap(*y, float64(s.Height))
}

// Poly is a rotatable, translatable polygon with velocity and an optional
// collision radius.
type Poly struct {
	X, Y        float64 // Position (origin of Shape)
	VX, VY      float64 // Velocity in pixels per frame
	Angle       float64 // Rotation in radians, [0, 2π)
	Spin        float64 // Radians added to Angle every Move
	Shape       draw.Shape
	Radius      float64 // Collision radius; 0 means the polygon never collides
	MaxVelocity float64
	Counter     int // Asteroid tier, or explosion frame count for the ship
}

// PolyOptions sets the initial state of a Poly. Nil fields are randomized.
type PolyOptions struct {
	X, Y   *float64
	VX, VY *float64
	Angle  *float64
	Spin   *float64

	Scale       float64 // Pre-scale applied to the shape; 0 keeps it as is
	Radius      float64
	MaxVelocity float64 // Defaults to config.MaxVelocity
	Counter     int
}

// Fixed returns a pointer to v for PolyOptions fields.
func Fixed(v float64) *float64 {
	return &v
}

// NewPoly creates a polygon entity. Unspecified position is uniform over the
// screen, spin is one of -3..3 sixteenths of a radian per frame and each
// velocity axis is uniform(0.50, 0.99)*6 - 3 + 0.75.
func NewPoly(shape draw.Shape, opts PolyOptions, rng *rand.Rand, screen Screen) *Poly {
	if opts.Scale != 0 {
		shape = shape.Scale(opts.Scale)
	}
	maxVelocity := opts.MaxVelocity
	if maxVelocity == 0 {
		maxVelocity = config.MaxVelocity
	}

	p := &Poly{
		Shape:       shape,
		Radius:      opts.Radius,
		MaxVelocity: maxVelocity,
		Counter:     opts.Counter,
	}
	p.X = valueOr(opts.X, func() float64 { return float64(rng.Intn(max(1, screen.Width))) })
	p.Y = valueOr(opts.Y, func() float64 { return float64(rng.Intn(max(1, screen.Height))) })
	p.Angle = valueOr(opts.Angle, func() float64 { return 0 })
	p.Spin = valueOr(opts.Spin, func() float64 { return RandomSpin(rng) })
	p.VX = valueOr(opts.VX, func() float64 { return RandomVelocity(rng) })
	p.VY = valueOr(opts.VY, func() float64 { return RandomVelocity(rng) })
	return p
}

func valueOr(v *float64, random func() float64) float64 {
	if v != nil {
		return *v
	}
	return random()
}

// RandomSpin returns a spin rate of -3..3 sixteenths of a radian per frame.
func RandomSpin(rng *rand.Rand) float64 {
	return float64(rng.Intn(7)-3) / 16
}

// RandomVelocity returns uniform(0.50, 0.99)*6 - 3 + 0.75.
func RandomVelocity(rng *rand.Rand) float64 {
	u := 0.50 + rng.Float64()*(0.99-0.50)
	return u*6 - 3 + 0.75
}

// HasRadius reports whether the polygon takes part in collisions.
func (p *Poly) HasRadius() bool {
	return p.Radius > 0
}

// Rotate adds rad to the angle. An angle that leaves [0, 2π) snaps to 0.
func (p *Poly) Rotate(rad float64) {
	p.Angle += rad
	if p.Angle >= physics.TwoPi || p.Angle < 0 {
		p.Angle = 0
	}
}

// Move applies spin, advances the position by the integer part of the
// velocity and wraps it into the screen.
func (p *Poly) Move(screen Screen) {
	if p.Spin != 0 {
		p.Rotate(p.Spin)
	}
	p.X += float64(int(p.VX))
	p.Y += float64(int(p.VY))
	screen.WrapPosition(&p.X, &p.Y)
}

// Draw renders the polygon at its position and angle in color c. Drawing in
// the background color erases it.
func (p *Poly) Draw(c Canvas, col color.RGBA) {
	c.Polygon(p.Shape, int(p.X), int(p.Y), col, p.Angle)
}

// CollidesWith reports whether the collision circles of p and other overlap.
// Both polygons must have a radius.
func (p *Poly) CollidesWith(other *Poly) bool {
	return physics.CirclesOverlap(p.X, p.Y, p.Radius, other.X, other.Y, other.Radius)
}

// Stop zeroes the velocity.
func (p *Poly) Stop() {
	p.VX, p.VY = 0, 0
}

// Reset reuses the polygon at (x, y) at rest, facing angle 0.
func (p *Poly) Reset(x, y float64) {
	p.X, p.Y = x, y
	p.Stop()
	p.Angle = 0
	p.Counter = 0
}
