package object

import (
	"math/rand"

	"github.com/tomz197/spacetilt/internal/draw"
)

// Tier represents the size class of an asteroid.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
)

// Size properties for each tier.
var (
	tierRadii  = [...]float64{TierSmall: 5, TierMedium: 10, TierLarge: 16}
	tierScales = [...]float64{TierSmall: 0.33, TierMedium: 0.66, TierLarge: 1.0}
)

// Radius returns the collision radius of the tier.
func (t Tier) Radius() float64 {
	return tierRadii[t]
}

// Scale returns the shape scale factor of the tier.
func (t Tier) Scale() float64 {
	return tierScales[t]
}

func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// AsteroidShape is the outline of a large asteroid.
var AsteroidShape = draw.Shape{
	{X: -5, Y: -15}, {X: -2, Y: -13}, {X: 11, Y: -14}, {X: 15, Y: -7}, {X: 14, Y: 0},
	{X: 16, Y: 5}, {X: 11, Y: 16}, {X: 7, Y: 16}, {X: -7, Y: 14}, {X: -14, Y: 7},
	{X: -13, Y: 1}, {X: -14, Y: -8}, {X: -11, Y: -15}, {X: -5, Y: -15},
}

// NewAsteroid creates an asteroid of the given tier. Position, velocity and
// spin not set in opts are randomized; the tier decides scale, radius and
// Counter.
func NewAsteroid(tier Tier, opts PolyOptions, rng *rand.Rand, screen Screen) *Poly {
	opts.Scale = tier.Scale()
	opts.Radius = tier.Radius()
	opts.Counter = int(tier)
	return NewPoly(AsteroidShape, opts, rng, screen)
}

// TierOf returns the tier stored in an asteroid's Counter.
func TierOf(p *Poly) Tier {
	return Tier(p.Counter)
}
