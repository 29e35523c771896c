package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/draw"
	"github.com/tomz197/spacetilt/internal/physics"
)

// ShipShape is the arrowhead drawn for the player, pointing along +X.
var ShipShape = draw.Shape{{X: -7, Y: -7}, {X: 7, Y: 0}, {X: -7, Y: 7}, {X: -3, Y: 0}, {X: -7, Y: -7}}

// ShipRadius is the ship's collision radius.
const ShipRadius = 7

// Ship is the player-controlled polygon. Tilt accelerates it; it always
// turns to face its direction of travel.
type Ship struct {
	Poly
}

// NewShip creates a ship at rest in the center of the screen.
func NewShip(screen Screen, rng *rand.Rand) *Ship {
	p := NewPoly(ShipShape, PolyOptions{
		X:      Fixed(float64(screen.CenterX)),
		Y:      Fixed(float64(screen.CenterY)),
		VX:     Fixed(0),
		VY:     Fixed(0),
		Spin:   Fixed(0),
		Radius: ShipRadius,
	}, rng, screen)
	return &Ship{Poly: *p}
}

// Integrate applies one frame of accelerometer input (in g) to the
// velocity and heading. The sensor's X axis drives vertical motion and its
// Y axis horizontal motion.
func (s *Ship) Integrate(accelX, accelY float64) {
	s.VY -= accelX * config.AccelGain
	s.VX += accelY * config.AccelGain

	// Rotational drag: the y update uses the old vx, the x update the new vy.
	s.VY -= s.VX * config.DragGain
	s.VX += s.VY * config.DragGain

	if s.VX != 0 || s.VY != 0 {
		target := math.Atan2(s.VY, s.VX)
		s.Angle += physics.NormalizeAngle(target-s.Angle) * config.HeadingGain
	}
	s.Angle = physics.FloorMod(s.Angle, physics.TwoPi)

	s.Limit()
}

// Limit clamps each velocity axis to ±MaxVelocity and zeroes any axis
// inside the deadzone.
func (s *Ship) Limit() {
	s.VX = limitAxis(s.VX, s.MaxVelocity)
	s.VY = limitAxis(s.VY, s.MaxVelocity)
}

func limitAxis(v, maxVelocity float64) float64 {
	if v > maxVelocity {
		v = maxVelocity
	} else if v < -maxVelocity {
		v = -maxVelocity
	}
	if math.Abs(v) < config.Deadzone {
		v = 0
	}
	return v
}

// Update integrates the sample, moves the ship and draws it.
func (s *Ship) Update(c Canvas, screen Screen, accelX, accelY float64) {
	s.Integrate(accelX, accelY)
	s.Move(screen)
	s.Draw(c, draw.White)
}
