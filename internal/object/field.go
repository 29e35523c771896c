package object

import (
	"math/rand"

	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/draw"
)

// Field is the set of active asteroids. It is refilled all at once with
// large asteroids whenever it is empty; asteroids are never destroyed or
// split by collisions.
type Field struct {
	asteroids []*Poly
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{}
}

// Asteroids returns the active asteroids.
func (f *Field) Asteroids() []*Poly {
	return f.asteroids
}

// Len returns the number of active asteroids.
func (f *Field) Len() int {
	return len(f.asteroids)
}

// Set replaces the field with the given asteroids.
func (f *Field) Set(asteroids ...*Poly) {
	f.asteroids = append(f.asteroids[:0], asteroids...)
}

// Replenish spawns config.AsteroidCount large asteroids at random when the
// field is empty. It reports whether it spawned.
func (f *Field) Replenish(rng *rand.Rand, screen Screen) bool {
	if len(f.asteroids) > 0 {
		return false
	}
	for i := 0; i < config.AsteroidCount; i++ {
		f.asteroids = append(f.asteroids, NewAsteroid(TierLarge, PolyOptions{}, rng, screen))
	}
	return true
}

// Update erases, moves and redraws every asteroid, then tests it against
// the ship. A colliding asteroid erases the ship and stops it. The result is
// true if any asteroid hit the ship this frame.
func (f *Field) Update(c Canvas, screen Screen, ship *Poly) (hit bool) {
	for _, a := range f.asteroids {
		a.Draw(c, draw.Black)
		a.Move(screen)
		a.Draw(c, draw.White)
		if a.CollidesWith(ship) {
			ship.Draw(c, draw.Black)
			ship.Stop()
			hit = true
		}
	}
	return hit
}
