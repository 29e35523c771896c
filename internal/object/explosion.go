package object

import (
	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/draw"
)

// ExplosionShape is the 8×8 square flashed where the ship died.
var ExplosionShape = draw.Shape{{X: -4, Y: -4}, {X: -4, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: -4}, {X: -4, Y: -4}}

// explosionDiamond is the square turned 45 degrees.
const explosionDiamond = 0.785398

// Explode draws one frame of the explosion at the ship's position, counting
// frames in ship.Counter. The square and the diamond swap colors every
// frame. Once the count passes config.ExplosionFrames the flash is erased,
// the ship moves to the screen center, the counter resets and Explode
// reports true.
func Explode(c Canvas, screen Screen, ship *Poly) (done bool) {
	x, y := int(ship.X), int(ship.Y)

	ship.Counter++
	if ship.Counter%2 == 0 {
		c.Polygon(ExplosionShape, x, y, draw.Black, explosionDiamond)
		c.Polygon(ExplosionShape, x, y, draw.White, 0)
	} else {
		c.Polygon(ExplosionShape, x, y, draw.White, explosionDiamond)
		c.Polygon(ExplosionShape, x, y, draw.Black, 0)
	}

	if ship.Counter > config.ExplosionFrames {
		c.Polygon(ExplosionShape, x, y, draw.Black, 0)
		ship.X = float64(screen.CenterX)
		ship.Y = float64(screen.CenterY)
		ship.Counter = 0
		return true
	}
	return false
}
