// Package draw provides polygon geometry and a colored half-block rasterizer.
package draw

import (
	"image/color"
	"math"
)

// Palette used by the game. The display background is Black, so drawing
// a shape in Black erases it.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	if angle == 0 {
		return p
	}
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Shape is an ordered list of vertices describing a closed polygon
// relative to its own origin.
type Shape []Point

// Scale returns a copy of s with every vertex multiplied by factor and
// truncated toward zero to integer coordinates.
func (s Shape) Scale(factor float64) Shape {
	scaled := make(Shape, len(s))
	for i, p := range s {
		scaled[i] = Point{
			X: math.Trunc(p.X * factor),
			Y: math.Trunc(p.Y * factor),
		}
	}
	return scaled
}

// Transform rotates every vertex by angle and translates it by (x, y).
// The result is written into dst, which is grown if needed, and returned.
func (s Shape) Transform(x, y, angle float64, dst []Point) []Point {
	if cap(dst) < len(s) {
		dst = make([]Point, len(s))
	}
	dst = dst[:len(s)]

	sin, cos := math.Sincos(angle)
	for i, p := range s {
		dst[i] = Point{
			X: x + p.X*cos - p.Y*sin,
			Y: y + p.X*sin + p.Y*cos,
		}
	}
	return dst
}

// Bounds returns the axis-aligned bounding box of s.
func (s Shape) Bounds() (minX, minY, maxX, maxY float64) {
	if len(s) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = s[0].X, s[0].Y
	maxX, maxY = minX, minY
	for _, p := range s[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
