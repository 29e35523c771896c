package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointRotate(t *testing.T) {
	p := Point{X: 1, Y: 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	assert.Equal(t, Point{X: 3, Y: 4}, Point{X: 3, Y: 4}.Rotate(0))
}

func TestShapeScaleTruncates(t *testing.T) {
	s := Shape{{X: -5, Y: -15}, {X: 16, Y: 5}, {X: 7, Y: 16}}
	assert.Equal(t, Shape{{X: -3, Y: -9}, {X: 10, Y: 3}, {X: 4, Y: 10}}, s.Scale(0.66))
	assert.Equal(t, s, s.Scale(1))
}

func TestShapeTransform(t *testing.T) {
	s := Shape{{X: 7, Y: 0}, {X: -7, Y: 7}}

	got := s.Transform(100, 50, 0, nil)
	assert.Equal(t, []Point{{X: 107, Y: 50}, {X: 93, Y: 57}}, got)

	buf := make([]Point, 0, 8)
	got = s.Transform(0, 0, math.Pi, buf)
	require.Len(t, got, 2)
	assert.InDelta(t, -7, got[0].X, 1e-9)
	assert.InDelta(t, 0, got[0].Y, 1e-9)
	assert.Equal(t, &buf[:1][0], &got[0], "dst is reused when large enough")
}

func TestShapeBounds(t *testing.T) {
	minX, minY, maxX, maxY := Shape{{X: -7, Y: -7}, {X: 7, Y: 0}, {X: -3, Y: 7}}.Bounds()
	assert.Equal(t, []float64{-7, -7, 7, 7}, []float64{minX, minY, maxX, maxY})

	minX, minY, maxX, maxY = Shape{}.Bounds()
	assert.Equal(t, []float64{0, 0, 0, 0}, []float64{minX, minY, maxX, maxY})
}

func TestCanvasRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var out bytes.Buffer

	require.NoError(t, c.Render(&out))
	assert.Equal(t, 8, strings.Count(out.String(), "▀"), "first render paints every cell")

	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Empty(t, out.String())

	c.Set(1, 0, White)
	out.Reset()
	require.NoError(t, c.Render(&out))
	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "▀"))
	assert.True(t, strings.HasPrefix(got, "\033[1;2H\033[38;2;255;255;255m\033[48;2;0;0;0m▀"), "got %q", got)
	assert.True(t, strings.HasSuffix(got, "\033[0m"))
}

func TestCanvasOffsetRepaints(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	var out bytes.Buffer
	require.NoError(t, c.Render(&out))

	c.SetOffset(3, 5)
	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.True(t, strings.HasPrefix(out.String(), "\033[6;4H"))
	assert.Equal(t, 2, strings.Count(out.String(), "▀"))
}

func TestCanvasScaling(t *testing.T) {
	c := NewScaledCanvas(120, 60, 240, 240)
	assert.Equal(t, 120, c.PixelHeight())

	c.Set(239, 239, Red)
	assert.Equal(t, Black, c.Pixel(119, 119), "rounds past the edge and is clipped")

	c.Set(100, 100, Red)
	assert.Equal(t, Red, c.Pixel(50, 50))

	col, row := c.LogicalToTerminal(100, 100)
	assert.Equal(t, 50, col)
	assert.Equal(t, 25, row)
}

func TestCanvasDrawPolygonClosesOutline(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawPolygon([]Point{{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 8, Y: 8}}, White)

	assert.Equal(t, White, c.Pixel(1, 1))
	assert.Equal(t, White, c.Pixel(8, 1))
	assert.Equal(t, White, c.Pixel(8, 8))
	assert.Equal(t, White, c.Pixel(5, 5), "closing edge back to the start")
	assert.Equal(t, Black, c.Pixel(1, 8))
}

func TestCanvasFillRect(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.FillRect(2, 2, 3, 2, White)

	assert.Equal(t, White, c.Pixel(2, 2))
	assert.Equal(t, White, c.Pixel(4, 3))
	assert.Equal(t, Black, c.Pixel(5, 3))
	assert.Equal(t, Black, c.Pixel(2, 4))
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetPixel(0, 0, White)
	c.Resize(4, 2)
	assert.Equal(t, White, c.Pixel(0, 0), "same size keeps the framebuffer")

	c.Resize(8, 4)
	assert.Equal(t, Black, c.Pixel(0, 0))
	assert.Equal(t, 8, c.TerminalWidth())
}
