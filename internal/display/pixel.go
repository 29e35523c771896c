package display

import (
	"image/color"
	"io/fs"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/tomz197/spacetilt/internal/draw"
)

// rectFiller is implemented by panel drivers with a hardware rectangle fill
// (gc9a01, st7789, ...). It is much faster than per-pixel writes over SPI.
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Pixel renders onto any TinyGo pixel device.
type Pixel struct {
	dev    drivers.Displayer
	assets fs.FS
	width  int
	height int
	points []draw.Point
}

var _ Display = (*Pixel)(nil)
var _ Flusher = (*Pixel)(nil)

// NewPixel wraps dev. Image assets are read from assets, which may be nil
// when the board has none.
func NewPixel(dev drivers.Displayer, assets fs.FS) *Pixel {
	w, h := dev.Size()
	return &Pixel{
		dev:    dev,
		assets: assets,
		width:  int(w),
		height: int(h),
	}
}

// Width returns the panel width in pixels.
func (p *Pixel) Width() int { return p.width }

// Height returns the panel height in pixels.
func (p *Pixel) Height() int { return p.height }

// Polygon draws the outline of shape rotated by angle and translated to (x, y).
func (p *Pixel) Polygon(shape draw.Shape, x, y int, c color.RGBA, angle float64) {
	p.points = shape.Transform(float64(x), float64(y), angle, p.points)
	n := len(p.points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a, b := p.points[i], p.points[(i+1)%n]
		tinydraw.Line(p.dev, round16(a.X), round16(a.Y), round16(b.X), round16(b.Y), c)
	}
}

// FillRect fills the rectangle, clipped to the panel.
func (p *Pixel) FillRect(x, y, w, h int, c color.RGBA) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	w = min(w, p.width-x)
	h = min(h, p.height-y)
	if w <= 0 || h <= 0 {
		return
	}
	if f, ok := p.dev.(rectFiller); ok {
		if err := f.FillRectangle(int16(x), int16(y), int16(w), int16(h), c); err == nil {
			return
		}
	}
	_ = tinydraw.FilledRectangle(p.dev, int16(x), int16(y), int16(w), int16(h), c)
}

// Fill paints the whole panel.
func (p *Pixel) Fill(c color.RGBA) {
	p.FillRect(0, 0, p.width, p.height, c)
}

// Text draws s with its top-left corner at (x, y). tinyfont positions text
// by baseline, so the glyph height is added.
func (p *Pixel) Text(f Font, s string, x, y int, c color.RGBA) {
	font := fontFace(f)
	tinyfont.WriteLine(p.dev, font, int16(x), int16(y+f.Height()-1), s, c)
}

// Image draws the asset at its native size with its top-left corner at (x, y).
func (p *Pixel) Image(path string, x, y int) error {
	img, err := LoadImage(p.assets, path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	for iy := b.Min.Y; iy < b.Max.Y; iy++ {
		py := y + iy - b.Min.Y
		if py < 0 || py >= p.height {
			continue
		}
		for ix := b.Min.X; ix < b.Max.X; ix++ {
			px := x + ix - b.Min.X
			if px < 0 || px >= p.width {
				continue
			}
			p.dev.SetPixel(int16(px), int16(py), color.RGBAModel.Convert(img.At(ix, iy)).(color.RGBA))
		}
	}
	return nil
}

// Flush pushes buffered pixels to the panel. Direct-drawing panels return immediately.
func (p *Pixel) Flush() error {
	return p.dev.Display()
}

func fontFace(f Font) tinyfont.Fonter {
	if f == FontLarge {
		return &freemono.Bold12pt7b
	}
	return &proggy.TinySZ8pt7b
}

func round16(v float64) int16 {
	return int16(math.Round(v))
}
