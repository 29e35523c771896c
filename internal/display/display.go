// Package display defines the drawing surface the game renders to and the
// implementations used on the device.
package display

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"

	"github.com/tomz197/spacetilt/internal/draw"
)

// Display is the drawing surface the game renders to.
// Coordinates are in screen pixels with the origin at the top-left corner.
type Display interface {
	// Polygon draws the closed outline of shape rotated by angle radians
	// around its origin and translated to (x, y).
	Polygon(shape draw.Shape, x, y int, c color.RGBA, angle float64)
	FillRect(x, y, w, h int, c color.RGBA)
	// Text draws s with its top-left corner at (x, y).
	Text(f Font, s string, x, y int, c color.RGBA)
	Fill(c color.RGBA)
	// Image draws the image asset at path with its top-left corner at (x, y).
	// A missing asset yields an error matching ErrAssetMissing.
	Image(path string, x, y int) error
	Width() int
	Height() int
}

// Flusher is implemented by displays that buffer drawing and need an
// explicit call to present a frame.
type Flusher interface {
	Flush() error
}

// Flush presents the frame if d buffers drawing.
func Flush(d Display) error {
	if f, ok := d.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Font selects one of the two fixed-pitch fonts the game uses.
type Font int

const (
	FontSmall Font = iota // 8x8 glyphs
	FontLarge             // 16x16 glyphs
)

// Width returns the advance of one glyph in pixels.
func (f Font) Width() int {
	if f == FontLarge {
		return 16
	}
	return 8
}

// Height returns the line height in pixels.
func (f Font) Height() int {
	return f.Width()
}

// TextWidth returns the pixel width of s rendered in f.
func (f Font) TextWidth(s string) int {
	return len(s) * f.Width()
}

// ErrAssetMissing is returned by Image when the asset does not exist.
var ErrAssetMissing = errors.New("display: asset missing")

// InitError reports a display bus or pin configuration failure.
type InitError struct {
	Bus string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("display: init %s: %v", e.Bus, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
