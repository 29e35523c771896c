package terminal

import (
	"image"
	"image/color"
	"io"
	"io/fs"
	"math"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/tomz197/spacetilt/internal/display"
	"github.com/tomz197/spacetilt/internal/draw"
)

// Fallback size used until the terminal reports its dimensions.
const (
	defaultCols = 80
	defaultRows = 24
)

// Options configures a Terminal.
type Options struct {
	// Size reports the terminal dimensions. Defaults to StdoutSize.
	Size SizeFunc
	// Assets holds image assets such as the splash screen.
	Assets fs.FS
}

// Terminal is a display.Display backed by a persistent color canvas and
// rendered with ANSI escape sequences. The logical screen keeps its aspect
// ratio and is centered in the terminal.
type Terminal struct {
	out    *frameWriter
	size   SizeFunc
	assets fs.FS
	canvas *draw.Canvas

	width, height int // logical screen
	cols, rows    int // last known terminal size
	started       bool

	texts []overlay
}

// overlay is text printed on top of the canvas. Its rectangle is in logical
// coordinates so fills can clear it.
type overlay struct {
	x, y, w, h int
	s          string
	c          color.RGBA
}

var _ display.Display = (*Terminal)(nil)
var _ display.Flusher = (*Terminal)(nil)

// New creates a terminal display of width×height logical pixels writing to w.
func New(w io.Writer, width, height int, opts Options) *Terminal {
	size := opts.Size
	if size == nil {
		size = StdoutSize
	}
	t := &Terminal{
		out:    newFrameWriter(w),
		size:   size,
		assets: opts.Assets,
		width:  width,
		height: height,
		canvas: draw.NewScaledCanvas(1, 1, float64(width), float64(height)),
	}
	_ = t.layout()
	return t
}

// Width returns the logical screen width.
func (t *Terminal) Width() int { return t.width }

// Height returns the logical screen height.
func (t *Terminal) Height() int { return t.height }

// Canvas exposes the backing canvas.
func (t *Terminal) Canvas() *draw.Canvas { return t.canvas }

// Polygon rasterizes the outline of shape onto the canvas.
func (t *Terminal) Polygon(shape draw.Shape, x, y int, c color.RGBA, angle float64) {
	points := shape.Transform(float64(x), float64(y), angle, t.canvas.BorrowPoints(len(shape)))
	t.canvas.DrawPolygon(points, c)
}

// FillRect fills the rectangle and removes any text it covers.
func (t *Terminal) FillRect(x, y, w, h int, c color.RGBA) {
	t.canvas.FillRect(float64(x), float64(y), float64(w), float64(h), c)
	t.dropTexts(x, y, w, h)
}

// Fill paints the whole screen and removes all text.
func (t *Terminal) Fill(c color.RGBA) {
	t.canvas.Clear(c)
	t.dropTexts(0, 0, t.width, t.height)
}

// Text places s over the canvas. Terminal glyphs do not scale, so the
// string is centered on the area it would cover on the device.
func (t *Terminal) Text(f display.Font, s string, x, y int, c color.RGBA) {
	w, h := f.TextWidth(s), f.Height()
	t.dropTexts(x, y, w, h)
	t.texts = append(t.texts, overlay{x: x, y: y, w: w, h: h, s: s, c: c})
}

// Image scales the asset into the canvas.
func (t *Terminal) Image(path string, x, y int) error {
	img, err := display.LoadImage(t.assets, path)
	if err != nil {
		return err
	}
	if err := t.layout(); err != nil {
		return err
	}

	scaleX := float64(t.canvas.TerminalWidth()) / float64(t.width)
	scaleY := float64(t.canvas.PixelHeight()) / float64(t.height)
	b := img.Bounds()
	dstW := int(math.Round(float64(b.Dx()) * scaleX))
	dstH := int(math.Round(float64(b.Dy()) * scaleY))
	if dstW <= 0 || dstH <= 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	px0 := int(math.Round(float64(x) * scaleX))
	py0 := int(math.Round(float64(y) * scaleY))
	for py := 0; py < dstH; py++ {
		for px := 0; px < dstW; px++ {
			t.canvas.SetPixel(px0+px, py0+py, dst.RGBAAt(px, py))
		}
	}
	return nil
}

// Flush renders changed cells and the text overlay.
func (t *Terminal) Flush() error {
	if err := t.layout(); err != nil {
		return err
	}
	if err := t.canvas.Render(t.out); err != nil {
		return err
	}
	for _, o := range t.texts {
		col, row := t.textCell(o)
		t.out.writeAt(col, row, o.s, o.c)
	}
	return errors.Wrap(t.out.flush(), "write frame")
}

// Close restores the cursor and clears the screen.
func (t *Terminal) Close() error {
	t.out.writeString(seqClearScreen + seqShowCursor)
	return t.out.flush()
}

// layout fits the canvas to the current terminal size.
func (t *Terminal) layout() error {
	cols, rows, err := t.size()
	if err != nil {
		if t.started {
			return nil
		}
		cols, rows = defaultCols, defaultRows
	}
	if t.started && cols == t.cols && rows == t.rows {
		return nil
	}
	t.cols, t.rows = cols, rows

	// Each cell is one pixel wide and two pixels tall.
	scale := math.Min(float64(cols)/float64(t.width), float64(rows*2)/float64(t.height))
	canvasCols := max(1, int(float64(t.width)*scale))
	canvasRows := max(1, int(float64(t.height)*scale)/2)

	t.canvas.Resize(canvasCols, canvasRows)
	t.canvas.SetOffset((cols-canvasCols)/2, (rows-canvasRows)/2)
	t.canvas.Invalidate()
	t.out.setOffset(t.canvas.OffsetCol(), t.canvas.OffsetRow())

	if !t.started {
		t.out.writeString(seqHideCursor)
	}
	t.out.writeString(seqClearScreen)
	t.started = true
	return nil
}

// textCell returns the canvas cell where o starts.
func (t *Terminal) textCell(o overlay) (col, row int) {
	centerCol, row := t.canvas.LogicalToTerminal(float64(o.x)+float64(o.w)/2, float64(o.y)+float64(o.h)/2)
	col = max(0, centerCol-len(o.s)/2)
	return col, row
}

// dropTexts removes overlays intersecting the rectangle and marks their
// rows for repaint.
func (t *Terminal) dropTexts(x, y, w, h int) {
	kept := t.texts[:0]
	for _, o := range t.texts {
		if o.x < x+w && x < o.x+o.w && o.y < y+h && y < o.y+o.h {
			_, row := t.textCell(o)
			t.canvas.InvalidateRow(row)
			continue
		}
		kept = append(kept, o)
	}
	t.texts = kept
}
