package display

import (
	"image/color"

	"github.com/tomz197/spacetilt/internal/draw"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpPolygon OpKind = iota
	OpFillRect
	OpText
	OpFill
	OpImage
)

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind  OpKind
	Shape draw.Shape
	X, Y  int
	W, H  int
	Color color.RGBA
	Angle float64
	Font  Font
	Text  string
	Path  string
}

// Recorder is a Display that records every call instead of drawing.
// It is used to drive the game headless and to assert on rendering in tests.
type Recorder struct {
	W, H int

	// ImageErr is returned from Image when set.
	ImageErr error
	Flushes  int

	ops []Op
}

var _ Display = (*Recorder)(nil)

// NewRecorder creates a recorder for a w×h screen.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Polygon(shape draw.Shape, x, y int, c color.RGBA, angle float64) {
	r.ops = append(r.ops, Op{Kind: OpPolygon, Shape: shape, X: x, Y: y, Color: c, Angle: angle})
}

func (r *Recorder) FillRect(x, y, w, h int, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Text(f Font, s string, x, y int, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpText, Font: f, Text: s, X: x, Y: y, Color: c})
}

func (r *Recorder) Fill(c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpFill, Color: c})
}

func (r *Recorder) Image(path string, x, y int) error {
	r.ops = append(r.ops, Op{Kind: OpImage, Path: path, X: x, Y: y})
	return r.ImageErr
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

// Flush counts presented frames.
func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// OpsOf returns the recorded calls of one kind.
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
