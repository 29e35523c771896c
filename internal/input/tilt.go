package input

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/tomz197/spacetilt/internal/sensor"
)

// DefaultTiltStrength is the simulated tilt per held key, in g.
const DefaultTiltStrength = 0.35

// Tilt simulates the board's accelerometer from keyboard input.
//
// The sensor is mounted rotated relative to the screen: tilting the device
// "up" produces positive X and tilting it "right" produces positive Y.
// Z reports 1 g of gravity.
type Tilt struct {
	stream   *Stream
	strength float64

	mu     sync.Mutex
	onQuit func()
	quit   bool
}

var _ sensor.Accelerometer = (*Tilt)(nil)

// NewTilt creates a tilt sensor fed by stream. strength <= 0 selects
// DefaultTiltStrength.
func NewTilt(stream *Stream, strength float64) *Tilt {
	if strength <= 0 {
		strength = DefaultTiltStrength
	}
	return &Tilt{stream: stream, strength: strength}
}

// OnQuit registers fn to run once when the quit key is pressed.
func (t *Tilt) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// ReadAccelXYZ returns the simulated acceleration. Once the input stream
// has ended the sensor is unavailable.
func (t *Tilt) ReadAccelXYZ() (x, y, z float64, err error) {
	in := ReadInput(t.stream)
	if in.Quit {
		t.fireQuit()
	}
	if t.stream.Closed() {
		return 0, 0, 0, errors.Wrap(sensor.ErrUnavailable, "keyboard input closed")
	}

	if in.Up {
		x += t.strength
	}
	if in.Down {
		x -= t.strength
	}
	if in.Right {
		y += t.strength
	}
	if in.Left {
		y -= t.strength
	}
	return x, y, 1, nil
}

func (t *Tilt) fireQuit() {
	t.mu.Lock()
	fn := t.onQuit
	already := t.quit
	t.quit = true
	t.mu.Unlock()
	if fn != nil && !already {
		fn()
	}
}
