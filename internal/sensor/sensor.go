// Package sensor reads tilt from the board's accelerometer.
package sensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Accelerometer reports acceleration along three axes in g.
type Accelerometer interface {
	ReadAccelXYZ() (x, y, z float64, err error)
}

// ErrUnavailable is matched by every read failure.
var ErrUnavailable = errors.New("sensor: accelerometer unavailable")

// InitError reports a failed identity check or bus failure at startup.
type InitError struct {
	Addr uint16
	ID   byte // value read from the identity register, if any
	Want byte
	Err  error
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sensor: init device at 0x%02X: %v", e.Addr, e.Err)
	}
	return fmt.Sprintf("sensor: device at 0x%02X reports id 0x%02X, want 0x%02X", e.Addr, e.ID, e.Want)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// unavailable wraps a bus error so it matches ErrUnavailable.
func unavailable(err error, op string) error {
	return &readError{op: op, err: err}
}

type readError struct {
	op  string
	err error
}

func (e *readError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrUnavailable, e.op, e.err)
}

func (e *readError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *readError) Unwrap() error {
	return e.err
}
