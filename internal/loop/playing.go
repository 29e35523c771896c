package loop

import (
	"time"

	"github.com/pkg/errors"

	"github.com/tomz197/spacetilt/internal/draw"
	"github.com/tomz197/spacetilt/internal/object"
)

// Step runs one frame: timer, field refill, ship erase, then the work of
// the current phase. Drawing is left unflushed.
func (s *Session) Step() error {
	now := s.clock.Now()
	s.frames++

	elapsed := s.final
	if s.phase == PhasePlaying {
		elapsed = now.Sub(s.start)
	}
	s.drawTimer(elapsed)

	if s.field.Replenish(s.rng, s.screen) {
		s.log.Debug("asteroids spawned", "count", s.field.Len())
	}
	s.ship.Draw(s.display, draw.Black)

	switch s.phase {
	case PhasePlaying:
		return s.stepPlaying(elapsed)
	case PhaseExploding:
		s.stepExploding(now)
	}
	return nil
}

// stepPlaying steers the ship from the accelerometer and moves the field.
func (s *Session) stepPlaying(elapsed time.Duration) error {
	ax, ay, _, err := s.accel.ReadAccelXYZ()
	if err != nil {
		return errors.Wrap(err, "read tilt")
	}
	s.ship.Update(s.display, s.screen, ax, ay)

	if s.field.Update(s.display, s.screen, &s.ship.Poly) {
		s.final = elapsed
		s.phase = PhaseExploding
		s.log.Info("ship hit", "survived", formatTimer(elapsed), "frame", s.frames)
	}
	return nil
}

// stepExploding animates the explosion while the asteroids keep moving.
func (s *Session) stepExploding(now time.Time) {
	done := object.Explode(s.display, s.screen, &s.ship.Poly)
	s.field.Update(s.display, s.screen, &s.ship.Poly)
	if done {
		s.start = now
		s.phase = PhaseGameOver
	}
}
