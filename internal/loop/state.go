package loop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tomz197/spacetilt/internal/display"
	"github.com/tomz197/spacetilt/internal/object"
	"github.com/tomz197/spacetilt/internal/sensor"
)

// Phase represents the current game phase.
type Phase int

const (
	PhaseSplash    Phase = iota // Splash image on screen
	PhasePlaying                // Ship under control
	PhaseExploding              // Ship hit, explosion animating
	PhaseGameOver               // Final time on screen
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhasePlaying:
		return "playing"
	case PhaseExploding:
		return "exploding"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session holds the state of one round, from the first frame until the
// game-over screen. Nothing in it is shared between sessions.
type Session struct {
	display display.Display
	accel   sensor.Accelerometer
	clock   Clock
	sleeper Sleeper
	rng     *rand.Rand
	log     Logger

	screen object.Screen
	ship   *object.Ship
	field  *object.Field
	phase  Phase

	start     time.Time     // Timer origin
	final     time.Duration // Survival time frozen at the hit
	timerText string        // Last timer text drawn
	frames    int
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Ship returns the player's ship.
func (s *Session) Ship() *object.Ship {
	return s.ship
}

// Field returns the asteroid field.
func (s *Session) Field() *object.Field {
	return s.field
}

// Frames returns the number of frames stepped so far.
func (s *Session) Frames() int {
	return s.frames
}

// TimerText returns the timer text currently on screen.
func (s *Session) TimerText() string {
	return s.timerText
}

// SurvivalTime returns the time survived. It is frozen once the ship is hit.
func (s *Session) SurvivalTime() time.Duration {
	return s.final
}

// formatTimer renders d as "Time: MM:SS", truncated to whole seconds.
func formatTimer(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("Time: %02d:%02d", secs/60, secs%60)
}
