// Package loop provides the main game loop and state management.
package loop

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/display"
	"github.com/tomz197/spacetilt/internal/object"
	"github.com/tomz197/spacetilt/internal/sensor"
)

// Logger is the logging the game needs. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
func (nopLogger) Error(interface{}, ...interface{}) {}

// Options configures a Game. Zero values select the defaults.
type Options struct {
	Clock      Clock      // Defaults to SystemClock
	Sleeper    Sleeper    // Defaults to Clock if it can sleep, else SystemClock
	Rand       *rand.Rand // Defaults to a time-seeded source
	Logger     Logger     // Defaults to discarding everything
	SplashPath string     // Defaults to config.SplashPath
}

// Game runs sessions back to back on one display and sensor.
type Game struct {
	display    display.Display
	accel      sensor.Accelerometer
	clock      Clock
	sleeper    Sleeper
	rng        *rand.Rand
	log        Logger
	splashPath string

	session *Session
}

// New creates a game drawing to d and steered by accel.
func New(d display.Display, accel sensor.Accelerometer, opts Options) *Game {
	g := &Game{
		display:    d,
		accel:      accel,
		clock:      opts.Clock,
		sleeper:    opts.Sleeper,
		rng:        opts.Rand,
		log:        opts.Logger,
		splashPath: opts.SplashPath,
	}
	if g.clock == nil {
		g.clock = SystemClock{}
	}
	if g.sleeper == nil {
		if s, ok := g.clock.(Sleeper); ok {
			g.sleeper = s
		} else {
			g.sleeper = SystemClock{}
		}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = nopLogger{}
	}
	if g.splashPath == "" {
		g.splashPath = config.SplashPath
	}
	return g
}

// Session returns the current session, or nil before the first one.
func (g *Game) Session() *Session {
	return g.session
}

// NewSession starts a fresh round: ship at rest in the center, empty
// field, timer at zero.
func (g *Game) NewSession() *Session {
	screen := object.NewScreen(g.display.Width(), g.display.Height())
	s := &Session{
		display: g.display,
		accel:   g.accel,
		clock:   g.clock,
		sleeper: g.sleeper,
		rng:     g.rng,
		log:     g.log,
		screen:  screen,
		ship:    object.NewShip(screen, g.rng),
		field:   object.NewField(),
		phase:   PhasePlaying,
		start:   g.clock.Now(),
	}
	g.session = s
	return s
}

// Run plays splash, session and game-over screen forever. It returns on a
// fatal error or when ctx is done; ctx is checked between frames.
func (g *Game) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := g.NewSession()
		s.phase = PhaseSplash
		if err := g.showSplash(); err != nil {
			g.log.Error("splash failed", "err", err)
			return err
		}
		s.start = g.clock.Now()
		s.phase = PhasePlaying
		g.log.Info("session started")
		if err := s.Run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			g.log.Error("session failed", "err", err)
			return err
		}
		g.log.Info("game over", "survived", formatTimer(s.final), "frames", s.frames)
	}
}

// Run steps frames at the frame budget until the explosion finishes, then
// shows the game-over screen.
func (s *Session) Run(ctx context.Context) error {
	sched := NewScheduler(s.clock, s.sleeper, config.FrameBudget)
	for s.phase != PhaseGameOver {
		if err := ctx.Err(); err != nil {
			return err
		}
		sched.Begin()
		if err := s.Step(); err != nil {
			return err
		}
		if err := display.Flush(s.display); err != nil {
			return errors.Wrap(err, "present frame")
		}
		sched.Wait()
	}
	return s.showGameOver()
}
