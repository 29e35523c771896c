package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/tomz197/spacetilt"
	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/config/host"
	"github.com/tomz197/spacetilt/internal/display/terminal"
	"github.com/tomz197/spacetilt/internal/input"
	"github.com/tomz197/spacetilt/internal/loop"
)

func main() {
	settings, err := host.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(settings.Game)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(settings, logger); err != nil {
		logger.Error("game stopped", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(settings host.Settings, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "enable raw mode")
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stream := input.StartStream(bufio.NewReader(os.Stdin))
	tilt := input.NewTilt(stream, settings.Game.Tilt)
	tilt.OnQuit(cancel)

	screen := terminal.New(os.Stdout, config.ScreenWidth, config.ScreenHeight, terminal.Options{
		Assets: settings.Game.Assets(spacetilt.Assets),
	})
	defer screen.Close()

	game := loop.New(screen, tilt, loop.Options{
		Logger:     logger,
		SplashPath: settings.Game.Splash,
	})
	err = game.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newLogger logs to the configured file. The terminal is the game screen,
// so without a file logs are discarded.
func newLogger(g host.Game) (*log.Logger, func(), error) {
	level, err := g.Level()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "spacetilt",
	})
	return logger, closeFn, nil
}
