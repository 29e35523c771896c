package loop

import (
	"time"

	"github.com/pkg/errors"

	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/display"
	"github.com/tomz197/spacetilt/internal/draw"
)

// showSplash draws the splash image, holds it and clears the screen.
// A missing image skips the splash.
func (g *Game) showSplash() error {
	err := g.display.Image(g.splashPath, 0, 0)
	switch {
	case errors.Is(err, display.ErrAssetMissing):
		g.log.Warn("splash skipped", "path", g.splashPath, "err", err)
	case err != nil:
		return errors.Wrap(err, "draw splash")
	default:
		if err := display.Flush(g.display); err != nil {
			return errors.Wrap(err, "present splash")
		}
		g.sleeper.Sleep(config.SplashDuration)
	}
	g.display.Fill(draw.Black)
	return nil
}

// drawTimer redraws the timer band when the text has changed.
func (s *Session) drawTimer(elapsed time.Duration) {
	text := formatTimer(elapsed)
	if text == s.timerText {
		return
	}
	s.timerText = text

	w, h := s.display.Width(), s.display.Height()
	band := config.TimerBandHeight
	s.display.FillRect(0, h-band, w, band, draw.Black)
	s.display.Text(display.FontSmall, text, (w-display.FontSmall.TextWidth(text))/2, h-band, draw.White)
}

// showGameOver draws the final screen and holds it.
func (s *Session) showGameOver() error {
	w, h := s.display.Width(), s.display.Height()
	s.display.Fill(draw.Black)

	title := "GAME OVER"
	s.display.Text(display.FontLarge, title, (w-display.FontLarge.TextWidth(title))/2, h/2-10, draw.Red)

	text := formatTimer(s.final)
	s.display.Text(display.FontSmall, text, (w-display.FontSmall.TextWidth(text))/2, h/2+20, draw.White)

	if err := display.Flush(s.display); err != nil {
		return errors.Wrap(err, "present game over")
	}
	s.sleeper.Sleep(config.GameOverDuration)
	return nil
}
