// Package host loads the settings of the terminal, SSH and web builds.
// The firmware has none of these and never imports it.
package host

import (
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tomz197/spacetilt/internal/config"
	"github.com/tomz197/spacetilt/internal/input"
)

// Settings holds everything a host build can tune.
type Settings struct {
	SSH  SSH  `yaml:"ssh"`
	Web  Web  `yaml:"web"`
	Game Game `yaml:"game"`
}

// SSH configures the wish server.
type SSH struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

// Web configures the landing page server.
type Web struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	DisplayHost string `yaml:"display_host"` // SSH host shown to visitors
}

// Game configures the game itself.
type Game struct {
	Splash   string  `yaml:"splash"`
	Tilt     float64 `yaml:"tilt"` // Simulated g per held key
	LogLevel string  `yaml:"log_level"`
	LogFile  string  `yaml:"log_file"` // Local terminal only; empty discards logs
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		SSH: SSH{
			Host:    "::",
			Port:    "2222",
			HostKey: "/app/keys/host_key",
		},
		Web: Web{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
		Game: Game{
			Splash:   config.SplashPath,
			Tilt:     input.DefaultTiltStrength,
			LogLevel: "info",
		},
	}
}

// Load builds the settings from defaults, then the YAML file at path (if
// path is empty, SPACETILT_CONFIG names it; no file is fine), then the
// environment. Variables in ./.env count as environment but never override
// real ones.
func Load(path string) (Settings, error) {
	return load(".env", path)
}

func load(envFile, path string) (Settings, error) {
	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, errors.Wrapf(err, "read %s", envFile)
	}
	env := func(key, fallback string) string {
		if v, ok := dotenv[key]; ok {
			fallback = v
		}
		return config.GetEnv(key, fallback)
	}

	s := Defaults()
	if path == "" {
		path = env("SPACETILT_CONFIG", "")
	}
	if path != "" {
		if err := s.readYAML(path); err != nil {
			return Settings{}, err
		}
	}

	s.SSH.Host = env("SSH_HOST", s.SSH.Host)
	s.SSH.Port = env("SSH_PORT", s.SSH.Port)
	s.SSH.HostKey = env("SSH_HOST_KEY", s.SSH.HostKey)
	s.Web.Host = env("WEB_HOST", s.Web.Host)
	s.Web.Port = env("WEB_PORT", s.Web.Port)
	s.Web.DisplayHost = env("SSH_DISPLAY_HOST", s.Web.DisplayHost)
	s.Game.Splash = env("SPACETILT_SPLASH", s.Game.Splash)
	s.Game.LogLevel = env("SPACETILT_LOG_LEVEL", s.Game.LogLevel)
	s.Game.LogFile = env("SPACETILT_LOG_FILE", s.Game.LogFile)

	if v := env("SPACETILT_TILT", ""); v != "" {
		tilt, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, errors.Wrapf(err, "SPACETILT_TILT=%q", v)
		}
		s.Game.Tilt = tilt
	}
	return s, nil
}

func (s *Settings) readYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

// Level returns the configured log level.
func (g Game) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrapf(err, "log level %q", g.LogLevel)
	}
	return lvl, nil
}

// Assets returns the filesystem the splash is read from: embedded unless a
// custom splash is configured, which is then read relative to the working
// directory.
func (g Game) Assets(embedded fs.FS) fs.FS {
	if g.Splash == config.SplashPath {
		return embedded
	}
	return os.DirFS(".")
}
