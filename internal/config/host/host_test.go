package host

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := load(filepath.Join(t.TempDir(), ".env"), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, "2222", s.SSH.Port)
	assert.Equal(t, 0.35, s.Game.Tilt)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "spacetilt.yaml", `
ssh:
  port: "2323"
  host_key: /tmp/key
web:
  display_host: tilt.example.com
game:
  tilt: 0.5
  log_level: debug
`)
	t.Setenv("SSH_PORT", "2424")

	s, err := load(filepath.Join(dir, ".env"), path)
	require.NoError(t, err)

	assert.Equal(t, "2424", s.SSH.Port, "environment wins over the file")
	assert.Equal(t, "/tmp/key", s.SSH.HostKey)
	assert.Equal(t, "::", s.SSH.Host, "unset keys keep defaults")
	assert.Equal(t, "tilt.example.com", s.Web.DisplayHost)
	assert.Equal(t, 0.5, s.Game.Tilt)

	lvl, err := s.Game.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}

func TestDotEnvBelowRealEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "WEB_PORT=9090\nSPACETILT_TILT=0.2\nSSH_HOST=0.0.0.0\n")
	t.Setenv("SSH_HOST", "127.0.0.1")

	s, err := load(envFile, "")
	require.NoError(t, err)
	assert.Equal(t, "9090", s.Web.Port)
	assert.Equal(t, 0.2, s.Game.Tilt)
	assert.Equal(t, "127.0.0.1", s.SSH.Host)

	_, set := os.LookupEnv("WEB_PORT")
	assert.False(t, set, ".env does not leak into the process environment")
}

func TestConfigPathFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", "game:\n  splash: art/title.png\n")
	t.Setenv("SPACETILT_CONFIG", path)

	s, err := load(filepath.Join(dir, ".env"), "")
	require.NoError(t, err)
	assert.Equal(t, "art/title.png", s.Game.Splash)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := load(filepath.Join(dir, ".env"), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "ssh: [unterminated")
	_, err = load(filepath.Join(dir, ".env"), bad)
	assert.Error(t, err)

	t.Setenv("SPACETILT_TILT", "steep")
	_, err = load(filepath.Join(dir, ".env"), "")
	assert.Error(t, err)
}

func TestEmptyYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.yaml", "")

	s, err := load(filepath.Join(dir, ".env"), path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestBadLogLevel(t *testing.T) {
	_, err := Game{LogLevel: "chatty"}.Level()
	assert.Error(t, err)
}

func TestAssetsSource(t *testing.T) {
	embedded := fstest.MapFS{}
	assert.Equal(t, embedded, Defaults().Game.Assets(embedded))

	custom := Game{Splash: "art/title.png"}
	assert.NotEqual(t, embedded, custom.Assets(embedded))
}
