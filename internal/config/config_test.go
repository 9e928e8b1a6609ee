package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1500, cfg.Player.RevealDelayMillis)
	assert.False(t, cfg.Player.NoColor)
	assert.Empty(t, cfg.History.DSN)
	assert.Equal(t, 1500*time.Millisecond, cfg.RevealDelay())
}

func TestLoad_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizcraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
player:
  reveal_delay_millis: 500
  no_color: true
history:
  dsn: postgres://localhost/quizcraft
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Player.RevealDelayMillis)
	assert.True(t, cfg.Player.NoColor)
	assert.Equal(t, "postgres://localhost/quizcraft", cfg.History.DSN)
	assert.Equal(t, 500*time.Millisecond, cfg.RevealDelay())
}

func TestLoad_ZeroDelayFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizcraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  no_color: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1500, cfg.Player.RevealDelayMillis)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "broken yaml", data: "player: ["},
		{name: "negative delay", data: "player:\n  reveal_delay_millis: -10\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "quizcraft.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.data), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
