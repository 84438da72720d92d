package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, "embedded", cfg.Questions.Source)
	assert.Equal(t, 1500*time.Millisecond, cfg.Quiz.AnswerDelay)
	assert.Equal(t, 100, cfg.Effects.ResultCount)
	assert.Equal(t, 5, cfg.Effects.CursorCadence)
	assert.True(t, cfg.Audio.Enabled)
	assert.False(t, cfg.Production())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
env: production
window:
  width: 640
  height: 480
questions:
  source: csv
  path: data/quiz.csv
quiz:
  answer_delay: 2s
audio:
  enabled: false
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "data/quiz.csv", cfg.Questions.Path)
	assert.Equal(t, 2*time.Second, cfg.Quiz.AnswerDelay)
	assert.False(t, cfg.Audio.Enabled)
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUIZFX_WINDOW_WIDTH", "1280")
	t.Setenv("QUIZFX_SEED", "77")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, uint64(77), cfg.Seed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad size", "window:\n  width: 0\n"},
		{"unknown source", "questions:\n  source: postgres\n"},
		{"csv without path", "questions:\n  source: csv\n"},
		{"zero delay", "quiz:\n  answer_delay: 0s\n"},
		{"loud", "audio:\n  volume: 2\n"},
		{"no result batch", "effects:\n  result_count: 0\n"},
		{"no cursor cap", "effects:\n  max_cursor: 0\n"},
		{"zero cadence", "effects:\n  cursor_cadence: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadFileMalformed(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "window: [unclosed"))
	assert.Error(t, err)
}
