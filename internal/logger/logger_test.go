package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizfx/internal/config"
)

func TestProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&config.Config{Env: "production", LogLevel: "debug"}, &buf)
	l.Debug().Int("questions", 3).Msg("loaded")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "loaded", rec["message"])
	assert.Equal(t, float64(3), rec["questions"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&config.Config{Env: "production", LogLevel: "warn"}, &buf)
	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&config.Config{LogLevel: "chatty"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
	l.Info().Msg("console")
	assert.Contains(t, buf.String(), "console")
}
