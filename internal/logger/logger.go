package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"quizfx/internal/config"
)

// New builds the application logger: JSON in production, coloured console
// output everywhere else.
func New(cfg *config.Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		lvl = zerolog.InfoLevel
	}
	if !cfg.Production() {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
