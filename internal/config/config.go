package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string    `mapstructure:"env"`       // local, dev, production
	LogLevel  string    `mapstructure:"log_level"` // zerolog level name
	Seed      uint64    `mapstructure:"seed"`      // 0 picks a seed from the clock
	Window    Window    `mapstructure:"window"`
	Questions Questions `mapstructure:"questions"`
	Quiz      Quiz      `mapstructure:"quiz"`
	Effects   Effects   `mapstructure:"effects"`
	Audio     Audio     `mapstructure:"audio"`
}

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// Questions selects the record source: embedded, csv or sqlite.
type Questions struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
	Table  string `mapstructure:"table"`
}

type Quiz struct {
	AnswerDelay time.Duration `mapstructure:"answer_delay"`
}

type Effects struct {
	ResultCount   int `mapstructure:"result_count"`
	CursorCadence int `mapstructure:"cursor_cadence"`
	MaxCursor     int `mapstructure:"max_cursor"`
}

type Audio struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// EnvPrefix namespaces environment overrides, e.g. QUIZFX_WINDOW_WIDTH.
const EnvPrefix = "QUIZFX"

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("window.title", "Quiz")
	v.SetDefault("questions.source", "embedded")
	v.SetDefault("questions.path", "")
	v.SetDefault("questions.table", "questions")
	v.SetDefault("quiz.answer_delay", "1500ms")
	v.SetDefault("effects.result_count", 100)
	v.SetDefault("effects.cursor_cadence", 5)
	v.SetDefault("effects.max_cursor", 2000)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.58)
}

// Load reads ./config/config.yaml when present and applies QUIZFX_* overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	return load(v)
}

// LoadFile reads an explicit config file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges that would otherwise surface as a broken window.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	switch c.Questions.Source {
	case "embedded":
	case "csv", "sqlite":
		if c.Questions.Path == "" {
			return fmt.Errorf("%w: questions.path required for %s source", ErrInvalidConfig, c.Questions.Source)
		}
	default:
		return fmt.Errorf("%w: unknown questions.source %q", ErrInvalidConfig, c.Questions.Source)
	}
	if c.Quiz.AnswerDelay <= 0 {
		return fmt.Errorf("%w: quiz.answer_delay must be positive", ErrInvalidConfig)
	}
	if c.Effects.ResultCount <= 0 || c.Effects.CursorCadence <= 0 || c.Effects.MaxCursor <= 0 {
		return fmt.Errorf("%w: effects.result_count, cursor_cadence and max_cursor must be positive", ErrInvalidConfig)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v not in [0,1]", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

func (c *Config) Production() bool {
	return c.Env == "production"
}
