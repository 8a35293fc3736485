package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration. Environment variables supply the
// defaults; command-line flags override them in main.
type Config struct {
	Seed      int64  `env:"CULT_SEED" envDefault:"0"`
	Classic   bool   `env:"CULT_CLASSIC" envDefault:"false"`
	LogFile   string `env:"CULT_LOG_FILE"`
	LogLevel  string `env:"CULT_LOG_LEVEL" envDefault:"info"`
	Width     int    `env:"CULT_WIDTH" envDefault:"800"`
	Height    int    `env:"CULT_HEIGHT" envDefault:"600"`
	AssetsDir string `env:"CULT_ASSETS_DIR" envDefault:"assets"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

const (
	minWidth  = 800
	minHeight = 600
)

func (c Config) Validate() error {
	if c.Width < minWidth {
		return fmt.Errorf("width must be at least %d, got %d", minWidth, c.Width)
	}
	if c.Height < minHeight {
		return fmt.Errorf("height must be at least %d, got %d", minHeight, c.Height)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

var ErrUnknownLevel = errors.New("unknown log level")

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// NewLogger opens the configured log file. With no file set, records are
// discarded since the front end owns the terminal. The returned closer must
// be called on exit.
func (c Config) NewLogger() (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if c.LogFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
