package config

import (
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Settings are tool-wide settings read from the environment. Command line
// flags take precedence over them.
type Settings struct {
	Tolerance float64 `env:"PATHPOS_TOLERANCE" envDefault:"0.25"`
	Workers   int     `env:"PATHPOS_WORKERS"   envDefault:"4"`
	LogLevel  string  `env:"PATHPOS_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads and validates settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if !(s.Tolerance > 0) || math.IsInf(s.Tolerance, 0) {
		return fmt.Errorf("tolerance must be positive and finite, got %g", s.Tolerance)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if _, err := zapcore.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (s Settings) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
