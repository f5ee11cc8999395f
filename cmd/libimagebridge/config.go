package main

import (
	"os"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

type Config struct {
	LogLevel string `env:"IMAGEBRIDGE_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
}

func DefaultConfig() Config {
	return Config{LogLevel: string(logging.LevelInfo)}
}

// LoadConfig reads the configuration from the environment of the host process.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Apply configures the default logger.
// The host process owns stdout, so logs go to stderr.
func (c Config) Apply() {
	logger.Configure(func(l *logging.Logger) {
		l.Out = os.Stderr
		l.Level = logging.Level(c.LogLevel)
	})
}
