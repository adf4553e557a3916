// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. ALMANAC_LOG_LEVEL.
const EnvPrefix = "ALMANAC"

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds all environment-based configuration.
type Config struct {
	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is the log output format (console or json).
	// Env: LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Mode selects which answers solve computes (points, ranges or both).
	// Env: MODE (default: both)
	Mode string `envconfig:"MODE" default:"both"`

	// Validate rejects almanacs with overlapping rules before solving.
	// Env: VALIDATE (default: true)
	Validate bool `envconfig:"VALIDATE" default:"true"`

	// Input is the almanac path used when none is given on the command line.
	// Env: INPUT
	Input string `envconfig:"INPUT"`
}

// Load reads envFile (if it exists) and then the environment.
// Variables already set in the environment win over the file.
// Values are not checked; callers apply their overrides and then call Check.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	return cfg, nil
}

// Check rejects unknown enumerated values.
func (c Config) Check() error {
	switch strings.ToLower(c.LogFormat) {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: want %s or %s", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}

	return nil
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// If the file does not exist, it silently returns nil (not an error).
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}
