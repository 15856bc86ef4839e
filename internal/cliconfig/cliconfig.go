// Package cliconfig layers CLI configuration from defaults, an optional
// settings file, and STUBWIRE_* environment variables.
package cliconfig

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvSettings names the environment variable pointing at the settings file.
const EnvSettings = "STUBWIRE_SETTINGS"

// Config holds tool-level settings shared by all commands.
type Config struct {
	// Fixture is the default fixture file path.
	Fixture string `koanf:"fixture"`

	// Unit selects a nested scope inside the fixture by name.
	Unit string `koanf:"unit"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`

	// LogFormat is the log output format (text, json).
	LogFormat string `koanf:"log_format"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds a Config by layering, lowest precedence first: defaults, a
// YAML settings file named by STUBWIRE_SETTINGS, then STUBWIRE_* environment
// variables (STUBWIRE_FIXTURE, STUBWIRE_LOG_LEVEL, ...).
func Load() (Config, error) {
	cfg := Defaults()

	k := koanf.New(".")
	if path := os.Getenv(EnvSettings); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, err
		}
	}

	envProvider := env.Provider("STUBWIRE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "stubwire_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return cfg, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, err
	}
	return cfg, nil
}
