// Package config loads server and calibration settings from a YAML file,
// with every field optional and defaulted.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"aware/internal/catalog"
	"aware/internal/document"
	"aware/internal/scoring"
)

// Config is the full runtime configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Calibration CalibrationConfig `yaml:"calibration"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

// CalibrationConfig overlays selected scoring constants. Unset maps keep the
// built-in values.
type CalibrationConfig struct {
	Weights map[string]float64 `yaml:"weights"`
	Caps    map[string]float64 `yaml:"caps"`
	Priors  map[string]float64 `yaml:"priors"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    10 << 20,
			AllowedOrigins:  []string{"*"},
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults; the AWARE_CONFIG environment variable overrides path.
func Load(path string) (Config, error) {
	cfg := Default()
	if env := os.Getenv("AWARE_CONFIG"); env != "" {
		path = env
	}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Scoring applies the calibration overlay to the built-in tables and
// validates the result.
func (c Config) Scoring() (scoring.Calibration, error) {
	cal := scoring.Default()
	for k, v := range c.Calibration.Weights {
		cal.Weights[catalog.Category(k)] = v
	}
	for k, v := range c.Calibration.Caps {
		cal.Caps[catalog.Category(k)] = v
	}
	for k, v := range c.Calibration.Priors {
		cal.Priors[document.Type(k)] = v
	}
	if err := cal.Validate(); err != nil {
		return cal, err
	}
	return cal, nil
}
