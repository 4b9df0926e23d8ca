// Package config loads sasseval settings from sasseval.json (with
// comments) or sasseval.yaml.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/sasseval/internal/log"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config holds evaluator and discovery settings.
type Config struct {
	// Precision is the number of fractional digits numbers render with
	Precision int `json:"precision" yaml:"precision"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"logLevel" yaml:"logLevel"`
	// Include lists glob patterns of stylesheets to evaluate
	Include []string `json:"include" yaml:"include"`
	// Exclude lists glob patterns removed from Include
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// DefaultPrecision matches dart-sass.
const DefaultPrecision = 10

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Precision: DefaultPrecision,
		LogLevel:  "info",
		Include:   []string{"**/*.css", "**/*.scss"},
	}
}

// ErrNotFound is returned by Find when no config file exists.
var ErrNotFound = errors.New("no sasseval config found")

// Names are the config file names Find looks for, in order.
var Names = []string{
	"sasseval.json",
	"sasseval.yaml",
	"sasseval.yml",
	filepath.Join(".config", "sasseval.json"),
	filepath.Join(".config", "sasseval.yaml"),
	filepath.Join(".config", "sasseval.yml"),
}

// Find returns the path of the first config file in dir.
func Find(dir string) (string, error) {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Load reads the config file at path. Fields the file leaves out keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		// JSON with comments and trailing commas
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	log.Debug("Loaded config from %s", path)
	return cfg, nil
}

// LoadDir loads the config found in dir, or the defaults when there is none.
func LoadDir(dir string) (*Config, error) {
	path, err := Find(dir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Validate reports settings that cannot be applied.
func (c *Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}
