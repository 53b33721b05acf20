// Package config loads the optional client YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values applied when the config file is absent or a field is
// left unset.
const (
	DefaultLogLevel     = "info"
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

// Config holds the parsed client configuration. All fields are
// optional; zero values represent defaults.
type Config struct {
	RawLogLevel string `yaml:"log_level"`
	Window      Window `yaml:"window"`
}

// Window overrides the initial main-window dimensions.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogLevel returns the configured log level or the default.
func (c *Config) LogLevel() string {
	if c.RawLogLevel != "" {
		return c.RawLogLevel
	}
	return DefaultLogLevel
}

// Size returns the configured window dimensions or the defaults.
func (w Window) Size() (width, height float32) {
	width, height = DefaultWindowWidth, DefaultWindowHeight
	if w.Width > 0 {
		width = float32(w.Width)
	}
	if w.Height > 0 {
		height = float32(w.Height)
	}
	return width, height
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/electron/config.yml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "electron", "config.yml"), nil
}

// Load reads and parses the config file at path, or the default
// location when path is empty. A missing file is not an error; it
// yields a config where every accessor returns its default.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
