// Package config loads CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "PRETTYTABLE_CONFIG"

// ErrInvalidConfig is returned when the config file cannot be parsed.
var ErrInvalidConfig = errors.New("invalid config file")

// Config holds default values for CLI flags. Empty fields leave the
// built-in defaults alone; flags given on the command line win.
type Config struct {
	Format      string `yaml:"format,omitempty"`
	Border      string `yaml:"border,omitempty"`
	BorderChars string `yaml:"border_chars,omitempty"`
	Align       string `yaml:"align,omitempty"`
	VAlign      string `yaml:"valign,omitempty"`
	HRules      string `yaml:"hrules,omitempty"`
	VRules      string `yaml:"vrules,omitempty"`
	HeaderStyle string `yaml:"header_style,omitempty"`

	// Pointers tell "unset" apart from zero.
	Padding *int  `yaml:"padding,omitempty"`
	Header  *bool `yaml:"header,omitempty"`

	MinWidth      int `yaml:"min_width,omitempty"`
	MaxWidth      int `yaml:"max_width,omitempty"`
	MaxTableWidth int `yaml:"max_table_width,omitempty"`

	LogFormat string `yaml:"log_format,omitempty"`
}

// configPathFunc is the function used to get the default config path.
// It can be overridden for testing.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns $PRETTYTABLE_CONFIG or
// ~/.config/prettytable/config.yaml.
func defaultConfigPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "prettytable", "config.yaml"), nil
}

// DefaultConfigPath returns the path Load reads.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path. A missing file yields
// an empty config.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return parse(path, data)
}

// LoadFile loads config from a path that must exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}
