package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/finansije-dev/finansije/internal/nav"
)

// FileName is the default config file name.
const FileName = "finansije.yaml"

// Config represents the top-level finansije.yaml configuration.
type Config struct {
	Currency     string             `yaml:"currency"`
	Navigation   NavigationConfig   `yaml:"navigation"`
	Descriptions DescriptionsConfig `yaml:"descriptions"`
	Log          LogConfig          `yaml:"log"`
}

// NavigationConfig lists page sections and the one shown for an empty fragment.
type NavigationConfig struct {
	DefaultSection string   `yaml:"default_section"`
	Sections       []string `yaml:"sections"`
}

// DescriptionsConfig holds default transaction descriptions.
type DescriptionsConfig struct {
	Deposit  string `yaml:"deposit"`
	Withdraw string `yaml:"withdraw"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Load reads a finansije.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the stock configuration.
func Default() *Config {
	sections := make([]string, len(nav.DefaultSections))
	copy(sections, nav.DefaultSections)
	return &Config{
		Currency: "RSD",
		Navigation: NavigationConfig{
			DefaultSection: nav.DefaultSection,
			Sections:       sections,
		},
		Descriptions: DescriptionsConfig{
			Deposit:  "Uplata",
			Withdraw: "Isplata",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
