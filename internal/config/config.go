package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"

	"github.com/rover-sim/internal/commands"
	"github.com/rover-sim/internal/rover"
)

// Config represents a complete rover scenario
type Config struct {
	Grid      GridConfig    `yaml:"grid" toml:"grid"`
	Obstacles []Point       `yaml:"obstacles" toml:"obstacles"`
	Rover     RoverConfig   `yaml:"rover" toml:"rover"`
	Commands  []string      `yaml:"commands" toml:"commands"`
	Logging   LoggingConfig `yaml:"logging" toml:"logging"`
}

// GridConfig holds the grid dimensions
type GridConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Point is a single cell coordinate
type Point struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

// RoverConfig holds the rover's seed position and heading
type RoverConfig struct {
	X       int    `yaml:"x" toml:"x"`
	Y       int    `yaml:"y" toml:"y"`
	Heading string `yaml:"heading" toml:"heading"`
}

// LoggingConfig holds log level and the optional rotating log file
type LoggingConfig struct {
	Level      string `yaml:"level" toml:"level"`
	NoColor    bool   `yaml:"noColor" toml:"no_color"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"maxBackups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"maxAgeDays" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// envOverrides holds raw environment values
type envOverrides struct {
	ConfigPath string   `env:"ROVER_CONFIG"`
	Commands   []string `env:"ROVER_COMMANDS" envSeparator:","`
	LogLevel   string   `env:"ROVER_LOG_LEVEL"`
	LogFile    string   `env:"ROVER_LOG_FILE"`
	LogNoColor bool     `env:"ROVER_LOG_NOCOLOR"`
}

// Load builds the configuration from defaults, the optional scenario file
// named by ROVER_CONFIG and environment overrides
func Load() (*Config, error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg := getDefaultConfig()

	if overrides.ConfigPath != "" {
		if err := loadFromFile(cfg, overrides.ConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load scenario from %s: %w", overrides.ConfigPath, err)
		}
	}

	applyEnvOverrides(cfg, overrides)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getDefaultConfig returns the built-in scenario
func getDefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  10,
			Height: 10,
		},
		Obstacles: []Point{
			{X: 8, Y: 6},
			{X: 4, Y: 9},
		},
		Rover: RoverConfig{
			X:       1,
			Y:       3,
			Heading: "S",
		},
		Commands: []string{"move", "right", "move", "left", "move"},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// loadFromFile overlays a YAML or TOML scenario file onto cfg. Fields absent
// from the file keep their current values.
func loadFromFile(cfg *Config, filename string) error {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		if _, err := toml.DecodeFile(filename, cfg); err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
		return nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config, overrides envOverrides) {
	if len(overrides.Commands) > 0 {
		cfg.Commands = overrides.Commands
	}
	if overrides.LogLevel != "" {
		cfg.Logging.Level = overrides.LogLevel
	}
	if overrides.LogFile != "" {
		cfg.Logging.File = overrides.LogFile
	}
	if overrides.LogNoColor {
		cfg.Logging.NoColor = true
	}
}

// validateConfig validates the configuration. The rover seed and obstacle
// coordinates are not checked.
func validateConfig(cfg *Config) error {
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		return fmt.Errorf("invalid grid size %dx%d, width and height must be positive", cfg.Grid.Width, cfg.Grid.Height)
	}

	if _, err := rover.ParseHeading(cfg.Rover.Heading); err != nil {
		return fmt.Errorf("rover: %w", err)
	}

	if err := commands.DefaultRegistry().Validate(cfg.Commands); err != nil {
		return fmt.Errorf("commands: %w", err)
	}

	validLevels := []string{"", "trace", "debug", "info", "warn", "warning", "error", "off", "disabled"}
	if !contains(validLevels, strings.ToLower(strings.TrimSpace(cfg.Logging.Level))) {
		return fmt.Errorf("invalid log level %s, must be one of: %v", cfg.Logging.Level, validLevels[1:])
	}

	if cfg.Logging.MaxSizeMB < 0 || cfg.Logging.MaxBackups < 0 || cfg.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}

	return nil
}

// contains checks if a string slice contains a specific string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
