package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Display  DisplayConfig  `json:"display"`
	Coaching CoachingConfig `json:"coaching"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
	PaceUnit     string `json:"pace_unit"`
}

// CoachingConfig holds knobs for the recommendation pipeline
type CoachingConfig struct {
	// RecentRunsLimit is how many recent runs are fed to the engine.
	RecentRunsLimit int `json:"recent_runs_limit"`
	// ConsistencyWeeks is the window for the level progress bar.
	ConsistencyWeeks int `json:"consistency_weeks"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			DistanceUnit: "km",
			PaceUnit:     "min/km",
		},
		Coaching: CoachingConfig{
			RecentRunsLimit:  50,
			ConsistencyWeeks: 8,
		},
	}
}

// Load reads the configuration from ~/.runright/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if cfg.Display.PaceUnit == "" {
		cfg.Display.PaceUnit = defaults.Display.PaceUnit
	}
	if cfg.Coaching.RecentRunsLimit == 0 {
		cfg.Coaching.RecentRunsLimit = defaults.Coaching.RecentRunsLimit
	}
	if cfg.Coaching.ConsistencyWeeks == 0 {
		cfg.Coaching.ConsistencyWeeks = defaults.Coaching.ConsistencyWeeks
	}

	return &cfg, nil
}

// LoadOrDefault loads the config, falling back to defaults when no file
// exists yet. Other errors still surface.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNoConfig) {
		defaults := DefaultConfig()
		return &defaults, nil
	}
	return cfg, err
}

// Save writes the configuration to ~/.runright/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks if the config has consistent values
func (c *Config) Validate() error {
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	if c.Display.PaceUnit != "" && c.Display.PaceUnit != "min/km" && c.Display.PaceUnit != "min/mi" {
		return fmt.Errorf("display.pace_unit must be \"min/km\" or \"min/mi\", got %q", c.Display.PaceUnit)
	}
	if c.Coaching.RecentRunsLimit < 0 {
		return fmt.Errorf("coaching.recent_runs_limit must not be negative, got %d", c.Coaching.RecentRunsLimit)
	}
	if c.Coaching.ConsistencyWeeks < 0 {
		return fmt.Errorf("coaching.consistency_weeks must not be negative, got %d", c.Coaching.ConsistencyWeeks)
	}
	return nil
}

// UseMiles reports whether distances should render in miles.
func (c *Config) UseMiles() bool {
	return c.Display.DistanceUnit == "mi"
}

// SetDistanceUnit aligns both display preferences with one unit system.
// Called when the profile's unit changes so the explanation text and the
// rendered numbers never mix km and mi.
func (c *Config) SetDistanceUnit(useMiles bool) {
	if useMiles {
		c.Display.DistanceUnit = "mi"
		c.Display.PaceUnit = "min/mi"
	} else {
		c.Display.DistanceUnit = "km"
		c.Display.PaceUnit = "min/km"
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runright", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runright"), nil
}
