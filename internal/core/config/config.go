// Package config handles configuration loading and validation for tend.
package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/fieldsend/tend/internal/core/board"
)

// Config holds the application configuration.
type Config struct {
	DueSoonDays       int    `yaml:"due_soon_days"`
	CalendarMaxPerDay int    `yaml:"calendar_max_per_day"`
	DefaultView       string `yaml:"default_view"`
	DefaultSort       string `yaml:"default_sort"`
	DataDir           string `yaml:"-"` // set by caller, not from config file
}

// View names accepted by default_view.
const (
	ViewGrid     = "grid"
	ViewTable    = "table"
	ViewCalendar = "calendar"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DueSoonDays:       3,
		CalendarMaxPerDay: 3,
		DefaultView:       ViewGrid,
		DefaultSort:       string(board.SortDueDate),
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills in zero values left by a partial config file.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DueSoonDays == 0 {
		c.DueSoonDays = defaults.DueSoonDays
	}
	if c.CalendarMaxPerDay == 0 {
		c.CalendarMaxPerDay = defaults.CalendarMaxPerDay
	}
	if c.DefaultView == "" {
		c.DefaultView = defaults.DefaultView
	}
	if c.DefaultSort == "" {
		c.DefaultSort = defaults.DefaultSort
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return criterio.NewFieldErrors("data_dir", fmt.Errorf("cannot be empty"))
	}
	if c.DueSoonDays < 0 {
		return criterio.NewFieldErrors("due_soon_days", fmt.Errorf("cannot be negative"))
	}

	return criterio.ValidateStruct(
		criterio.Run("default_view", c.DefaultView, validView),
		criterio.Run("default_sort", c.DefaultSort, validSort),
	)
}

func validView(v string) error {
	switch v {
	case ViewGrid, ViewTable, ViewCalendar:
		return nil
	}
	return fmt.Errorf("must be one of grid, table, calendar (got %q)", v)
}

func validSort(v string) error {
	switch board.SortKey(v) {
	case board.SortDueDate, board.SortCreated, board.SortCategory:
		return nil
	}
	return fmt.Errorf("must be one of dueDate, createdAt, category (got %q)", v)
}
