package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/acampayo/mealdraw/pkg/core/model"
)

// GroupConfig declares one meal group explicitly
type GroupConfig struct {
	Kind string `yaml:"kind" validate:"required,oneof=lunch dinner"`
	Day  int    `yaml:"day" validate:"required,min=1"`
}

// ScheduleConfig declares the group universe as a recurrence rule: each
// occurrence day contributes the configured meal slots
type ScheduleConfig struct {
	// RRule in RFC 5545 syntax; must be bounded with COUNT or UNTIL
	RRule string `yaml:"rrule" validate:"required"`

	// Start is the first event day (YYYY-MM-DD), used as the rule's DTSTART
	Start string `yaml:"start" validate:"required"`

	// Meals lists the meal slots held on each occurrence day
	Meals []string `yaml:"meals" validate:"required,min=1,dive,oneof=lunch dinner"`
}

// DatabaseConfig enables the optional draw history store
type DatabaseConfig struct {
	ConnString string `yaml:"connString" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	Groups   []GroupConfig   `yaml:"groups,omitempty" validate:"dive"`
	Schedule *ScheduleConfig `yaml:"schedule,omitempty"`
	Database *DatabaseConfig `yaml:"database,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from mealdraw_config.yaml,
// looked up in the current directory first and then the home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, including rrule syntax
// for schedule-based universes
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if len(cfg.Groups) == 0 && cfg.Schedule == nil {
		return fmt.Errorf("config must declare groups or a schedule")
	}
	if len(cfg.Groups) > 0 && cfg.Schedule != nil {
		return fmt.Errorf("config must declare groups or a schedule, not both")
	}

	if cfg.Schedule != nil {
		if _, err := time.Parse("2006-01-02", cfg.Schedule.Start); err != nil {
			return fmt.Errorf("invalid schedule start date: %w", err)
		}
		if _, err := rrule.StrToRRule(cfg.Schedule.RRule); err != nil {
			return fmt.Errorf("invalid schedule rrule: %w", err)
		}
		upper := strings.ToUpper(cfg.Schedule.RRule)
		if !strings.Contains(upper, "COUNT=") && !strings.Contains(upper, "UNTIL=") {
			return fmt.Errorf("schedule rrule must be bounded with COUNT or UNTIL")
		}
	}

	return nil
}

// Universe returns the ordered group universe this configuration
// declares, expanding the schedule rrule when one is used
func (cfg *Config) Universe() ([]model.GroupSpec, error) {
	if len(cfg.Groups) > 0 {
		universe := make([]model.GroupSpec, len(cfg.Groups))
		for i, g := range cfg.Groups {
			universe[i] = model.GroupSpec{Kind: model.MealKind(g.Kind), Day: g.Day}
		}
		return universe, nil
	}

	rule, err := rrule.StrToRRule(cfg.Schedule.RRule)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule rrule: %w", err)
	}

	start, err := time.Parse("2006-01-02", cfg.Schedule.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule start date: %w", err)
	}
	rule.DTStart(start.UTC())

	// Occurrence order is chronological; group identifiers use the day
	// of the month, as in "Lunch 9"
	days := make([]int, 0)
	seen := make(map[int]bool)
	for _, occurrence := range rule.All() {
		day := occurrence.Day()
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	universe := make([]model.GroupSpec, 0, len(days)*len(cfg.Schedule.Meals))
	for _, day := range days {
		for _, meal := range cfg.Schedule.Meals {
			universe = append(universe, model.GroupSpec{Kind: model.MealKind(meal), Day: day})
		}
	}

	return universe, nil
}

// findConfigFile searches for mealdraw_config.yaml in the current
// directory and the home directory
func findConfigFile() (string, error) {
	configFileName := "mealdraw_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
