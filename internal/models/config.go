package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds the tunable numbers of a playthrough
type Settings struct {
	Horizon             int   `yaml:"horizon"`
	StartSustainability int   `yaml:"start_sustainability"`
	StartHappiness      int   `yaml:"start_happiness"`
	StartBudget         int64 `yaml:"start_budget"`
	// BudgetReference is the budget shown as a full bar
	BudgetReference int64 `yaml:"budget_reference"`
}

// DefaultSettings returns the standard ten-year game
func DefaultSettings() Settings {
	return Settings{
		Horizon:             10,
		StartSustainability: 50,
		StartHappiness:      50,
		StartBudget:         10_000_000,
		BudgetReference:     5_000_000,
	}
}

// CasualSettings returns a more forgiving start
func CasualSettings() Settings {
	s := DefaultSettings()
	s.StartBudget = 15_000_000
	s.StartHappiness = 60
	return s
}

// HardSettings returns a tighter start for experienced players
func HardSettings() Settings {
	s := DefaultSettings()
	s.StartBudget = 6_000_000
	s.StartSustainability = 40
	s.StartHappiness = 45
	return s
}

// SettingsForDifficulty maps a difficulty name to its preset
func SettingsForDifficulty(name string) (Settings, error) {
	switch strings.ToLower(name) {
	case "", "normal", "default":
		return DefaultSettings(), nil
	case "casual", "easy":
		return CasualSettings(), nil
	case "hard":
		return HardSettings(), nil
	default:
		return Settings{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidSettings, name)
	}
}

// LoadSettings reads a YAML settings file on top of base.
// Keys missing from the file keep the value from base; unknown keys are rejected.
func LoadSettings(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	s := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if err := ValidateSettings(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ValidateSettings checks that the horizon and display reference are usable
func ValidateSettings(s Settings) error {
	if s.Horizon < 1 {
		return fmt.Errorf("%w: horizon must be at least 1, got %d", ErrInvalidSettings, s.Horizon)
	}
	if s.BudgetReference <= 0 {
		return fmt.Errorf("%w: budget_reference must be positive, got %d", ErrInvalidSettings, s.BudgetReference)
	}
	return nil
}
