package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection means a chosen label does not exist in its catalog
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrPreconditionViolated means an operation was called out of sequence
	ErrPreconditionViolated = errors.New("precondition violated")
	// ErrGameComplete means the horizon has been reached and no more turns can be applied
	ErrGameComplete = errors.New("game complete")
	// ErrInvalidCatalog means the configuration tables break their contract
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrInvalidSettings means the game settings are unusable
	ErrInvalidSettings = errors.New("invalid settings")
)

// SelectionError reports which category held an unknown label
type SelectionError struct {
	Category Category
	Label    string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: no %s option labelled %q", ErrInvalidSelection, e.Category, e.Label)
}

func (e *SelectionError) Unwrap() error {
	return ErrInvalidSelection
}
