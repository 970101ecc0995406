package engine

import (
	"fmt"

	"github.com/dingonewen/oystraz/internal/storage"
)

// InvalidInputError reports an activity log value outside its domain.
// Such logs are rejected before any recompute runs; they are never clamped.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e InvalidInputError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// BudgetError is returned when a log would push one day's sleep, exercise and
// work hours past the daily limit.
type BudgetError struct {
	Used   float64
	Adding float64
	Limit  float64
}

func (e BudgetError) Error() string {
	return fmt.Sprintf("daily hour budget exceeded: %.2fh logged + %.2fh > %.0fh", e.Used, e.Adding, e.Limit)
}

// MissingCharacterError means the user has no character row to recompute.
type MissingCharacterError struct {
	User string
}

func (e MissingCharacterError) Error() string {
	return fmt.Sprintf("no character for user %q", e.User)
}

type LogNotFoundError struct {
	Kind storage.LogKind
	ID   int64
}

func (e LogNotFoundError) Error() string {
	return fmt.Sprintf("%s log %d not found", e.Kind, e.ID)
}
