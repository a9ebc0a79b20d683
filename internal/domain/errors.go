// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitle is returned when a task title is blank after trimming.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrInvalidID is returned when a task ID is nil.
	ErrInvalidID = errors.New("invalid task ID")

	// ErrInvalidLength is returned for a length outside Long/Medium/Short/Micro.
	ErrInvalidLength = errors.New("invalid task length")

	// ErrInvalidCategory is returned for a category outside Work/Passions/Self/Others.
	ErrInvalidCategory = errors.New("invalid task category")

	// ErrInvalidSelectionMode is returned for a mode outside Category/Length/Chaos.
	ErrInvalidSelectionMode = errors.New("invalid selection mode")

	// ErrNegativeUnresolvedCount is returned when a task's unresolved count is below zero.
	ErrNegativeUnresolvedCount = errors.New("unresolved count cannot be negative")

	// ErrActiveOverCapacity is returned when the active queue holds more than ActiveCapacity tasks.
	ErrActiveOverCapacity = errors.New("active queue over capacity")

	// ErrPartitionViolated is returned when a task appears more than once across the collections.
	ErrPartitionViolated = errors.New("task appears in more than one place")
)
