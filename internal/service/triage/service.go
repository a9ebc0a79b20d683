package triage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/domain"
)

// AddTaskInput carries the fields of a new task.
type AddTaskInput struct {
	Title    string
	Length   domain.Length
	Category domain.Category
}

// AddResult reports where a new task was placed.
type AddResult struct {
	Task      domain.Task       `json:"task"`
	Placement domain.Collection `json:"placement"`
}

// DismissResult describes everything a dismissal changed.
type DismissResult struct {
	// Dismissed is the outgoing task after classification; its
	// UnresolvedCount already includes this dismissal.
	Dismissed domain.Task `json:"dismissed"`

	// Outcome is where the outgoing task went: holding, deferred, or
	// CollectionNone when it was resolved and left the board.
	Outcome domain.Collection `json:"outcome"`

	// Replacement is the task now occupying Position, or nil when the
	// backlog was empty and the active queue shrank.
	Replacement *domain.Task `json:"replacement,omitempty"`

	// ReplacementSource is the pool the replacement came from, or
	// CollectionNone.
	ReplacementSource domain.Collection `json:"replacement_source"`

	// Position is the index the dismissed task held in the active queue.
	Position int `json:"position"`
}

// ModeChange records a selection mode switch.
type ModeChange struct {
	From domain.SelectionMode `json:"from"`
	To   domain.SelectionMode `json:"to"`
}

// TriageService provides the intents and read accessors of the triage engine.
type TriageService interface {
	// AddTask creates a task and places it at the tail of the active queue,
	// or in the holding pool when the queue is full.
	//
	// Returns:
	//   - (*AddResult, nil): the created task and where it went
	//   - (nil, ErrEmptyTitle): the title was blank; nothing changed
	//   - (nil, ErrInvalidTask): length or category out of range; nothing changed
	AddTask(ctx context.Context, input AddTaskInput) (*AddResult, error)

	// DismissTask removes an active task, classifies it (discarded when
	// resolved; holding or deferred when not), and refills its slot from the
	// backlog using the board's selection mode. Holding is consulted first,
	// deferred only when holding is empty; a deferred pick has its unresolved
	// count reset. An empty backlog is not an error: the queue shrinks.
	//
	// Returns:
	//   - (*DismissResult, nil): what changed
	//   - (nil, ErrTaskNotFound): the id is not in the active queue; nothing changed
	DismissTask(ctx context.Context, taskID uuid.UUID, resolved bool) (*DismissResult, error)

	// SetPullMode replaces the selection mode used by future dismissals.
	// Returns ErrInvalidMode for values outside Category/Length/Chaos.
	SetPullMode(ctx context.Context, mode domain.SelectionMode) (*ModeChange, error)

	// Board returns a copy of the full board.
	Board(ctx context.Context) (*domain.Board, error)

	// Collection returns a copy of one collection's tasks.
	Collection(ctx context.Context, c domain.Collection) ([]domain.Task, error)

	// Mode returns the current selection mode.
	Mode(ctx context.Context) (domain.SelectionMode, error)
}

// Common error types for TriageService
var (
	// ErrEmptyTitle indicates a task title that is blank after trimming.
	ErrEmptyTitle = domain.ErrEmptyTitle

	// ErrInvalidTask indicates a task with a length or category outside the known values.
	ErrInvalidTask = errors.New("invalid task")

	// ErrTaskNotFound indicates that the task is not in the active queue.
	ErrTaskNotFound = errors.New("task not found in active queue")

	// ErrInvalidMode indicates a selection mode outside the known values.
	ErrInvalidMode = errors.New("invalid selection mode")

	// ErrInvalidCollection indicates a collection name other than active, holding or deferred.
	ErrInvalidCollection = errors.New("invalid collection")
)

// ServiceError wraps errors from the triage service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "add_task", "dismiss_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewAddTaskError returns a new ServiceError for the add_task operation.
func NewAddTaskError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "add_task", Message: message, Err: err}
}

// NewDismissTaskError returns a new ServiceError for the dismiss_task operation.
func NewDismissTaskError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "dismiss_task", Message: message, Err: err}
}

// NewSetModeError returns a new ServiceError for the set_mode operation.
func NewSetModeError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "set_mode", Message: message, Err: err}
}

// NewReadBoardError returns a new ServiceError for read operations.
func NewReadBoardError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "read_board", Message: message, Err: err}
}
