package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a single unit of work moving between the active queue and the
// backlog pools. Everything except UnresolvedCount is fixed at creation.
type Task struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Length          Length    `json:"length"`
	Category        Category  `json:"category"`
	UnresolvedCount int       `json:"unresolved_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewTask creates a new Task with a fresh ID and a zero unresolved count.
// The title is trimmed; a blank title yields ErrEmptyTitle.
func NewTask(title string, length Length, category Category) (*Task, error) {
	task := &Task{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Length:    length,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrInvalidID
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}

	if !t.Length.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLength, t.Length)
	}

	if !t.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}

	if t.UnresolvedCount < 0 {
		return ErrNegativeUnresolvedCount
	}

	return nil
}

// MarkUnresolved returns a copy of the task with its unresolved count
// incremented. The receiver is not modified.
func (t Task) MarkUnresolved() Task {
	t.UnresolvedCount++
	return t
}

// Reinstate returns a copy of the task with the unresolved count cleared,
// used when a deferred task is pulled back into the active queue.
func (t Task) Reinstate() Task {
	t.UnresolvedCount = 0
	return t
}

// ShouldDefer reports whether the task has been avoided often enough to
// belong in the deferred pool.
func (t Task) ShouldDefer() bool {
	return t.UnresolvedCount >= DeferThreshold
}
