package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// ActiveCapacity is the maximum number of tasks in the active queue.
	ActiveCapacity = 5

	// DeferThreshold is the unresolved count at which a dismissed task is
	// routed to the deferred pool instead of holding.
	DeferThreshold = 2
)

// Board is the complete triage state. Active is addressed by position;
// Holding and Deferred are pools kept in append order.
type Board struct {
	Active   []Task        `json:"active"`
	Holding  []Task        `json:"holding"`
	Deferred []Task        `json:"deferred"`
	Mode     SelectionMode `json:"mode"`
}

// NewBoard returns an empty board in the given mode.
// An invalid mode falls back to DefaultSelectionMode.
func NewBoard(mode SelectionMode) *Board {
	if !mode.Valid() {
		mode = DefaultSelectionMode
	}
	return &Board{
		Active:   []Task{},
		Holding:  []Task{},
		Deferred: []Task{},
		Mode:     mode,
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		Active:   cloneTasks(b.Active),
		Holding:  cloneTasks(b.Holding),
		Deferred: cloneTasks(b.Deferred),
		Mode:     b.Mode,
	}
}

// Collection returns the slice backing the named collection.
func (b *Board) Collection(c Collection) []Task {
	switch c {
	case CollectionActive:
		return b.Active
	case CollectionHolding:
		return b.Holding
	case CollectionDeferred:
		return b.Deferred
	default:
		return nil
	}
}

// ActiveIndex returns the position of id in the active queue, or -1.
func (b *Board) ActiveIndex(id uuid.UUID) int {
	return indexOf(b.Active, id)
}

// ActiveFull reports whether the active queue is at capacity.
func (b *Board) ActiveFull() bool {
	return len(b.Active) >= ActiveCapacity
}

// Locate finds which collection holds id and at what position.
func (b *Board) Locate(id uuid.UUID) (Collection, int, bool) {
	for _, c := range []Collection{CollectionActive, CollectionHolding, CollectionDeferred} {
		if i := indexOf(b.Collection(c), id); i >= 0 {
			return c, i, true
		}
	}
	return CollectionNone, -1, false
}

// Len returns the total number of tasks on the board.
func (b *Board) Len() int {
	return len(b.Active) + len(b.Holding) + len(b.Deferred)
}

// Validate checks the board invariants: the active queue is within
// capacity, the mode is known, every task is valid, and no task ID
// appears twice anywhere on the board.
func (b *Board) Validate() error {
	if len(b.Active) > ActiveCapacity {
		return fmt.Errorf("%w: %d tasks", ErrActiveOverCapacity, len(b.Active))
	}

	if !b.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSelectionMode, b.Mode)
	}

	seen := make(map[uuid.UUID]Collection, b.Len())
	for _, c := range []Collection{CollectionActive, CollectionHolding, CollectionDeferred} {
		for i := range b.Collection(c) {
			t := &b.Collection(c)[i]
			if err := t.Validate(); err != nil {
				return fmt.Errorf("%w: task %s in %s: %w", ErrValidation, t.ID, c, err)
			}
			if prev, dup := seen[t.ID]; dup {
				return fmt.Errorf("%w: %s in %s and %s", ErrPartitionViolated, t.ID, prev, c)
			}
			seen[t.ID] = c
		}
	}

	return nil
}

// RemoveAt returns tasks without the element at i, leaving the input slice untouched.
func RemoveAt(tasks []Task, i int) []Task {
	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}

func indexOf(tasks []Task, id uuid.UUID) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
