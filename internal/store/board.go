package store

import (
	"context"

	"github.com/phrazzld/triage-api/internal/domain"
)

// TxFn is a function that executes within a board transaction.
// It receives a private copy of the board to mutate freely. The copy is
// committed if the function returns nil, or discarded if it returns an error.
type TxFn func(ctx context.Context, board *domain.Board) error

// BoardStore defines the interface for triage state.
// Version: 1.0
type BoardStore interface {
	// Snapshot returns a deep copy of the current board. Callers may mutate
	// the result without affecting the store.
	Snapshot(ctx context.Context) (*domain.Board, error)

	// RunInTransaction executes fn with exclusive access to the board.
	// Transactions are fully serialized: no other transaction or snapshot
	// observes the board between the start of fn and its commit.
	//
	// The committed board must pass domain.Board.Validate; otherwise the
	// transaction is rolled back and an error wrapping ErrInvalidState is
	// returned. A panic inside fn rolls back and is re-raised.
	//
	// Usage example:
	//   err := boardStore.RunInTransaction(ctx, func(ctx context.Context, b *domain.Board) error {
	//       b.Mode = domain.ModeChaos
	//       return nil
	//   })
	RunInTransaction(ctx context.Context, fn TxFn) error
}
