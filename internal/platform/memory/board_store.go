package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/platform/logger"
	"github.com/phrazzld/triage-api/internal/store"
)

// Verify interface compliance at compile time
var _ store.BoardStore = (*BoardStore)(nil)

// BoardStore keeps the board in memory behind a read/write mutex.
// Transactions take the write lock for their whole duration; snapshots
// share the read lock.
type BoardStore struct {
	mu     sync.RWMutex
	board  *domain.Board
	logger *slog.Logger
}

// NewBoardStore creates an empty board in the given mode.
func NewBoardStore(mode domain.SelectionMode, logger *slog.Logger) *BoardStore {
	return NewBoardStoreFrom(domain.NewBoard(mode), logger)
}

// NewBoardStoreFrom creates a store seeded with a copy of board.
// The board is taken as given; callers seeding state are responsible for
// its invariants.
func NewBoardStoreFrom(board *domain.Board, logger *slog.Logger) *BoardStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &BoardStore{
		board:  board.Clone(),
		logger: logger.With(slog.String("component", "memory_board_store")),
	}
}

// Snapshot implements store.BoardStore.
func (s *BoardStore) Snapshot(ctx context.Context) (*domain.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrTransactionFailed, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.board.Clone(), nil
}

// RunInTransaction implements store.BoardStore.
// fn works on a clone; the clone replaces the live board only when fn
// returns nil and the result validates.
func (s *BoardStore) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		log.Debug("transaction not started: context done",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrTransactionFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.board.Clone()

	// The deferred unlock still runs when fn panics; the live board is
	// untouched because fn only ever saw the clone.
	defer func() {
		if p := recover(); p != nil {
			log.Error("rolled back transaction after panic",
				slog.Any("panic", p))
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	if err := fn(ctx, working); err != nil {
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		return err
	}

	if err := working.Validate(); err != nil {
		log.Error("refusing to commit invalid board",
			slog.String("error", err.Error()))
		return store.NewStoreError("board", "commit", "board invariants violated",
			fmt.Errorf("%w: %w", store.ErrInvalidState, err))
	}

	s.board = working
	return nil
}
