package triage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/domain/selection"
	"github.com/phrazzld/triage-api/internal/events"
	"github.com/phrazzld/triage-api/internal/platform/logger"
	"github.com/phrazzld/triage-api/internal/store"
)

// Verify interface compliance at compile time
var _ TriageService = (*triageServiceImpl)(nil)

// triageServiceImpl implements the TriageService interface.
type triageServiceImpl struct {
	boardStore store.BoardStore
	selector   selection.Selector
	emitter    events.EventEmitter
	logger     *slog.Logger
}

// NewTriageService creates a new TriageService implementation.
// The emitter may be nil, in which case no events are published.
func NewTriageService(
	boardStore store.BoardStore,
	selector selection.Selector,
	emitter events.EventEmitter,
	logger *slog.Logger,
) TriageService {
	if boardStore == nil {
		panic("boardStore cannot be nil")
	}
	if selector == nil {
		panic("selector cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &triageServiceImpl{
		boardStore: boardStore,
		selector:   selector,
		emitter:    emitter,
		logger:     logger.With(slog.String("component", "triage_service")),
	}
}

// AddTask implements TriageService.AddTask.
func (s *triageServiceImpl) AddTask(ctx context.Context, input AddTaskInput) (*AddResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(input.Title, input.Length, input.Category)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTitle) {
			log.Debug("skipping task with empty title")
			return nil, ErrEmptyTitle
		}
		log.Warn("rejecting invalid task",
			slog.String("error", err.Error()),
			slog.String("length", string(input.Length)),
			slog.String("category", string(input.Category)))
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	var result *AddResult
	err = s.boardStore.RunInTransaction(ctx, func(ctx context.Context, b *domain.Board) error {
		placement := domain.CollectionActive
		if b.ActiveFull() {
			placement = domain.CollectionHolding
			b.Holding = append(b.Holding, *task)
		} else {
			b.Active = append(b.Active, *task)
		}
		result = &AddResult{Task: *task, Placement: placement}
		return nil
	})
	if err != nil {
		log.Error("failed to add task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return nil, NewAddTaskError("failed to store task", err)
	}

	log.Debug("task added",
		slog.String("task_id", task.ID.String()),
		slog.String("placement", string(result.Placement)))

	s.emit(ctx, events.TypeTaskAdded, result)
	return result, nil
}

// DismissTask implements TriageService.DismissTask.
func (s *triageServiceImpl) DismissTask(
	ctx context.Context,
	taskID uuid.UUID,
	resolved bool,
) (*DismissResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("dismissing task",
		slog.String("task_id", taskID.String()),
		slog.Bool("resolved", resolved))

	var result *DismissResult
	err := s.boardStore.RunInTransaction(ctx, func(ctx context.Context, b *domain.Board) error {
		idx := b.ActiveIndex(taskID)
		if idx < 0 {
			return ErrTaskNotFound
		}
		original := b.Active[idx]

		// The replacement is chosen from the pools as they stood before the
		// outgoing task is filed, so a task can never replace itself.
		replacement, source := s.pullReplacement(b, original)

		dismissed, outcome := classify(b, original, resolved)

		if replacement != nil {
			b.Active[idx] = *replacement
		} else {
			b.Active = domain.RemoveAt(b.Active, idx)
		}

		result = &DismissResult{
			Dismissed:         dismissed,
			Outcome:           outcome,
			Replacement:       replacement,
			ReplacementSource: source,
			Position:          idx,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			log.Debug("task not in active queue", slog.String("task_id", taskID.String()))
			return nil, ErrTaskNotFound
		}
		log.Error("failed to dismiss task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, NewDismissTaskError("failed to update board", err)
	}

	attrs := []any{
		slog.String("task_id", taskID.String()),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("position", result.Position),
	}
	if result.Replacement != nil {
		attrs = append(attrs,
			slog.String("replacement_id", result.Replacement.ID.String()),
			slog.String("replacement_source", string(result.ReplacementSource)))
	}
	log.Debug("task dismissed", attrs...)

	s.emit(ctx, events.TypeTaskDismissed, result)
	return result, nil
}

// pullReplacement removes and returns the backlog task that should take
// ref's slot. Holding is tried first; a task pulled from deferred comes back
// with its unresolved count cleared.
func (s *triageServiceImpl) pullReplacement(
	b *domain.Board,
	ref domain.Task,
) (*domain.Task, domain.Collection) {
	if t, i, ok := s.selector.Pick(b.Holding, ref, b.Mode); ok {
		b.Holding = domain.RemoveAt(b.Holding, i)
		return &t, domain.CollectionHolding
	}

	if t, i, ok := s.selector.Pick(b.Deferred, ref, b.Mode); ok {
		b.Deferred = domain.RemoveAt(b.Deferred, i)
		t = t.Reinstate()
		return &t, domain.CollectionDeferred
	}

	return nil, domain.CollectionNone
}

// classify files the outgoing task. Resolved tasks leave the board;
// unresolved ones are counted and appended to holding or deferred.
func classify(b *domain.Board, t domain.Task, resolved bool) (domain.Task, domain.Collection) {
	if resolved {
		return t, domain.CollectionNone
	}

	t = t.MarkUnresolved()
	if t.ShouldDefer() {
		b.Deferred = append(b.Deferred, t)
		return t, domain.CollectionDeferred
	}

	b.Holding = append(b.Holding, t)
	return t, domain.CollectionHolding
}

// SetPullMode implements TriageService.SetPullMode.
func (s *triageServiceImpl) SetPullMode(
	ctx context.Context,
	mode domain.SelectionMode,
) (*ModeChange, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !mode.Valid() {
		log.Warn("rejecting invalid selection mode", slog.String("mode", string(mode)))
		return nil, ErrInvalidMode
	}

	var change *ModeChange
	err := s.boardStore.RunInTransaction(ctx, func(ctx context.Context, b *domain.Board) error {
		change = &ModeChange{From: b.Mode, To: mode}
		b.Mode = mode
		return nil
	})
	if err != nil {
		log.Error("failed to set selection mode",
			slog.String("error", err.Error()),
			slog.String("mode", string(mode)))
		return nil, NewSetModeError("failed to update board", err)
	}

	log.Debug("selection mode set",
		slog.String("from", string(change.From)),
		slog.String("to", string(change.To)))

	s.emit(ctx, events.TypeModeChanged, change)
	return change, nil
}

// Board implements TriageService.Board.
func (s *triageServiceImpl) Board(ctx context.Context) (*domain.Board, error) {
	b, err := s.boardStore.Snapshot(ctx)
	if err != nil {
		return nil, NewReadBoardError("failed to read board", err)
	}
	return b, nil
}

// Collection implements TriageService.Collection.
func (s *triageServiceImpl) Collection(
	ctx context.Context,
	c domain.Collection,
) ([]domain.Task, error) {
	if !c.Valid() {
		return nil, ErrInvalidCollection
	}
	b, err := s.Board(ctx)
	if err != nil {
		return nil, err
	}
	return b.Collection(c), nil
}

// Mode implements TriageService.Mode.
func (s *triageServiceImpl) Mode(ctx context.Context) (domain.SelectionMode, error) {
	b, err := s.Board(ctx)
	if err != nil {
		return "", err
	}
	return b.Mode, nil
}

// emit publishes an event for a committed change. Failures are logged and
// never surface to the caller: the board has already changed.
func (s *triageServiceImpl) emit(ctx context.Context, eventType string, payload interface{}) {
	if s.emitter == nil {
		return
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewBoardEvent(eventType, payload)
	if err != nil {
		log.Error("failed to build board event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("board event handler failed",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType),
			slog.String("event_id", event.ID.String()))
	}
}
