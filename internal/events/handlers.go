package events

import (
	"context"
	"log/slog"
	"sync"
)

// LogEventHandler writes every event to a structured logger at info level.
type LogEventHandler struct {
	logger *slog.Logger
}

// NewLogEventHandler creates a LogEventHandler. A nil logger uses slog.Default().
func NewLogEventHandler(logger *slog.Logger) *LogEventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventHandler{logger: logger.With("component", "board_event_log")}
}

// HandleEvent implements EventHandler.
func (h *LogEventHandler) HandleEvent(ctx context.Context, event *BoardEvent) error {
	h.logger.InfoContext(ctx, "board event",
		"event_id", event.ID,
		"event_type", event.Type,
		"payload", string(event.Payload))
	return nil
}

// Recorder keeps every event it receives, in order. It is safe for
// concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []*BoardEvent
}

// HandleEvent implements EventHandler.
func (r *Recorder) HandleEvent(_ context.Context, event *BoardEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []*BoardEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*BoardEvent(nil), r.events...)
}

// Types returns the type of every recorded event, in order.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}
