package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/triage-api/internal/api/shared"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/platform/logger"
	"github.com/phrazzld/triage-api/internal/service/triage"
)

// TriageHandler serves the board over HTTP.
type TriageHandler struct {
	service triage.TriageService
	logger  *slog.Logger
}

// NewTriageHandler creates a new TriageHandler.
func NewTriageHandler(service triage.TriageService, logger *slog.Logger) *TriageHandler {
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for TriageHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TriageHandler{
		service: service,
		logger:  logger.With(slog.String("component", "triage_handler")),
	}
}

// Options handles GET /api/options.
func (h *TriageHandler) Options(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, optionsResponse())
}

// GetBoard handles GET /api/board.
func (h *TriageHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Board(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read board")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, boardToResponse(board))
}

// ListCollection handles GET /api/tasks/{collection}.
func (h *TriageHandler) ListCollection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	collection, err := getPathCollection(r, "collection")
	if err != nil {
		log.Debug("unknown collection requested")
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.service.Collection(r.Context(), collection)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// AddTask handles POST /api/tasks.
func (h *TriageHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AddTaskRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	length, err := domain.ParseLength(req.Length)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %w", triage.ErrInvalidTask, err), "")
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %w", triage.ErrInvalidTask, err), "")
		return
	}

	result, err := h.service.AddTask(r.Context(), triage.AddTaskInput{
		Title:    req.Title,
		Length:   length,
		Category: category,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add task")
		return
	}

	log.Debug("task created",
		slog.String("task_id", result.Task.ID.String()),
		slog.String("placement", string(result.Placement)))

	shared.RespondWithJSON(w, r, http.StatusCreated, AddTaskResponse{
		Task:      taskToResponse(result.Task),
		Placement: string(result.Placement),
	})
}

// DismissTask handles POST /api/tasks/{id}/dismiss.
func (h *TriageHandler) DismissTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req DismissTaskRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.service.DismissTask(r.Context(), taskID, *req.Resolved)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to dismiss task")
		return
	}

	// The board is read after the commit; a concurrent intent may already
	// be reflected in it.
	board, err := h.service.Board(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read board")
		return
	}

	log.Debug("task dismissed",
		slog.String("task_id", taskID.String()),
		slog.Bool("resolved", *req.Resolved),
		slog.String("outcome", string(result.Outcome)))

	shared.RespondWithJSON(w, r, http.StatusOK, dismissToResponse(result, board))
}

// SetMode handles PUT /api/mode.
func (h *TriageHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req SetModeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	mode, err := domain.ParseSelectionMode(req.Mode)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %w", triage.ErrInvalidMode, err), "")
		return
	}

	change, err := h.service.SetPullMode(r.Context(), mode)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to set selection mode")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ModeResponse{
		Mode:     string(change.To),
		Previous: string(change.From),
	})
}
