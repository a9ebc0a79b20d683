package api

import (
	"time"

	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/service/triage"
)

// OutcomeDiscarded is the API name for a resolved task leaving the board.
const OutcomeDiscarded = "discarded"

// AddTaskRequest defines the payload for creating a task.
// Length and category are matched case-insensitively.
type AddTaskRequest struct {
	Title    string `json:"title"    validate:"required"`
	Length   string `json:"length"   validate:"required"`
	Category string `json:"category" validate:"required"`
}

// DismissTaskRequest defines the payload for dismissing an active task.
type DismissTaskRequest struct {
	// Resolved must be present; a missing flag is a client error, not "false".
	Resolved *bool `json:"resolved" validate:"required"`
}

// SetModeRequest defines the payload for switching the selection mode.
type SetModeRequest struct {
	Mode string `json:"mode" validate:"required"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Length          string    `json:"length"`
	Category        string    `json:"category"`
	UnresolvedCount int       `json:"unresolved_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// BoardResponse is the wire form of the whole board.
type BoardResponse struct {
	Active         []TaskResponse `json:"active"`
	Holding        []TaskResponse `json:"holding"`
	Deferred       []TaskResponse `json:"deferred"`
	Mode           string         `json:"mode"`
	ActiveCapacity int            `json:"active_capacity"`
}

// OptionsResponse lists the accepted enum values.
type OptionsResponse struct {
	Lengths    []string `json:"lengths"`
	Categories []string `json:"categories"`
	Modes      []string `json:"modes"`
}

// AddTaskResponse reports the created task and where it went.
type AddTaskResponse struct {
	Task      TaskResponse `json:"task"`
	Placement string       `json:"placement"`
}

// DismissTaskResponse reports a dismissal and the board after it.
type DismissTaskResponse struct {
	Dismissed         TaskResponse  `json:"dismissed"`
	Outcome           string        `json:"outcome"`
	Replacement       *TaskResponse `json:"replacement"`
	ReplacementSource string        `json:"replacement_source,omitempty"`
	Position          int           `json:"position"`
	Board             BoardResponse `json:"board"`
}

// ModeResponse reports the current selection mode.
type ModeResponse struct {
	Mode     string `json:"mode"`
	Previous string `json:"previous,omitempty"`
}

func taskToResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:              t.ID.String(),
		Title:           t.Title,
		Length:          string(t.Length),
		Category:        string(t.Category),
		UnresolvedCount: t.UnresolvedCount,
		CreatedAt:       t.CreatedAt,
	}
}

// tasksToResponse never returns nil so empty collections encode as [].
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}

func boardToResponse(b *domain.Board) BoardResponse {
	return BoardResponse{
		Active:         tasksToResponse(b.Active),
		Holding:        tasksToResponse(b.Holding),
		Deferred:       tasksToResponse(b.Deferred),
		Mode:           string(b.Mode),
		ActiveCapacity: domain.ActiveCapacity,
	}
}

func optionsResponse() OptionsResponse {
	resp := OptionsResponse{}
	for _, l := range domain.AllLengths() {
		resp.Lengths = append(resp.Lengths, string(l))
	}
	for _, c := range domain.AllCategories() {
		resp.Categories = append(resp.Categories, string(c))
	}
	for _, m := range domain.AllSelectionModes() {
		resp.Modes = append(resp.Modes, string(m))
	}
	return resp
}

func dismissToResponse(res *triage.DismissResult, b *domain.Board) DismissTaskResponse {
	resp := DismissTaskResponse{
		Dismissed:         taskToResponse(res.Dismissed),
		Outcome:           string(res.Outcome),
		ReplacementSource: string(res.ReplacementSource),
		Position:          res.Position,
		Board:             boardToResponse(b),
	}
	if res.Outcome == domain.CollectionNone {
		resp.Outcome = OutcomeDiscarded
	}
	if res.Replacement != nil {
		r := taskToResponse(*res.Replacement)
		resp.Replacement = &r
	}
	return resp
}
