package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/triage-api/internal/api/middleware"
	"github.com/phrazzld/triage-api/internal/api/shared"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/domain/selection"
	"github.com/phrazzld/triage-api/internal/platform/logger"
	"github.com/phrazzld/triage-api/internal/platform/memory"
	"github.com/phrazzld/triage-api/internal/service/triage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routes(h *TriageHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/options", h.Options)
	r.Get("/api/board", h.GetBoard)
	r.Get("/api/tasks/{collection}", h.ListCollection)
	r.Post("/api/tasks", h.AddTask)
	r.Post("/api/tasks/{id}/dismiss", h.DismissTask)
	r.Put("/api/mode", h.SetMode)
	return r
}

func newTestServer(t *testing.T, board *domain.Board) http.Handler {
	t.Helper()

	l, _ := logger.NewTestLogger(t)
	if board == nil {
		board = domain.NewBoard(domain.ModeCategory)
	}
	svc := triage.NewTriageService(
		memory.NewBoardStoreFrom(board, l),
		selection.NewSelectorWithSource(selection.NewSequenceSource(0)),
		nil,
		l,
	)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(l))
	r.Mount("/", routes(NewTriageHandler(svc, l)))
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func task(title string, length domain.Length, category domain.Category, count int) domain.Task {
	return domain.Task{ID: uuid.New(), Title: title, Length: length, Category: category, UnresolvedCount: count}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	rr := do(t, newTestServer(t, nil), http.MethodGet, "/api/options", "")
	require.Equal(t, http.StatusOK, rr.Code)

	opts := decode[OptionsResponse](t, rr)
	assert.Equal(t, []string{"Long", "Medium", "Short", "Micro"}, opts.Lengths)
	assert.Equal(t, []string{"Work", "Passions", "Self", "Others"}, opts.Categories)
	assert.Equal(t, []string{"Category", "Length", "Chaos"}, opts.Modes)
}

func TestGetBoardEmpty(t *testing.T) {
	t.Parallel()

	rr := do(t, newTestServer(t, nil), http.MethodGet, "/api/board", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"active":[],"holding":[],"deferred":[],"mode":"Category","active_capacity":5}`,
		rr.Body.String())
}

func TestAddTaskHandler(t *testing.T) {
	t.Parallel()

	t.Run("created in active then holding", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t, nil)

		for i := 0; i < domain.ActiveCapacity; i++ {
			rr := do(t, srv, http.MethodPost, "/api/tasks", `{"title":"t","length":"short","category":"WORK"}`)
			require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
			resp := decode[AddTaskResponse](t, rr)
			assert.Equal(t, "active", resp.Placement)
			assert.Equal(t, "Short", resp.Task.Length)
			assert.Equal(t, "Work", resp.Task.Category)
		}

		rr := do(t, srv, http.MethodPost, "/api/tasks", `{"title":"sixth","length":"Micro","category":"Self"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "holding", decode[AddTaskResponse](t, rr).Placement)

		board := decode[BoardResponse](t, do(t, srv, http.MethodGet, "/api/board", ""))
		assert.Len(t, board.Active, 5)
		require.Len(t, board.Holding, 1)
		assert.Equal(t, "sixth", board.Holding[0].Title)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "no body", body: "", message: "Request body is required"},
		{name: "malformed json", body: `{"title":`, message: "Invalid request format"},
		{name: "missing length", body: `{"title":"x","category":"Work"}`, message: "Invalid length: required field"},
		{name: "unknown length", body: `{"title":"x","length":"Epic","category":"Work"}`, message: "Invalid task length"},
		{name: "unknown category", body: `{"title":"x","length":"Long","category":"Errands"}`, message: "Invalid task category"},
		{name: "blank title", body: `{"title":"   ","length":"Long","category":"Work"}`, message: "Task title cannot be empty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := newTestServer(t, nil)

			rr := do(t, srv, http.MethodPost, "/api/tasks", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			body := decode[shared.ErrorResponse](t, rr)
			assert.Equal(t, tc.message, body.Error)
			assert.NotEmpty(t, body.TraceID)

			board := decode[BoardResponse](t, do(t, srv, http.MethodGet, "/api/board", ""))
			assert.Empty(t, board.Active, "rejected requests change nothing")
		})
	}
}

func TestListCollection(t *testing.T) {
	t.Parallel()

	a := task("a", domain.LengthShort, domain.CategoryWork, 0)
	d := task("d", domain.LengthLong, domain.CategorySelf, 2)
	board := domain.NewBoard(domain.ModeCategory)
	board.Active = []domain.Task{a}
	board.Deferred = []domain.Task{d}
	srv := newTestServer(t, board)

	rr := do(t, srv, http.MethodGet, "/api/tasks/deferred", "")
	require.Equal(t, http.StatusOK, rr.Code)
	tasks := decode[[]TaskResponse](t, rr)
	require.Len(t, tasks, 1)
	assert.Equal(t, d.ID.String(), tasks[0].ID)
	assert.Equal(t, 2, tasks[0].UnresolvedCount)

	rr = do(t, srv, http.MethodGet, "/api/tasks/holding", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = do(t, srv, http.MethodGet, "/api/tasks/done", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Unknown collection", decode[shared.ErrorResponse](t, rr).Error)
}

func TestDismissTaskHandler(t *testing.T) {
	t.Parallel()

	active := []domain.Task{
		task("w1", domain.LengthLong, domain.CategoryWork, 0),
		task("w2", domain.LengthShort, domain.CategoryWork, 0),
		task("s1", domain.LengthMedium, domain.CategorySelf, 0),
		task("o1", domain.LengthMicro, domain.CategoryOthers, 0),
		task("p1", domain.LengthLong, domain.CategoryPassions, 0),
	}
	t6 := task("t6", domain.LengthShort, domain.CategorySelf, 0)

	seed := func() *domain.Board {
		b := domain.NewBoard(domain.ModeCategory)
		b.Active = append([]domain.Task(nil), active...)
		b.Holding = []domain.Task{t6}
		return b
	}

	t.Run("resolved with category match", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t, seed())

		rr := do(t, srv, http.MethodPost, "/api/tasks/"+active[2].ID.String()+"/dismiss", `{"resolved":true}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		resp := decode[DismissTaskResponse](t, rr)
		assert.Equal(t, OutcomeDiscarded, resp.Outcome)
		assert.Equal(t, 2, resp.Position)
		require.NotNil(t, resp.Replacement)
		assert.Equal(t, t6.ID.String(), resp.Replacement.ID)
		assert.Equal(t, "holding", resp.ReplacementSource)
		require.Len(t, resp.Board.Active, 5)
		assert.Equal(t, t6.ID.String(), resp.Board.Active[2].ID)
		assert.Empty(t, resp.Board.Holding)
	})

	t.Run("unresolved goes to holding", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t, seed())

		rr := do(t, srv, http.MethodPost, "/api/tasks/"+active[0].ID.String()+"/dismiss", `{"resolved":false}`)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[DismissTaskResponse](t, rr)
		assert.Equal(t, "holding", resp.Outcome)
		assert.Equal(t, 1, resp.Dismissed.UnresolvedCount)
		require.Len(t, resp.Board.Holding, 1)
		assert.Equal(t, active[0].ID.String(), resp.Board.Holding[0].ID)
	})

	errorCases := []struct {
		name   string
		path   string
		body   string
		status int
		msg    string
	}{
		{
			name:   "bad uuid",
			path:   "/api/tasks/not-a-uuid/dismiss",
			body:   `{"resolved":true}`,
			status: http.StatusBadRequest,
			msg:    "Invalid task ID",
		},
		{
			name:   "unknown task",
			path:   "/api/tasks/" + uuid.NewString() + "/dismiss",
			body:   `{"resolved":true}`,
			status: http.StatusNotFound,
			msg:    "Task not found in active queue",
		},
		{
			name:   "task in holding is not dismissable",
			path:   "/api/tasks/" + t6.ID.String() + "/dismiss",
			body:   `{"resolved":true}`,
			status: http.StatusNotFound,
			msg:    "Task not found in active queue",
		},
		{
			name:   "missing resolved flag",
			path:   "/api/tasks/" + active[0].ID.String() + "/dismiss",
			body:   `{}`,
			status: http.StatusBadRequest,
			msg:    "Invalid resolved: required field",
		},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := newTestServer(t, seed())

			rr := do(t, srv, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, tc.msg, decode[shared.ErrorResponse](t, rr).Error)

			board := decode[BoardResponse](t, do(t, srv, http.MethodGet, "/api/board", ""))
			assert.Len(t, board.Active, 5)
			assert.Len(t, board.Holding, 1)
		})
	}
}

func TestSetModeHandler(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	rr := do(t, srv, http.MethodPut, "/api/mode", `{"mode":"chaos"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ModeResponse{Mode: "Chaos", Previous: "Category"}, decode[ModeResponse](t, rr))

	rr = do(t, srv, http.MethodPut, "/api/mode", `{"mode":"Oldest"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid selection mode", decode[shared.ErrorResponse](t, rr).Error)

	board := decode[BoardResponse](t, do(t, srv, http.MethodGet, "/api/board", ""))
	assert.Equal(t, "Chaos", board.Mode)
}

// brokenService fails every call with an internal error.
type brokenService struct{ err error }

func (s brokenService) AddTask(context.Context, triage.AddTaskInput) (*triage.AddResult, error) {
	return nil, s.err
}

func (s brokenService) DismissTask(context.Context, uuid.UUID, bool) (*triage.DismissResult, error) {
	return nil, s.err
}

func (s brokenService) SetPullMode(context.Context, domain.SelectionMode) (*triage.ModeChange, error) {
	return nil, s.err
}

func (s brokenService) Board(context.Context) (*domain.Board, error) { return nil, s.err }

func (s brokenService) Collection(context.Context, domain.Collection) ([]domain.Task, error) {
	return nil, s.err
}

func (s brokenService) Mode(context.Context) (domain.SelectionMode, error) { return "", s.err }

func TestInternalErrorsAreSanitized(t *testing.T) {
	t.Parallel()

	cause := triage.NewAddTaskError("failed to store task", errors.New("secret=hunter22 at /srv/triage/state"))
	l, _ := logger.NewTestLogger(t)
	srv := routes(NewTriageHandler(brokenService{err: cause}, l))

	cases := []struct {
		method, path, body, msg string
	}{
		{http.MethodGet, "/api/board", "", "Failed to read board"},
		{http.MethodGet, "/api/tasks/active", "", "Failed to read tasks"},
		{http.MethodPost, "/api/tasks", `{"title":"x","length":"Long","category":"Work"}`, "Failed to add task"},
		{http.MethodPost, "/api/tasks/" + uuid.NewString() + "/dismiss", `{"resolved":false}`, "Failed to dismiss task"},
		{http.MethodPut, "/api/mode", `{"mode":"Length"}`, "Failed to set selection mode"},
	}
	for _, tc := range cases {
		rr := do(t, srv, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, tc.path)
		assert.Equal(t, tc.msg, decode[shared.ErrorResponse](t, rr).Error)
		assert.NotContains(t, rr.Body.String(), "hunter22")
	}
}

func TestNewTriageHandlerPanicsWithoutService(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewTriageHandler(nil, nil) })
}
