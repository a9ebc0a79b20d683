package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/triage-api/internal/config"
	"github.com/phrazzld/triage-api/internal/domain"
	"github.com/phrazzld/triage-api/internal/domain/selection"
	"github.com/phrazzld/triage-api/internal/events"
	"github.com/phrazzld/triage-api/internal/platform/memory"
	"github.com/phrazzld/triage-api/internal/service/auth"
	"github.com/phrazzld/triage-api/internal/service/triage"
	"github.com/phrazzld/triage-api/internal/store"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	boardStore    store.BoardStore
	eventEmitter  events.EventEmitter
	triageService triage.TriageService
	jwtService    auth.JWTService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	mode, err := domain.ParseSelectionMode(cfg.Triage.DefaultMode)
	if err != nil {
		return nil, fmt.Errorf("invalid default selection mode %q: %w", cfg.Triage.DefaultMode, err)
	}
	app.boardStore = memory.NewBoardStore(mode, logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogEventHandler(logger))
	app.eventEmitter = emitter

	selector := selection.NewSelectorWithSource(selection.NewRandomSource(cfg.Triage.ChaosSeed))
	app.triageService = triage.NewTriageService(app.boardStore, selector, app.eventEmitter, logger)

	logger.Info("Application initialized successfully", "mode", string(mode))
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
