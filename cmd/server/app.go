package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osumare/task-api/internal/config"
	"github.com/osumare/task-api/internal/domain"
	"github.com/osumare/task-api/internal/events"
	"github.com/osumare/task-api/internal/platform/memory"
	"github.com/osumare/task-api/internal/service"
	"github.com/osumare/task-api/internal/service/auth"
	"github.com/osumare/task-api/internal/store"
)

// sampleTask is stored at startup when store.seed_sample_task is enabled.
var sampleTask = domain.Task{ID: "1", Title: "Test", Description: "Sample task"}

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore

	// Service interfaces
	jwtService  auth.JWTService
	taskService service.TaskService

	// Event system
	eventEmitter events.EventEmitter
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
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
	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("using the built-in demo JWT secret; set TASKAPI_AUTH_JWT_SECRET in production")
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.taskStore = memory.NewTaskStore(logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewAuditLogHandler(logger))
	app.eventEmitter = emitter

	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	if cfg.Store.SeedSampleTask {
		seed := sampleTask
		if err := app.taskStore.Create(context.Background(), &seed); err != nil {
			return nil, fmt.Errorf("failed to seed sample task: %w", err)
		}
		logger.Info("Seeded sample task", "task_id", seed.ID)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
