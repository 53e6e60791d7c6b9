package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"api-insights/internal/analyzers"
	"api-insights/internal/events"
	internalhttp "api-insights/internal/http"
	"api-insights/internal/loaders"
	"api-insights/internal/reports"
	"api-insights/internal/shared/configs"
	"api-insights/internal/shared/filestorages"
	"api-insights/internal/shared/loggers"
	"api-insights/internal/stores"
	"api-insights/internal/streams"
	"api-insights/internal/submissions"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	analysisJobConsumer streams.AnalysisJobConsumer
	backgroundCtx       context.Context
	backgroundCancel    context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "api-insights").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stream queue
	analysisJobQueue := streams.NewPartitionedQueue[events.AnalysisRequestedEvent]()

	// Initialize reporting service and background consumer
	analysisService := analyzers.NewAnalysisService(config.Analysis)
	reportStore := stores.NewAnalysisReportStore(fileStorage)
	reportingService := reports.NewReportingService(analysisService, reportStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	analysisJobConsumer := streams.NewAnalysisJobConsumer(analysisJobQueue, reportingService, consumerLogger)

	// Initialize submission service
	logLoader := loaders.NewLogLoader()
	rawBatchStore := stores.NewRawBatchStore(fileStorage)
	analysisJobProducer := streams.NewAnalysisJobProducer(analysisJobQueue)
	submissionService := submissions.NewSubmissionService(logLoader, rawBatchStore, analysisJobProducer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(submissionService, reportingService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:              config,
		appLogger:           appLogger,
		server:              server,
		analysisJobConsumer: analysisJobConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting api-insights service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.analysisJobConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.analysisJobConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
