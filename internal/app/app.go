package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/wordsearchgo/internal/config"
	"github.com/vk/wordsearchgo/internal/ctxlog"
)

// App encapsulates one fully configured generator run: the loaded batch
// model, the logger, and the writers for puzzle output and diagnostics.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	model      *config.Model
	httpServer *http.Server
}

// NewApp constructs the application: it builds the logger from the config,
// then loads and validates every puzzle batch through the given loader.
// A failure to load configuration is a fatal startup error and panics; the
// entrypoint recovers it into a clean exit.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.GridPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded into unified model.", "batches", len(model.Batches))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  model,
	}
}

// Model returns the loaded batch model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
