package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/botflow/internal/catalog"
	"github.com/specialistvlad/botflow/internal/config"
	"github.com/specialistvlad/botflow/internal/ctxlog"
	"github.com/specialistvlad/botflow/internal/dashboard"
	"github.com/specialistvlad/botflow/internal/engine"
	"github.com/specialistvlad/botflow/internal/hotload"
	"github.com/specialistvlad/botflow/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	cfg        *Config
	store      *registry.Store
	catalog    *catalog.Catalog
	snapshots  *hotload.Loader
	engine     *engine.Engine
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, registry
// store and catalog. A nil or empty module set falls back to the compiled-in
// core modules.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...catalog.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the initial configuration snapshot. Failing here is the one
	// fatal startup error in the system.
	initial, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	snapshots, err := hotload.New(initial, func(ctx context.Context) (*config.Model, error) {
		return loader.Load(ctx, appConfig.ConfigPath)
	}, hotload.DefaultDebounce)
	if err != nil {
		panic(fmt.Errorf("failed to seed config snapshot: %w", err))
	}
	logger.Debug("Initial configuration snapshot published.", "modules", len(initial.Modules))

	storeOpts := registry.DefaultOptions()
	storeOpts.Logger = logger
	store := registry.New(storeOpts)

	cat := catalog.New()
	if len(modules) == 0 {
		modules = coreModules(store)
	}
	for _, mod := range modules {
		mod.Register(cat)
	}
	logger.Debug("All modules registered.", "count", cat.Len())

	dash := dashboard.New(outW, dashboard.DefaultInterval)
	eng := engine.New(cat, snapshots, dash, appConfig.ModuleTimeout)

	return &App{
		outW:      outW,
		logger:    logger,
		cfg:       appConfig,
		store:     store,
		catalog:   cat,
		snapshots: snapshots,
		engine:    eng,
	}
}

// Engine returns the flow engine. This is primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Store returns the registry store. This is primarily for testing.
func (a *App) Store() *registry.Store {
	return a.store
}
