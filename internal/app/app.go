package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/wirekit/internal/ctxlog"
	"github.com/specialistvlad/wirekit/internal/discovery"
	"github.com/specialistvlad/wirekit/internal/handle"
	"github.com/specialistvlad/wirekit/internal/manifest"
	"github.com/specialistvlad/wirekit/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	scanner  *discovery.Scanner
	locator  *handle.Locator
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with compiled-in components.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreComponents
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All components registered.", "count", len(modules))

	// Attach manifest metadata, then validate code/manifest parity.
	if appConfig.ManifestsPath != "" {
		manifests, err := manifest.LoadDir(ctx, appConfig.ManifestsPath)
		if err != nil {
			// A failure to load manifests is a fatal startup error.
			panic(fmt.Errorf("failed to load component manifests: %w", err))
		}
		reg.ApplyManifests(ctx, manifests)
	}
	if err := reg.Validate(ctx); err != nil {
		// A mismatch between code and manifests is a programmer error.
		panic(err)
	}

	enum := &discovery.PathEnumerator{Roots: appConfig.ServiceRoots}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		scanner:  discovery.NewScanner(enum, reg, appConfig.WorkerCount),
		locator:  handle.NewLocator(reg),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Locator returns the application's method-handle locator.
func (a *App) Locator() *handle.Locator {
	return a.locator
}
