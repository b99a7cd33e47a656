package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/taskassist/internal/assist"
	"github.com/specialistvlad/taskassist/internal/config"
	"github.com/specialistvlad/taskassist/internal/ctxlog"
	"github.com/specialistvlad/taskassist/internal/fsutil"
	"github.com/specialistvlad/taskassist/internal/hcl"
	"github.com/specialistvlad/taskassist/internal/registry"
	"github.com/specialistvlad/taskassist/internal/yaml"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	assist   *assist.Assist
	loaders  map[string]config.Loader
}

// NewApp is the constructor for the main application. The report is written
// to outW and logs to logW. The Assist is created empty; Load populates it.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New(logger)
	a := assist.New(cfg.InputRoot, cfg.OutputRoot,
		assist.WithLogger(logger),
		assist.WithScheduler(reg),
	)

	yamlLoader := yaml.NewLoader()
	app := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		assist:   a,
		loaders: map[string]config.Loader{
			".hcl":  hcl.NewLoader(),
			".yaml": yamlLoader,
			".yml":  yamlLoader,
		},
	}

	a.SetTask(DescribeTask, assist.BoundTask(app.describe))
	logger.Debug("Built-in tasks registered.", "tasks", reg.Names())
	return app
}

// Assist returns the application's configuration instance.
func (a *App) Assist() *assist.Assist { return a.assist }

// Registry returns the application's task registry.
func (a *App) Registry() *registry.Registry { return a.registry }

// Load discovers every configuration file under the configured paths, loads
// each with the loader for its extension and applies the merged model to the
// Assist. Files are applied in discovery order.
func (a *App) Load(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	files, err := fsutil.FindConfigFiles(a.config.ConfigPaths...)
	if err != nil {
		return fmt.Errorf("failed to discover config files: %w", err)
	}
	a.logger.Debug("Discovered config files.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		loader, ok := a.loaders[filepath.Ext(file)]
		if !ok {
			return fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, file)
		}
		m, err := loader.Load(ctxlog.With(ctx, "file", file), file)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		model.Merge(m)
	}

	if err := config.Apply(ctx, model, a.assist); err != nil {
		return fmt.Errorf("failed to apply configuration: %w", err)
	}
	a.logger.Info("Configuration loaded.", "files", len(files), "options", len(a.assist.Options()))
	return nil
}

// Run loads the configuration and runs the configured task.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.Load(ctx); err != nil {
		return err
	}

	fn, ok := a.registry.Lookup(a.config.Task)
	if !ok {
		return fmt.Errorf("unknown task %q (registered: %v)", a.config.Task, a.registry.Names())
	}
	a.assist.Status().SetMainTaskID(a.config.Task)

	if err := fn(ctx); err != nil {
		return fmt.Errorf("task %q failed: %w", a.config.Task, err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
