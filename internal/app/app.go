// Package app provides the application context for vlsm-ctl.
// It allows dependency injection for testing.
package app

import (
	"io"
	"os"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/report"
	"github.com/firefly-engineering/vlsm-ctl/internal/request"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// Config is the loaded user configuration
	Config *config.Config

	// Out receives rendered reports
	Out io.Writer
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithConfig sets a custom config
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithOutput sets the report writer
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.Out = w
	}
}

// New creates a new App with the given options.
// Without WithConfig the defaults apply until LoadConfig is called.
func New(opts ...Option) *App {
	app := &App{
		Paths:  config.DefaultPaths(),
		Config: config.Default(),
		Out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// LoadConfig reads the config file at path (or Paths.ConfigFile when empty)
// and replaces the current config.
func (a *App) LoadConfig(path string) error {
	if path == "" {
		path = a.Paths.ConfigFile
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return errors.ConfigError("failed to load config", err)
	}
	logging.Debug("loaded config", "path", path, "format", cfg.Format)
	a.Config = cfg
	return nil
}

// PlansDir returns the plans directory, honoring the config override.
func (a *App) PlansDir() string {
	if a.Config != nil && a.Config.PlansDir != "" {
		return a.Config.PlansDir
	}
	return a.Paths.PlansDir
}

// Allocate validates and runs a request. Failures carry the exit code of
// their kind.
func (a *App) Allocate(req *request.Request) (*vlsm.Report, error) {
	logging.Debug("allocating", "network", req.Network, "demands", len(req.Demands))

	r, err := req.Allocate()
	if err != nil {
		logging.Error("allocation failed", "network", req.Network, "demands", len(req.Demands), "error", err)
		return nil, errors.FromAllocation(err)
	}

	for _, b := range r.Allocated {
		logging.Debug("placed block", "name", b.Name(), "cidr", b.CIDR(), "ordinal", b.Ordinal)
	}
	logging.Debug("leftover", "blocks", len(r.Leftover), "addresses", r.Capacity()-r.Used())
	return r, nil
}

// Format resolves a format name. An empty name falls back to the config.
func (a *App) Format(name string) (report.Format, error) {
	if name == "" {
		name = string(a.Config.Format)
	}
	f, err := report.ParseFormat(name)
	if err != nil {
		return "", errors.ValidationError(err.Error())
	}
	return f, nil
}

// Render writes r to a.Out. An empty format falls back to the config.
func (a *App) Render(r *vlsm.Report, format string) error {
	f, err := a.Format(format)
	if err != nil {
		return err
	}
	return report.Render(a.Out, r, f, report.Options{Color: a.Config.Color})
}

// Export writes r to dir/name with the extension of its format.
func (a *App) Export(dir, name string, r *vlsm.Report, format string) (string, error) {
	f, err := a.Format(format)
	if err != nil {
		return "", err
	}
	path, err := report.Export(dir, name, f, r)
	if err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, "failed to export report", err)
	}
	logging.Debug("exported report", "path", path, "format", f)
	return path, nil
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
