package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/firefly-engineering/vlsm-ctl/internal/app"
	"github.com/firefly-engineering/vlsm-ctl/internal/audit"
	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/request"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// paths returns the default paths configuration.
// This is a helper to reduce repetition in commands.
func paths() *config.Paths {
	return app.Default.Paths
}

// plansDir returns the plans directory of the application.
func plansDir() string {
	return app.Default.PlansDir()
}

// loadConfig applies the config file. An explicit --config must exist; the
// default location is optional.
func loadConfig() error {
	path := configPath
	if path == "" {
		path = paths().ConfigFile
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	} else if _, err := os.Stat(path); err != nil {
		return errors.ConfigError("failed to load config", err)
	}

	if err := app.Default.LoadConfig(path); err != nil {
		return err
	}

	// Config can raise verbosity but flags always win
	cfg := app.Default.Config
	if cfg.Logging.Verbose || cfg.Logging.JSON {
		logging.Setup(verbose || cfg.Logging.Verbose, jsonOutput || cfg.Logging.JSON, os.Stderr)
	}
	return nil
}

// loadPlan loads a saved plan by name or returns a PlanNotFound error.
func loadPlan(name string) (*config.Plan, error) {
	if err := config.ValidatePlanName(name); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	plan, err := config.LoadNamedPlan(plansDir(), name)
	if err != nil {
		return nil, planError(name, err)
	}
	return plan, nil
}

// loadPlanFile loads a plan from an explicit path.
func loadPlanFile(path string) (*config.Plan, error) {
	plan, err := config.LoadPlan(path)
	if err != nil {
		return nil, planError(path, err)
	}
	return plan, nil
}

func planError(name string, err error) error {
	switch {
	case errors.Is(err, config.ErrPlanNotFound), errors.Is(err, fs.ErrNotExist):
		return errors.PlanNotFound(name)
	case errors.Is(err, vlsm.ErrInvalidInput):
		return errors.InvalidInput(err)
	}
	return errors.ConfigError("failed to load plan", err)
}

// planExists reports whether a plan with this name is already saved.
func planExists(name string) bool {
	_, err := config.LoadNamedPlan(plansDir(), name)
	return err == nil || !errors.Is(err, config.ErrPlanNotFound)
}

// recordEvent appends to the history of a saved plan. Ad-hoc requests
// (empty plan name) have no history. Failures only warn.
func recordEvent(plan string, eventType audit.EventType, details string) {
	if plan == "" || config.ValidatePlanName(plan) != nil {
		return
	}
	if err := audit.NewLogger(paths().HistoryDir).LogEvent(eventType, plan, details); err != nil {
		logging.Warn("failed to record history", "plan", plan, "event", eventType, "error", err)
		logWarning("Failed to record history for %s: %v", plan, err)
	}
}

// savePlan writes a plan, reports its location and records eventType.
func savePlan(plan *config.Plan, force bool, eventType audit.EventType) error {
	if err := config.ValidatePlanName(plan.Name); err != nil {
		return errors.ValidationError(err.Error())
	}
	if !force && planExists(plan.Name) {
		return errors.ValidationError("plan " + plan.Name + " already exists (use --force to overwrite)")
	}

	path, err := config.SavePlan(plansDir(), plan)
	if err != nil {
		if errors.Is(err, vlsm.ErrInvalidInput) {
			return errors.InvalidInput(err)
		}
		return errors.ConfigError("failed to save plan", err)
	}

	logSuccess("Saved plan %s to %s", plan.Name, path)
	recordEvent(plan.Name, eventType, fmt.Sprintf("network=%s lans=%d", plan.Network, len(plan.Demands)))
	return nil
}

// planAndRender allocates req, prints the report and optionally exports it.
// A non-empty plan name records the outcome in that plan's history and
// names the exported file.
func planAndRender(req *request.Request, plan, format, outputDir string) error {
	r, err := app.Default.Allocate(req)
	if err != nil {
		recordEvent(plan, audit.EventError, err.Error())
		return err
	}
	recordEvent(plan, audit.EventAllocate, fmt.Sprintf("network=%s subnets=%d leftover=%d used=%d/%d",
		req.Network, len(r.Allocated), len(r.Leftover), r.Used(), r.Capacity()))

	if err := app.Default.Render(r, format); err != nil {
		return err
	}

	if outputDir != "" {
		exportName := plan
		if exportName == "" {
			exportName = defaultExportName
		}
		path, err := app.Default.Export(outputDir, exportName, r, format)
		if err != nil {
			return err
		}
		logSuccess("Report written to %s", path)
		recordEvent(plan, audit.EventExport, path)
	}
	return nil
}
