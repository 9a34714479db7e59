package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/report"
	"github.com/firefly-engineering/vlsm-ctl/internal/request"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}
	if app.Paths == nil {
		t.Error("Paths should not be nil")
	}
	if app.Config == nil || app.Config.Format != report.FormatTable {
		t.Errorf("Config = %+v, want defaults", app.Config)
	}
}

func TestNew_WithOptions(t *testing.T) {
	paths := &config.Paths{ConfigDir: "/custom", ConfigFile: "/custom/config.toml", PlansDir: "/custom/plans"}
	cfg := &config.Config{Format: report.FormatJSON}
	var buf bytes.Buffer

	app := New(WithPaths(paths), WithConfig(cfg), WithOutput(&buf))

	if app.Paths != paths {
		t.Error("WithPaths did not set custom paths")
	}
	if app.Config != cfg {
		t.Error("WithConfig did not set config")
	}
	if app.Out != &buf {
		t.Error("WithOutput did not set writer")
	}
}

func TestPlansDir(t *testing.T) {
	app := New(WithPaths(&config.Paths{PlansDir: "/default/plans"}))
	if got := app.PlansDir(); got != "/default/plans" {
		t.Errorf("PlansDir() = %q", got)
	}

	app.Config.PlansDir = "/override"
	if got := app.PlansDir(); got != "/override" {
		t.Errorf("PlansDir() = %q, want config override", got)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`format = "text"`), 0644); err != nil {
		t.Fatal(err)
	}

	app := New(WithPaths(&config.Paths{ConfigFile: path}))
	if err := app.LoadConfig(""); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if app.Config.Format != report.FormatText {
		t.Errorf("Format = %q, want text", app.Config.Format)
	}

	if err := os.WriteFile(path, []byte(`format = "pdf"`), 0644); err != nil {
		t.Fatal(err)
	}
	err := app.LoadConfig(path)
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfigError)
	}
}

func TestAllocateAndRender(t *testing.T) {
	var buf bytes.Buffer
	app := New(WithOutput(&buf), WithConfig(&config.Config{Format: report.FormatText}))

	r, err := app.Allocate(&request.Request{
		Network: "192.168.0.0/24",
		Demands: []vlsm.Demand{{Name: "A", Hosts: 100}},
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if err := app.Render(r, ""); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "192.168.0.0/25 <- A") {
		t.Errorf("text output missing placement line:\n%s", buf.String())
	}

	if err := app.Render(r, "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestExport(t *testing.T) {
	app := New(WithOutput(&bytes.Buffer{}), WithConfig(&config.Config{Format: report.FormatJSON}))

	r, err := app.Allocate(&request.Request{
		Network: "10.0.0.0/24",
		Demands: []vlsm.Demand{{Name: "lab", Hosts: 12}},
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	dir := t.TempDir()
	path, err := app.Export(dir, "lab", r, "")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if path != filepath.Join(dir, "lab.json") {
		t.Errorf("path = %s, want lab.json in %s", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `"network": "10.0.0.0"`) {
		t.Errorf("export is not the JSON document:\n%s", data)
	}

	if _, err := app.Export(dir, "lab", r, "yaml"); errors.GetExitCode(err) != errors.ExitGeneralError {
		t.Errorf("unknown format: err = %v", err)
	}
}

func TestAllocate_ExitCodes(t *testing.T) {
	app := New(WithOutput(&bytes.Buffer{}))

	tests := []struct {
		name string
		req  *request.Request
		want int
	}{
		{"capacity", &request.Request{Network: "10.0.0.0/30", Demands: []vlsm.Demand{{Name: "x", Hosts: 10}}}, errors.ExitCapacityExceeded},
		{"invalid hosts", &request.Request{Network: "10.0.0.0/24", Demands: []vlsm.Demand{{Name: "x", Hosts: -1}}}, errors.ExitInvalidInput},
		{"invalid network", &request.Request{Network: "10.0.0/24", Demands: []vlsm.Demand{{Name: "x", Hosts: 1}}}, errors.ExitInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.Allocate(tt.req)
			if got := errors.GetExitCode(err); got != tt.want {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.want, err)
			}
		})
	}
}

func TestAllocate_LogsFailure(t *testing.T) {
	var logs bytes.Buffer
	logging.Setup(false, false, &logs)
	t.Cleanup(func() { logging.Setup(false, false, nil) })

	app := New(WithOutput(&bytes.Buffer{}))
	req := &request.Request{Network: "10.0.0.0/30", Demands: []vlsm.Demand{{Name: "x", Hosts: 10}}}
	if _, err := app.Allocate(req); err == nil {
		t.Fatal("expected capacity error")
	}

	output := logs.String()
	for _, want := range []string{"level=ERROR", "allocation failed", "network=10.0.0.0/30", "demands=1"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in log output, got: %s", want, output)
		}
	}
}

func TestSetDefault(t *testing.T) {
	original := Default
	defer func() { Default = original }()

	custom := New(WithConfig(&config.Config{Format: report.FormatJSON}))
	SetDefault(custom)

	if Default != custom {
		t.Error("SetDefault did not set the default app")
	}

	ResetDefault()
	if Default == custom {
		t.Error("ResetDefault did not reset the default app")
	}
}
