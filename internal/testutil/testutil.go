// Package testutil provides test utilities for command and integration tests
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/vlsm-ctl/internal/app"
	"github.com/firefly-engineering/vlsm-ctl/internal/config"
)

// TestEnv holds the test environment
type TestEnv struct {
	T      *testing.T
	TmpDir string
	Paths  *config.Paths
	Config *config.Config
	Out    *bytes.Buffer
	App    *app.App
}

// NewTestEnv creates a temp config dir, an empty plans dir and an App that
// renders into an in-memory buffer without color. The App is installed as
// app.Default until the test ends.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "config")

	paths := &config.Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, config.ConfigFileName),
		PlansDir:   filepath.Join(configDir, "plans"),
		HistoryDir: filepath.Join(configDir, "history"),
	}

	for _, dir := range []string{paths.ConfigDir, paths.PlansDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	cfg := config.Default()
	cfg.Color = false

	out := &bytes.Buffer{}
	testApp := app.New(
		app.WithPaths(paths),
		app.WithConfig(cfg),
		app.WithOutput(out),
	)

	previous := app.Default
	app.SetDefault(testApp)
	t.Cleanup(func() { app.SetDefault(previous) })

	return &TestEnv{
		T:      t,
		TmpDir: tmpDir,
		Paths:  paths,
		Config: cfg,
		Out:    out,
		App:    testApp,
	}
}

// AddPlan copies a fixture into the plans directory.
func (e *TestEnv) AddPlan(fixture string) string {
	e.T.Helper()
	return WriteFixture(e.T, e.Paths.PlansDir, fixture)
}

// WriteConfig writes content as the config file.
func (e *TestEnv) WriteConfig(content string) {
	e.T.Helper()
	if err := os.WriteFile(e.Paths.ConfigFile, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write config: %v", err)
	}
}
