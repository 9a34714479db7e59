package testutil

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"testing"
)

//go:embed fixtures/*.toml fixtures/*.json
var fixturesFS embed.FS

// Fixture names
const (
	CampusPlan       = "campus.toml"
	OverflowPlan     = "overflow.toml"
	BranchPlan       = "branch.json"
	InvalidHostsPlan = "invalid_hosts.toml"
)

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile(path.Join("fixtures", name))
}

// WriteFixture copies a fixture into dir and returns its path.
func WriteFixture(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}

	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", dst, err)
	}
	return dst
}
