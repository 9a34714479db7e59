package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// Format selects a renderer.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (must be text, table, or json)", s)
}

// Extension returns the file extension used by Export.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// Options tune rendering.
type Options struct {
	// Color enables ANSI styling in the table format.
	Color bool
}

// Render writes r to w in format f.
func Render(w io.Writer, r *vlsm.Report, f Format, opts Options) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(r))
		return err
	case FormatTable:
		_, err := io.WriteString(w, Table(r, opts.Color)+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(r))
	}
	return fmt.Errorf("unknown format %q", f)
}

// Export renders r into dir/name<ext>. The file is confined to dir even if
// name contains path elements.
func Export(dir, name string, f Format, r *vlsm.Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path, err := securejoin.SecureJoin(dir, name+f.Extension())
	if err != nil {
		return "", fmt.Errorf("invalid output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	// Files never carry terminal escapes
	if err := Render(file, r, f, Options{Color: false}); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, file.Close()
}
