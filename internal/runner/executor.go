package runner

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zinc-sig/scripts/internal/logger"
	"github.com/zinc-sig/scripts/internal/manifest"
	"github.com/zinc-sig/scripts/internal/output"
)

// DefaultManifestPath is the manifest the CLI reports on, relative to the
// working directory.
const DefaultManifestPath = "frontend/package.json"

type Status string

const (
	StatusFound      Status = "found"
	StatusAbsent     Status = "absent"
	StatusNotMapping Status = "not_mapping"
)

type Config struct {
	ManifestPath string
	Format       output.Format
	// Strict fails when the scripts field exists but is not a mapping.
	Strict  bool
	Verbose bool
	// Stderr receives the verbose execution summary. Nil means os.Stderr.
	Stderr io.Writer
}

type Result struct {
	ManifestPath  string
	Status        Status
	Entries       int
	ExecutionTime int64 // milliseconds
}

// Execute loads the manifest at config.ManifestPath and writes its scripts
// table to stdout. Nothing is written to stdout unless the manifest loads
// cleanly.
func Execute(config *Config, stdout io.Writer) (*Result, error) {
	if config.ManifestPath == "" {
		return nil, fmt.Errorf("manifest path is required")
	}
	stderr := config.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	if config.Verbose {
		PrintPreExecution(stderr, config)
	}

	startTime := time.Now()

	m, err := manifest.Load(config.ManifestPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded manifest %s", m.Path)

	entries, status, err := collect(m, config.Strict)
	if err != nil {
		return nil, err
	}

	w := output.NewWriter(stdout, config.Format)
	for _, entry := range entries {
		if err := w.Write(entry); err != nil {
			return nil, fmt.Errorf("failed to write script %s: %w", entry.Name, err)
		}
	}

	result := &Result{
		ManifestPath:  config.ManifestPath,
		Status:        status,
		Entries:       len(entries),
		ExecutionTime: time.Since(startTime).Milliseconds(),
	}

	if config.Verbose {
		PrintPostExecution(stderr, result)
	}

	return result, nil
}

func collect(m *manifest.Manifest, strict bool) ([]output.Entry, Status, error) {
	scripts, ok := m.Scripts()
	if !ok {
		status, err := missingScripts(m, strict)
		return nil, status, err
	}

	entries := make([]output.Entry, 0, scripts.Len())
	_ = scripts.Each(func(name string, v manifest.Value) error {
		entries = append(entries, output.Entry{
			Name:    name,
			Command: v.String(),
			Kind:    v.Kind().String(),
		})
		return nil
	})

	logger.Debug("found %d scripts in %s", len(entries), m.Path)
	return entries, StatusFound, nil
}

// missingScripts classifies a manifest without a usable scripts table.
func missingScripts(m *manifest.Manifest, strict bool) (Status, error) {
	fields := logrus.Fields{"path": m.Path, "field": manifest.ScriptsField}

	field, ok := m.Field(manifest.ScriptsField)
	if !ok {
		logger.WithFields(fields).Debug("manifest has no scripts field")
		return StatusAbsent, nil
	}

	if strict {
		return StatusNotMapping, &manifest.ShapeError{
			Path:  m.Path,
			Field: manifest.ScriptsField,
			Kind:  field.Kind(),
		}
	}
	fields["kind"] = field.Kind().String()
	logger.WithFields(fields).Debug("scripts field is not a mapping, treating it as absent")
	return StatusNotMapping, nil
}
