package runner

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zinc-sig/scripts/internal/logger"
	"github.com/zinc-sig/scripts/internal/manifest"
	"github.com/zinc-sig/scripts/internal/output"
)

// Helper functions
func createManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runReport(t *testing.T, config *Config) (string, *Result, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	config.Stderr = &stderr
	result, err := Execute(config, &stdout)
	return stdout.String(), result, err
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		strict      bool
		wantOutput  string
		wantStatus  Status
		wantEntries int
	}{
		{
			name:        "scripts in document order",
			content:     `{"scripts": {"build": "webpack", "test": "jest"}}`,
			wantOutput:  "build: webpack\ntest: jest\n",
			wantStatus:  StatusFound,
			wantEntries: 2,
		},
		{
			name:        "order is not alphabetical",
			content:     `{"scripts": {"start": "vite", "build": "vite build", "preview": "vite preview"}}`,
			wantOutput:  "start: vite\nbuild: vite build\npreview: vite preview\n",
			wantStatus:  StatusFound,
			wantEntries: 3,
		},
		{
			name:       "no scripts field",
			content:    `{"name": "app"}`,
			wantOutput: "",
			wantStatus: StatusAbsent,
		},
		{
			name:       "empty scripts table",
			content:    `{"scripts": {}}`,
			wantOutput: "",
			wantStatus: StatusFound,
		},
		{
			name:       "top level is a sequence",
			content:    `[1, 2, 3]`,
			wantOutput: "",
			wantStatus: StatusAbsent,
		},
		{
			name:       "scripts is text",
			content:    `{"scripts": "webpack"}`,
			wantOutput: "",
			wantStatus: StatusNotMapping,
		},
		{
			name:       "scripts is a sequence",
			content:    `{"scripts": ["build", "test"]}`,
			wantOutput: "",
			wantStatus: StatusNotMapping,
		},
		{
			name:        "other fields are ignored",
			content:     `{"name": "app", "version": "1.0.0", "dependencies": {"react": "^18"}, "scripts": {"dev": "vite"}, "private": true}`,
			wantOutput:  "dev: vite\n",
			wantStatus:  StatusFound,
			wantEntries: 1,
		},
		{
			name:        "non-text values use natural form",
			content:     `{"scripts": {"retries": 3, "ratio": 1.50, "on": true, "off": null, "list": ["a", 1], "obj": {"x": "y"}}}`,
			wantOutput:  "retries: 3\nratio: 1.5\non: true\noff: null\nlist: [\"a\",1]\nobj: {\"x\":\"y\"}\n",
			wantStatus:  StatusFound,
			wantEntries: 6,
		},
		{
			name:        "shell operators survive",
			content:     `{"scripts": {"ci": "npm run lint && npm test > out.txt"}}`,
			wantOutput:  "ci: npm run lint && npm test > out.txt\n",
			wantStatus:  StatusFound,
			wantEntries: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createManifest(t, t.TempDir(), tt.content)

			out, result, err := runReport(t, &Config{ManifestPath: path, Strict: tt.strict})
			require.NoError(t, err)

			assert.Equal(t, tt.wantOutput, out)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantEntries, result.Entries)
			assert.Equal(t, path, result.ManifestPath)
		})
	}
}

func TestExecuteErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "frontend", "package.json")

		out, result, err := runReport(t, &Config{ManifestPath: path})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, out)

		var accessErr *manifest.FileAccessError
		assert.True(t, errors.As(err, &accessErr))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("invalid json", func(t *testing.T) {
		path := createManifest(t, t.TempDir(), "{invalid json")

		out, _, err := runReport(t, &Config{ManifestPath: path})
		require.Error(t, err)
		assert.Empty(t, out)

		var parseErr *manifest.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("valid prefix with trailing garbage", func(t *testing.T) {
		path := createManifest(t, t.TempDir(), `{"scripts": {"build": "webpack"}} trailing`)

		out, _, err := runReport(t, &Config{ManifestPath: path})
		require.Error(t, err)
		assert.Empty(t, out)
	})

	for name, content := range map[string]string{
		"leading zero number": `{"scripts": {"build": 01}}`,
		"trailing dot number": `{"scripts": {"build": 1.}}`,
		"raw tab in command":  "{\"scripts\": {\"build\": \"a\tb\"}}",
	} {
		t.Run(name, func(t *testing.T) {
			path := createManifest(t, t.TempDir(), content)

			out, _, err := runReport(t, &Config{ManifestPath: path})
			require.Error(t, err)
			assert.Empty(t, out)

			var parseErr *manifest.ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}

	t.Run("strict rejects non-mapping scripts", func(t *testing.T) {
		path := createManifest(t, t.TempDir(), `{"scripts": "webpack"}`)

		out, _, err := runReport(t, &Config{ManifestPath: path, Strict: true})
		require.Error(t, err)
		assert.Empty(t, out)

		var shapeErr *manifest.ShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, manifest.KindText, shapeErr.Kind)
	})

	t.Run("strict allows absent scripts", func(t *testing.T) {
		path := createManifest(t, t.TempDir(), `{"name": "app"}`)

		out, result, err := runReport(t, &Config{ManifestPath: path, Strict: true})
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, StatusAbsent, result.Status)
	})

	t.Run("empty path", func(t *testing.T) {
		_, _, err := runReport(t, &Config{})
		assert.Error(t, err)
	})
}

func TestExecuteIdempotent(t *testing.T) {
	path := createManifest(t, t.TempDir(), `{"scripts": {"b": "2", "a": "1", "c": {"nested": [true]}}}`)

	first, _, err := runReport(t, &Config{ManifestPath: path})
	require.NoError(t, err)
	second, _, err := runReport(t, &Config{ManifestPath: path})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecuteOutputRoundTrip(t *testing.T) {
	path := createManifest(t, t.TempDir(), `{"scripts": {"dev": "vite --port 3000", "echo": "echo a: b", "e2e": "playwright test"}}`)

	out, _, err := runReport(t, &Config{ManifestPath: path})
	require.NoError(t, err)

	want := [][2]string{{"dev", "vite --port 3000"}, {"echo", "echo a: b"}, {"e2e", "playwright test"}}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(want))
	for i, line := range lines {
		name, command, err := output.ParseLine(line)
		require.NoError(t, err)
		assert.Equal(t, want[i][0], name)
		assert.Equal(t, want[i][1], command)
	}
}

func TestExecuteJSONFormat(t *testing.T) {
	path := createManifest(t, t.TempDir(), `{"scripts": {"build": "webpack", "retries": 2}}`)

	out, _, err := runReport(t, &Config{ManifestPath: path, Format: output.FormatJSON})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"name":"build","command":"webpack","kind":"text"}`, lines[0])
	assert.JSONEq(t, `{"name":"retries","command":"2","kind":"number"}`, lines[1])
}

func TestExecuteVerboseSummary(t *testing.T) {
	path := createManifest(t, t.TempDir(), `{"scripts": {"build": "webpack"}}`)

	var stdout, stderr bytes.Buffer
	_, err := Execute(&Config{ManifestPath: path, Verbose: true, Stderr: &stderr}, &stdout)
	require.NoError(t, err)

	assert.Equal(t, "build: webpack\n", stdout.String())
	assert.Contains(t, stderr.String(), "Manifest: "+path)
	assert.Contains(t, stderr.String(), "Status:         found")
	assert.Contains(t, stderr.String(), "Scripts:        1")
}

func TestExecuteIgnoresLoneSurrogateInOtherFields(t *testing.T) {
	path := createManifest(t, t.TempDir(), `{"description": "\ud800", "\udbff": true, "scripts": {"build": "webpack"}}`)

	out, result, err := runReport(t, &Config{ManifestPath: path})
	require.NoError(t, err)
	assert.Equal(t, "build: webpack\n", out)
	assert.Equal(t, StatusFound, result.Status)
}

func TestExecuteLeavesConfigUntouched(t *testing.T) {
	path := createManifest(t, t.TempDir(), `{"scripts": {"build": "webpack"}}`)
	config := &Config{ManifestPath: path}

	var stdout bytes.Buffer
	_, err := Execute(config, &stdout)
	require.NoError(t, err)

	assert.Nil(t, config.Stderr)
	assert.Equal(t, "build: webpack\n", stdout.String())
}

func TestExecuteDebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	logger.Init(true, false)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.Init(false, false)
	})

	path := createManifest(t, t.TempDir(), `{"scripts": {"build": "webpack", "test": "jest"}}`)
	_, _, err := runReport(t, &Config{ManifestPath: path})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "found 2 scripts in "+path)

	logs.Reset()
	path = createManifest(t, t.TempDir(), `{"scripts": "webpack"}`)
	_, _, err = runReport(t, &Config{ManifestPath: path})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "kind=text")
}
