package helpers

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/zinc-sig/scripts/cmd/config"
	"github.com/zinc-sig/scripts/internal/logger"
	"github.com/zinc-sig/scripts/internal/manifest"
	"github.com/zinc-sig/scripts/internal/output"
	"github.com/zinc-sig/scripts/internal/runner"
)

// BuildRunnerConfig turns parsed flags into a runner configuration for path
func BuildRunnerConfig(path string, out *config.OutputConfig, common *config.CommonFlags) *runner.Config {
	format := output.FormatText
	if out.JSON {
		format = output.FormatJSON
	}

	return &runner.Config{
		ManifestPath: path,
		Format:       format,
		Strict:       out.Strict,
		Verbose:      common.Verbose,
	}
}

// ReportError logs a failed run, tagging it with the manifest path when known
func ReportError(err error) {
	fields := logrus.Fields{}

	var accessErr *manifest.FileAccessError
	var parseErr *manifest.ParseError
	var shapeErr *manifest.ShapeError
	switch {
	case errors.As(err, &accessErr):
		fields["path"] = accessErr.Path
	case errors.As(err, &parseErr):
		fields["path"] = parseErr.Path
	case errors.As(err, &shapeErr):
		fields["path"] = shapeErr.Path
	}

	logger.WithFields(fields).Error(err.Error())
}
