package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zinc-sig/scripts/cmd/config"
	"github.com/zinc-sig/scripts/cmd/helpers"
	"github.com/zinc-sig/scripts/internal/logger"
	"github.com/zinc-sig/scripts/internal/runner"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var (
		common config.CommonFlags
		out    config.OutputConfig
	)

	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "List the named scripts of frontend/package.json",
		Long: `Scripts reads frontend/package.json from the current directory and prints
every entry of its "scripts" object as 'name: command', one per line, in the
order they appear in the file.

A manifest without a "scripts" object prints nothing and exits successfully.
A missing or malformed manifest exits with a non-zero status.`,
		Example: `  scripts
  scripts --json
  scripts --strict -v`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(common.Verbose, common.LogJSON)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportCommand(cmd, runner.DefaultManifestPath, &out, &common)
		},
	}

	helpers.SetupCommonFlags(cmd, &common)
	helpers.SetupOutputFlags(cmd, &out)

	return cmd
}

func reportCommand(cmd *cobra.Command, path string, out *config.OutputConfig, common *config.CommonFlags) error {
	cfg := helpers.BuildRunnerConfig(path, out, common)
	cfg.Stderr = cmd.ErrOrStderr()

	_, err := runner.Execute(cfg, cmd.OutOrStdout())
	return err
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		helpers.ReportError(err)
		os.Exit(1)
	}
}
