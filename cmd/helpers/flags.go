package helpers

import (
	"github.com/spf13/cobra"
	"github.com/zinc-sig/scripts/cmd/config"
)

// SetupCommonFlags adds logging flags to a command
func SetupCommonFlags(cmd *cobra.Command, flags *config.CommonFlags) {
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log debug details and an execution summary to stderr")
	cmd.PersistentFlags().BoolVar(&flags.LogJSON, "log-json", false, "Write stderr logs as JSON lines")
}

// SetupOutputFlags adds report-shaping flags to a command
func SetupOutputFlags(cmd *cobra.Command, cfg *config.OutputConfig) {
	cmd.Flags().BoolVarP(&cfg.JSON, "json", "j", false, "Output one JSON object per script instead of 'name: command' lines")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", false, "Fail when the scripts field is present but not an object")
}
