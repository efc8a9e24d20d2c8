package runner

import (
	"fmt"
	"io"
)

// PrintPreExecution prints the report settings before the manifest is read
func PrintPreExecution(w io.Writer, config *Config) {
	format := config.Format
	if format == "" {
		format = "text"
	}

	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "Scripts Report Details")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Manifest: %s\n", config.ManifestPath)
	fmt.Fprintf(w, "Format:   %s\n", format)
	if config.Strict {
		fmt.Fprintln(w, "Strict:   true")
	}
	fmt.Fprintln(w, "----------------------------------------")
}

// PrintPostExecution prints the outcome after the scripts were written
func PrintPostExecution(w io.Writer, result *Result) {
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, "Report Results:")
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Status:         %s\n", result.Status)
	fmt.Fprintf(w, "Scripts:        %d\n", result.Entries)
	fmt.Fprintf(w, "Execution Time: %d ms\n", result.ExecutionTime)
	fmt.Fprintln(w, "========================================")
}
