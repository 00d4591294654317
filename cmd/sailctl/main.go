// sailctl is a CLI companion to the dashboard for inspecting derived
// resource state from a terminal.
//
// Usage:
//
//	sailctl status -g argoproj.io -v v1alpha1 -r workflows
//	sailctl pipelines -n imaging
//	sailctl timeline -g argoproj.io -v v1alpha1 -r workflows
//	sailctl decode <base64-blob>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	outputFmt string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sailctl",
		Short: "Inspect normalized custom-resource state",
		Long: `sailctl classifies custom resources into canonical status labels and
severities, decodes workflow argument blobs, and lists derived pipeline
executions, the same derivations the dashboard renders.`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format: table, json, yaml")

	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(pipelinesCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(decodeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
