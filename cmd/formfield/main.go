package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formfield",
		Short: "Render HTML form fields from a form model",
		Long: `formfield renders form fields (inputs, labels, hints, errors and
button groups) for the attributes of a YAML or JSON form model, styled by
named presets or theme manifests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		presetsCmd(),
		serveCmd(),
		versionCmd(),
	)
	return rootCmd
}
