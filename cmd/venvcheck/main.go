package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Bare invocation from the project root runs the whole checklist,
	// matching the original one-shot script.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "run")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "venvcheck",
	Short:   "Checks that your project's local virtual environment is ready",
	Long:    "Venvcheck verifies that a project's .venv exists, is activated, and has every package from requirements.txt installed, with guidance on how to fix whatever is missing.",
	Version: Version,
}
