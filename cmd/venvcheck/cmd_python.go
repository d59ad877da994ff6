package main

import (
	"github.com/spf13/cobra"

	"github.com/denisecase/datafun-venv-checker/pkg/pipquery"
	"github.com/denisecase/datafun-venv-checker/pkg/pycheck"
)

var (
	pythonInterp string
	pythonMin    string
)

var pythonCmd = &cobra.Command{
	Use:   "python",
	Short: "Check that a python interpreter is available",
	Args:  cobra.NoArgs,
	RunE:  runPythonCheck,
}

func init() {
	pythonCmd.Flags().StringVar(&pythonInterp, "python", pycheck.DefaultPython, "interpreter command to check")
	pythonCmd.Flags().StringVar(&pythonMin, "min", "", "minimum version required (inclusive)")
	rootCmd.AddCommand(pythonCmd)
}

func runPythonCheck(_ *cobra.Command, _ []string) error {
	c := &pycheck.Check{
		Python:     pythonInterp,
		MinVersion: pythonMin,
		Runner:     &pipquery.RealRunner{},
	}

	return runCheck(c)
}
