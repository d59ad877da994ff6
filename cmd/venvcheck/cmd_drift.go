package main

import (
	"github.com/spf13/cobra"

	"github.com/denisecase/datafun-venv-checker/pkg/driftcheck"
	"github.com/denisecase/datafun-venv-checker/pkg/reqfile"
	"github.com/denisecase/datafun-venv-checker/pkg/venvcheck"
)

var (
	driftFile   string
	driftVenv   string
	driftRecord bool
)

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Check that requirements.txt is unchanged since the last recorded install",
	Args:  cobra.NoArgs,
	RunE:  runDriftCheck,
}

func init() {
	driftCmd.Flags().StringVar(&driftFile, "file", reqfile.DefaultName, "requirements file to fingerprint")
	driftCmd.Flags().StringVar(&driftVenv, "name", venvcheck.DefaultName, "virtual environment folder holding the fingerprint")
	driftCmd.Flags().BoolVar(&driftRecord, "record", false, "record the current fingerprint instead of comparing")
	rootCmd.AddCommand(driftCmd)
}

func runDriftCheck(_ *cobra.Command, _ []string) error {
	c := &driftcheck.Check{
		File:      driftFile,
		StatePath: driftcheck.DefaultStatePath(driftVenv),
		Record:    driftRecord,
	}

	return runCheck(c)
}
