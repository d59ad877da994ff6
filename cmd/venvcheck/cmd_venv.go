package main

import (
	"github.com/spf13/cobra"

	"github.com/denisecase/datafun-venv-checker/pkg/venvcheck"
)

var venvName string

var venvCmd = &cobra.Command{
	Use:   "venv",
	Short: "Check that the virtual environment folder exists",
	Args:  cobra.NoArgs,
	RunE:  runVenvCheck,
}

func init() {
	venvCmd.Flags().StringVar(&venvName, "name", venvcheck.DefaultName, "virtual environment folder name")
	rootCmd.AddCommand(venvCmd)
}

func runVenvCheck(_ *cobra.Command, _ []string) error {
	c := &venvcheck.Check{
		Name: venvName,
		FS:   &venvcheck.RealFileSystem{},
	}

	return runCheck(c)
}
