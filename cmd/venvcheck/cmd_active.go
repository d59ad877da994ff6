package main

import (
	"github.com/spf13/cobra"

	"github.com/denisecase/datafun-venv-checker/pkg/activecheck"
	"github.com/denisecase/datafun-venv-checker/pkg/venvcheck"
)

var activeName string

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Check that the virtual environment is activated",
	Args:  cobra.NoArgs,
	RunE:  runActiveCheck,
}

func init() {
	activeCmd.Flags().StringVar(&activeName, "name", venvcheck.DefaultName, "expected virtual environment folder name")
	rootCmd.AddCommand(activeCmd)
}

func runActiveCheck(_ *cobra.Command, _ []string) error {
	c := &activecheck.Check{
		VenvName: activeName,
		Getter:   &activecheck.RealEnvGetter{},
	}

	return runCheck(c)
}
