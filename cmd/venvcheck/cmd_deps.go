package main

import (
	"github.com/spf13/cobra"

	"github.com/denisecase/datafun-venv-checker/pkg/depcheck"
	"github.com/denisecase/datafun-venv-checker/pkg/pipquery"
	"github.com/denisecase/datafun-venv-checker/pkg/reqfile"
)

var (
	depsFile  string
	depsPip   string
	depsBatch bool
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check that all declared packages are installed",
	Args:  cobra.NoArgs,
	RunE:  runDepsCheck,
}

func init() {
	depsCmd.Flags().StringVar(&depsFile, "file", reqfile.DefaultName, "requirements file to verify")
	depsCmd.Flags().StringVar(&depsPip, "pip", pipquery.DefaultPip, "package-inspection command")
	depsCmd.Flags().BoolVar(&depsBatch, "batch", false, "spawn one `pip list` instead of `pip show` per package")
	rootCmd.AddCommand(depsCmd)
}

func runDepsCheck(_ *cobra.Command, _ []string) error {
	c := &depcheck.Check{
		File:  depsFile,
		Query: newPipQuery(depsPip, depsBatch),
	}

	return runCheck(c)
}

func newPipQuery(pip string, batch bool) pipquery.Query {
	if batch {
		return &pipquery.ListQuery{Pip: pip, Runner: &pipquery.RealRunner{}}
	}
	return &pipquery.ShowQuery{Pip: pip, Runner: &pipquery.RealRunner{}}
}
