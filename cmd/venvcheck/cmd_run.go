package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/denisecase/datafun-venv-checker/pkg/activecheck"
	"github.com/denisecase/datafun-venv-checker/pkg/check"
	"github.com/denisecase/datafun-venv-checker/pkg/config"
	"github.com/denisecase/datafun-venv-checker/pkg/depcheck"
	"github.com/denisecase/datafun-venv-checker/pkg/driftcheck"
	"github.com/denisecase/datafun-venv-checker/pkg/logging"
	"github.com/denisecase/datafun-venv-checker/pkg/output"
	"github.com/denisecase/datafun-venv-checker/pkg/pipquery"
	"github.com/denisecase/datafun-venv-checker/pkg/progress"
	"github.com/denisecase/datafun-venv-checker/pkg/pycheck"
	"github.com/denisecase/datafun-venv-checker/pkg/venvcheck"
)

var runConfigPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full virtual environment checklist",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to project config (default: ./"+config.FileName+")")
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	var cfg config.Config
	var err error
	if runConfigPath != "" {
		cfg, err = config.LoadFile(runConfigPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.Setup(cfg.LogFile)
	if err != nil {
		return err
	}
	defer cleanup()

	return runChecklist(cfg, logger)
}

// step pairs a checker with its progress weight and the log line written
// when it passes.
type step struct {
	checker check.Checker
	weight  int
	passMsg string
}

func runChecklist(cfg config.Config, logger *slog.Logger) error {
	tracker := &progress.Tracker{}
	failed := false
	depsPassed := false

	// Interpreter check only runs when the project pins a minimum; it
	// never contributes to the 0-100 progress of the core checklist.
	if cfg.MinPython != "" {
		result := (&pycheck.Check{
			Python:     cfg.Python,
			MinVersion: cfg.MinPython,
			Runner:     &pipquery.RealRunner{},
		}).Run()
		output.PrintResult(result)
		if result.OK() {
			logger.Info(fmt.Sprintf("Python interpreter %s is available.", cfg.Python))
		} else {
			failed = true
			logFailure(logger, result)
		}
	}

	steps := []step{
		{
			checker: &venvcheck.Check{Name: cfg.VenvName, FS: &venvcheck.RealFileSystem{}},
			weight:  progress.WeightVenvExists,
			passMsg: fmt.Sprintf("%s folder exists.", cfg.VenvName),
		},
		{
			checker: &activecheck.Check{VenvName: cfg.VenvName, Getter: &activecheck.RealEnvGetter{}},
			weight:  progress.WeightVenvActive,
			passMsg: "Virtual environment is active.",
		},
		{
			checker: &depcheck.Check{File: cfg.Requirements, Query: newPipQuery(cfg.Pip, cfg.Batch)},
			weight:  progress.WeightDepsFound,
			passMsg: fmt.Sprintf("All packages in %s are installed.", cfg.Requirements),
		},
	}

	for _, s := range steps {
		result := s.checker.Run()
		output.PrintResult(result)

		logInstalledPackages(logger, result)

		switch result.Status {
		case check.StatusOK:
			tracker.Add(s.weight)
			logger.Info(s.passMsg)
			logger.Info(tracker.Message())
			if s.weight == progress.WeightDepsFound {
				depsPassed = true
			}
		case check.StatusSkip:
			logger.Error(strings.Join(result.Details, "; "))
		default:
			failed = true
			logFailure(logger, result)
		}
	}

	if cfg.RecordDrift && depsPassed {
		recordDrift(cfg, logger)
	}

	if failed {
		return ErrCheckFailed
	}
	return nil
}

// logFailure writes the original checker's "Test Failed" trail: the failure
// detail at error level, then the summary line.
func logFailure(logger *slog.Logger, result check.Result) {
	if len(result.Details) > 0 {
		logger.Error(result.Details[0])
	}
	logger.Error(fmt.Sprintf("Test Failed: %s", result.Name))
}

// logInstalledPackages mirrors the per-package confirmation lines into the log.
func logInstalledPackages(logger *slog.Logger, result check.Result) {
	for _, d := range result.Details {
		if name, ok := strings.CutPrefix(d, "installed: "); ok {
			logger.Info(fmt.Sprintf("Required %s is installed.", name))
		}
	}
}

// recordDrift fingerprints requirements.txt after a fully verified install,
// so later runs of `venvcheck drift` can detect edits.
func recordDrift(cfg config.Config, logger *slog.Logger) {
	result := (&driftcheck.Check{
		File:      cfg.Requirements,
		StatePath: driftcheck.DefaultStatePath(cfg.VenvName),
		Record:    true,
	}).Run()

	if result.OK() {
		logger.Info(fmt.Sprintf("Recorded %s fingerprint.", cfg.Requirements))
	} else if len(result.Details) > 0 {
		logger.Error(result.Details[0])
	}
}
