package main

import (
	"errors"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
	"github.com/denisecase/datafun-venv-checker/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error if
// failed. The returned error causes Cobra to exit with code 1. A skipped
// check is not a failure and exits 0.
func runCheck(c check.Checker) error {
	result := c.Run()
	output.PrintResult(result)

	if result.Status == check.StatusFail {
		return ErrCheckFailed
	}
	return nil
}
