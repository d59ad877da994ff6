// Package pycheck verifies that a python interpreter is available and,
// optionally, that its version meets a minimum.
package pycheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
	"github.com/denisecase/datafun-venv-checker/pkg/guide"
	"github.com/denisecase/datafun-venv-checker/pkg/pipquery"
)

// DefaultPython is the interpreter checked when none is configured.
const DefaultPython = "python3"

// Check verifies the python interpreter.
type Check struct {
	Python     string          // interpreter command (default: python3)
	MinVersion string          // minimum version required, e.g. "3.11" (empty = no check)
	Runner     pipquery.Runner // injected for testing
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Run executes the interpreter check.
func (c *Check) Run() check.Result {
	python := c.Python
	if python == "" {
		python = DefaultPython
	}

	result := check.Result{
		Name:  fmt.Sprintf("python: %s", python),
		Guide: guide.PythonMissing,
	}

	path, err := c.Runner.LookPath(python)
	if err != nil {
		return result.Failf("not found in PATH: %v", err)
	}

	result.AddDetailf("path: %s", path)

	stdout, stderr, err := c.Runner.RunCommand(python, "--version")
	if err != nil {
		result.AddDetailf("version command failed: %v", err)
		if stderr != "" {
			result.AddDetailf("stderr: %s", strings.TrimSpace(stderr))
		}
		result.Status = check.StatusFail
		result.Err = err
		return result
	}

	// Older interpreters print the version banner on stderr.
	versionOutput := strings.TrimSpace(stdout)
	if versionOutput == "" {
		versionOutput = strings.TrimSpace(stderr)
	}

	raw := versionPattern.FindString(versionOutput)
	if raw == "" {
		return result.Failf("could not parse version from %q", versionOutput)
	}

	parsed, err := semver.NewVersion(raw)
	if err != nil {
		return result.Failf("could not parse version %q: %v", raw, err)
	}

	result.AddDetailf("version: %s", parsed)

	if c.MinVersion != "" {
		constraint, err := semver.NewConstraint(">= " + c.MinVersion)
		if err != nil {
			return result.Failf("invalid minimum version %q: %v", c.MinVersion, err)
		}
		if !constraint.Check(parsed) {
			return result.Failf("version %s < minimum %s", parsed, c.MinVersion)
		}
	}

	result.Status = check.StatusOK
	return result
}
