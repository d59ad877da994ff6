// Package activecheck verifies that a virtual environment is activated in
// the current session. Activation conventionally exports VIRTUAL_ENV, so a
// present, non-empty value is the pass signal. This is a heuristic: the
// variable could be stale or set by hand, and the check says so rather
// than pretending to verify more than it can.
package activecheck

import (
	"fmt"
	"path/filepath"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
	"github.com/denisecase/datafun-venv-checker/pkg/guide"
)

// EnvVar is the variable set by virtual environment activation scripts.
const EnvVar = "VIRTUAL_ENV"

// Check verifies that a virtual environment is active.
type Check struct {
	VenvName string    // expected venv folder name, for the stale-activation hint
	Getter   EnvGetter // injected for testing
}

// Run executes the activation check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name:  fmt.Sprintf("active: %s", EnvVar),
		Guide: guide.NotActive,
	}

	value, exists := c.Getter.LookupEnv(EnvVar)

	if !exists {
		return result.Fail("not set", fmt.Errorf("environment variable %s is not set", EnvVar))
	}

	if value == "" {
		return result.Fail("empty value", fmt.Errorf("environment variable %s is empty", EnvVar))
	}

	result.Status = check.StatusOK
	result.AddDetailf("%s: %s", EnvVar, value)

	// Activation of some other environment still passes, but is worth a hint.
	if c.VenvName != "" && filepath.Base(value) != c.VenvName {
		result.AddDetailf("warning: active environment %q is not %q", filepath.Base(value), c.VenvName)
	}

	return result
}
