// Package depcheck verifies that every package declared in the project's
// requirements file is installed, by asking an injected package query.
package depcheck

import (
	"fmt"
	"strings"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
	"github.com/denisecase/datafun-venv-checker/pkg/guide"
	"github.com/denisecase/datafun-venv-checker/pkg/pipquery"
	"github.com/denisecase/datafun-venv-checker/pkg/reqfile"
)

// Check verifies that declared packages are present.
type Check struct {
	File  string         // requirements file path (default: requirements.txt)
	Query pipquery.Query // injected for testing
}

// Run executes the dependency presence check.
//
// A missing requirements file is a skip, not a failure: the check cannot
// run without its input, and no package query is issued. An empty
// requirement list passes trivially.
func (c *Check) Run() check.Result {
	file := c.File
	if file == "" {
		file = reqfile.DefaultName
	}

	result := check.Result{
		Name: fmt.Sprintf("deps: %s", file),
	}

	if !reqfile.Exists(file) {
		result.Guide = guide.RequirementsMissing
		return result.Skipf("%s is missing, cannot verify installed packages", file)
	}

	requirements, err := reqfile.ParseFile(file)
	if err != nil {
		result.Guide = guide.RequirementsMissing
		return result.Failf("%v", err)
	}

	if len(requirements) == 0 {
		result.Status = check.StatusOK
		result.AddDetail("no packages declared")
		return result
	}

	missing := []string{}
	for _, requirement := range requirements {
		if c.Query.Installed(requirement) {
			result.AddDetailf("installed: %s", requirement)
		} else {
			missing = append(missing, requirement)
		}
	}

	if len(missing) > 0 {
		result.Guide = guide.PackagesMissing
		return result.Failf("missing required packages: %s", strings.Join(missing, ", "))
	}

	result.Status = check.StatusOK
	result.AddDetailf("all %d declared packages installed", len(requirements))
	return result
}
