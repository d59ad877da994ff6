package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
	// StatusSkip means a precondition for the check was absent, so the
	// check could not run. Distinct from failure: a skipped check never
	// makes the overall run fail.
	StatusSkip Status = "SKIP"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "venv: .venv", "deps: requirements.txt"
	Status  Status   // OK, FAIL, or SKIP
	Details []string // human-readable details
	Guide   string   // remediation guide shown on failure or skip
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Skipped returns true if the check could not run.
func (r Result) Skipped() bool {
	return r.Status == StatusSkip
}
