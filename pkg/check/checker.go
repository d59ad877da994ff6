package check

// Checker is implemented by all check types.
// Each check validates one aspect of the local project environment
// and returns a Result indicating success, failure, or skip.
//
// Implementations:
//   - venvcheck.Check: verifies the virtual environment folder exists
//   - activecheck.Check: verifies the virtual environment is activated
//   - depcheck.Check: verifies declared packages are installed
//   - pycheck.Check: verifies the python interpreter and its version
//   - driftcheck.Check: verifies requirements.txt has not drifted
type Checker interface {
	Run() Result
}
