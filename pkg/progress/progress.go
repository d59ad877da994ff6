// Package progress tracks how far a checklist run has come. The tracker is
// plain data threaded through the caller, not process-wide state.
package progress

import "fmt"

// Weights for the three core checks. They sum to exactly 100, so a fully
// passing run always lands on 100%.
const (
	WeightVenvExists = 33
	WeightVenvActive = 33
	WeightDepsFound  = 34
)

// Tracker accumulates the progress percentage as checks pass.
type Tracker struct {
	percent int
}

// Add credits a passing check's weight.
func (t *Tracker) Add(weight int) {
	t.percent += weight
}

// Percent returns the accumulated percentage, 0-100.
func (t *Tracker) Percent() int {
	return t.percent
}

// Complete reports whether every weighted check passed.
func (t *Tracker) Complete() bool {
	return t.percent == 100
}

// Message returns the encouragement line logged after each passing check.
func (t *Tracker) Message() string {
	switch t.percent {
	case 33:
		return fmt.Sprintf("Progress: %d%% - You're 1/3 done - good start!", t.percent)
	case 66:
		return fmt.Sprintf("Progress: %d%% - You're 2/3 done - almost there!", t.percent)
	case 100:
		return fmt.Sprintf("Progress: %d%% - 100%% completed - all checks passed. Nice work!", t.percent)
	default:
		return fmt.Sprintf("Progress: %d%%.", t.percent)
	}
}
