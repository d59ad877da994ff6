// Package pipquery answers "is this package installed?" by asking pip.
//
// Two strategies: ShowQuery spawns one `pip show` per requirement and
// classifies by exit status, ListQuery spawns a single `pip list
// --format json` and matches against the parsed inventory. Both treat
// any spawn failure as "not installed" rather than an error, so a
// missing or broken pip reads as missing packages, not a crash.
package pipquery

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/denisecase/datafun-venv-checker/pkg/reqfile"
)

// DefaultPip is the package-inspection command used when none is configured.
const DefaultPip = "pip"

// Query reports whether a requirement entry is installed.
type Query interface {
	Installed(requirement string) bool
}

// ShowQuery asks pip about one requirement at a time. The raw requirement
// text is handed to `pip show` unmodified; how specifiers and extras are
// matched is entirely pip's interpretation.
type ShowQuery struct {
	Pip    string // pip command name (default: "pip")
	Runner Runner // injected for testing
}

// Installed runs `pip show <requirement>` and reports success by exit status.
// Standard output is discarded.
func (q *ShowQuery) Installed(requirement string) bool {
	pip := q.Pip
	if pip == "" {
		pip = DefaultPip
	}
	_, _, err := q.Runner.RunCommand(pip, "show", requirement)
	return err == nil
}

// ListQuery asks pip for the full installed inventory once, then answers
// membership questions against normalized distribution names. Version
// specifiers and extras are stripped before matching.
type ListQuery struct {
	Pip    string // pip command name (default: "pip")
	Runner Runner // injected for testing

	loaded    bool
	installed map[string]bool
}

// Installed reports whether the requirement's distribution name appears in
// `pip list --format json` output.
func (q *ListQuery) Installed(requirement string) bool {
	if !q.loaded {
		q.load()
	}
	name := reqfile.NormalizeName(reqfile.DistName(requirement))
	return q.installed[name]
}

func (q *ListQuery) load() {
	q.loaded = true
	q.installed = map[string]bool{}

	pip := q.Pip
	if pip == "" {
		pip = DefaultPip
	}

	stdout, _, err := q.Runner.RunCommand(pip, "list", "--format", "json")
	if err != nil {
		return
	}

	for _, entry := range gjson.Parse(strings.TrimSpace(stdout)).Array() {
		name := entry.Get("name").String()
		if name == "" {
			continue
		}
		q.installed[reqfile.NormalizeName(name)] = true
	}
}

// MockQuery is a test double for Query that records every lookup.
type MockQuery struct {
	InstalledSet map[string]bool
	Calls        []string
}

// Installed answers from the configured set and records the call.
func (m *MockQuery) Installed(requirement string) bool {
	m.Calls = append(m.Calls, requirement)
	return m.InstalledSet[requirement]
}
