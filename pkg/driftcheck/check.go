// Package driftcheck detects when requirements.txt changed after the last
// verified install, by comparing a BLAKE3 fingerprint of the file against
// one recorded inside the venv folder.
package driftcheck

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
	"github.com/denisecase/datafun-venv-checker/pkg/guide"
	"github.com/denisecase/datafun-venv-checker/pkg/reqfile"
)

// StateFile is the fingerprint file name, stored inside the venv folder so
// it disappears with the environment it describes.
const StateFile = ".requirements.b3"

// Check compares the requirements file against its recorded fingerprint.
type Check struct {
	File      string // requirements file path (default: requirements.txt)
	StatePath string // recorded fingerprint path (default: .venv/.requirements.b3)
	Record    bool   // write the fingerprint instead of comparing
}

// DefaultStatePath returns where the fingerprint lives for a given venv name.
func DefaultStatePath(venvName string) string {
	return filepath.Join(venvName, StateFile)
}

// Run executes the drift check.
func (c *Check) Run() check.Result {
	file := c.File
	if file == "" {
		file = reqfile.DefaultName
	}
	statePath := c.StatePath
	if statePath == "" {
		statePath = DefaultStatePath(".venv")
	}

	result := check.Result{
		Name: fmt.Sprintf("drift: %s", file),
	}

	if !reqfile.Exists(file) {
		result.Guide = guide.RequirementsMissing
		return result.Skipf("%s is missing, nothing to fingerprint", file)
	}

	actual, err := fingerprint(file)
	if err != nil {
		return result.Failf("failed to fingerprint %s: %v", file, err)
	}

	if c.Record {
		if err := os.WriteFile(statePath, []byte(actual+"\n"), 0o600); err != nil {
			return result.Failf("failed to record fingerprint: %v", err)
		}
		result.Status = check.StatusOK
		result.AddDetailf("recorded: %s", shortHash(actual))
		return result
	}

	recorded, err := os.ReadFile(statePath) //nolint:gosec // intentional: reading fingerprint state
	if err != nil {
		if os.IsNotExist(err) {
			return result.Skip("no recorded fingerprint (run `venvcheck drift --record` after installing)")
		}
		return result.Failf("failed to read recorded fingerprint: %v", err)
	}

	expected := strings.TrimSpace(string(recorded))
	if actual != expected {
		result.Guide = guide.RequirementsDrift
		return result.Fail(
			fmt.Sprintf("requirements changed since last recorded install\n       recorded: %s\n       current:  %s",
				shortHash(expected), shortHash(actual)),
			fmt.Errorf("requirements fingerprint mismatch"))
	}

	result.Status = check.StatusOK
	result.AddDetailf("unchanged since last recorded install (%s)", shortHash(actual))
	return result
}

func fingerprint(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // intentional: reading requirements file
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func shortHash(hash string) string {
	if len(hash) > 16 {
		return hash[:16]
	}
	return hash
}
