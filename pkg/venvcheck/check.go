// Package venvcheck verifies that the project's virtual environment folder
// exists in the project root.
package venvcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
	"github.com/denisecase/datafun-venv-checker/pkg/guide"
)

// DefaultName is the recommended virtual environment folder name.
const DefaultName = ".venv"

// Check verifies that the virtual environment folder exists.
type Check struct {
	Name string     // venv folder name, relative to the project root
	FS   FileSystem // injected for testing
}

// Run executes the existence check.
func (c *Check) Run() check.Result {
	name := c.Name
	if name == "" {
		name = DefaultName
	}

	result := check.Result{
		Name:  fmt.Sprintf("venv: %s", name),
		Guide: guide.VenvMissing,
	}

	info, err := c.FS.Stat(name)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return result.Fail(fmt.Sprintf("%s folder not found", name), err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Failf("stat failed: %v", err)
		}
	}

	if !info.IsDir() {
		return result.Failf("%s exists but is not a directory", name)
	}

	result.Status = check.StatusOK
	result.AddDetail("type: directory")

	// pyvenv.cfg is written by venv creation; surface what it records.
	cfg := c.readPyvenvCfg(name)
	if v := cfg["version"]; v != "" {
		result.AddDetailf("python: %s", v)
	} else if v := cfg["version_info"]; v != "" {
		result.AddDetailf("python: %s", v)
	}
	if home := cfg["home"]; home != "" {
		result.AddDetailf("home: %s", home)
	}

	return result
}

// readPyvenvCfg parses the "key = value" lines of <venv>/pyvenv.cfg.
// A missing or unreadable file yields an empty map.
func (c *Check) readPyvenvCfg(venvDir string) map[string]string {
	entries := map[string]string{}

	data, err := c.FS.ReadFile(filepath.Join(venvDir, "pyvenv.cfg"))
	if err != nil {
		return entries
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		entries[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return entries
}
