// Package reqfile reads a requirements.txt style manifest: one dependency
// per line, blank lines and #-prefixed comments ignored.
package reqfile

import (
	"fmt"
	"os"
	"strings"
)

// DefaultName is the recommended requirements file name.
const DefaultName = "requirements.txt"

// Parse extracts the ordered list of requirement entries from file content.
// Entries keep their raw text: version specifiers and extras pass through
// unmodified, their interpretation is the query tool's business.
func Parse(content string) []string {
	lines := strings.Split(content, "\n")
	requirements := []string{}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		requirements = append(requirements, trimmed)
	}

	return requirements
}

// ParseFile reads and parses a requirements file.
func ParseFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading requirements file
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}
	return Parse(string(data)), nil
}

// Exists reports whether a requirements file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DistName extracts the distribution name from a requirement entry,
// stripping extras, version specifiers, environment markers, and inline
// comments. "Requests[security]>=2.0 ; python_version > '3'" yields
// "Requests".
func DistName(requirement string) string {
	name := requirement
	if i := strings.IndexAny(name, "[<>=!~; #"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// NormalizeName folds a distribution name the way package indexes compare
// them: lowercase, with runs of "-", "_", and "." treated as equivalent.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	return name
}
