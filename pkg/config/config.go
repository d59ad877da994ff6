// Package config reads the optional .venvcheck.yaml project file. All
// fields have working defaults; the file exists so a project can pin a
// non-standard venv name, pip command, or minimum python version.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/denisecase/datafun-venv-checker/pkg/logging"
	"github.com/denisecase/datafun-venv-checker/pkg/pipquery"
	"github.com/denisecase/datafun-venv-checker/pkg/pycheck"
	"github.com/denisecase/datafun-venv-checker/pkg/reqfile"
	"github.com/denisecase/datafun-venv-checker/pkg/venvcheck"
)

// FileName is the config file looked up in the project root.
const FileName = ".venvcheck.yaml"

// Config holds the project-level settings for a checklist run.
type Config struct {
	VenvName     string `yaml:"venv_name"`    // venv folder name
	Requirements string `yaml:"requirements"` // requirements file path
	Pip          string `yaml:"pip"`          // package-inspection command
	Python       string `yaml:"python"`       // interpreter command
	MinPython    string `yaml:"min_python"`   // minimum interpreter version (empty = no check)
	LogFile      string `yaml:"log_file"`     // checker log path
	Batch        bool   `yaml:"batch"`        // one pip list instead of pip show per package
	RecordDrift  bool   `yaml:"record_drift"` // record requirements fingerprint on full pass
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		VenvName:     venvcheck.DefaultName,
		Requirements: reqfile.DefaultName,
		Pip:          pipquery.DefaultPip,
		Python:       pycheck.DefaultPython,
		LogFile:      logging.DefaultPath,
	}
}

// Load reads .venvcheck.yaml from projectPath. A missing file yields the
// defaults; a present but broken file is an error, not a silent fallback.
func Load(projectPath string) (Config, error) {
	return LoadFile(filepath.Join(projectPath, FileName))
}

// LoadFile reads a specific config file path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading project config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

// Validate catches settings that would make the run nonsensical.
func (c Config) Validate() error {
	if c.VenvName == "" {
		return errors.New("venv_name must not be empty")
	}
	if strings.ContainsAny(c.VenvName, `/\`) {
		return fmt.Errorf("venv_name %q must be a plain folder name, not a path", c.VenvName)
	}
	if c.Requirements == "" {
		return errors.New("requirements must not be empty")
	}
	if c.Pip == "" {
		return errors.New("pip must not be empty")
	}
	if c.Python == "" {
		return errors.New("python must not be empty")
	}
	return nil
}
