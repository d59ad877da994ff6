package venvcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisecase/datafun-venv-checker/pkg/check"
)

func setupVenv(t *testing.T, pyvenvCfg string) string {
	t.Helper()
	tmpDir := t.TempDir()
	venvDir := filepath.Join(tmpDir, ".venv")
	require.NoError(t, os.Mkdir(venvDir, 0o750))
	if pyvenvCfg != "" {
		require.NoError(t, os.WriteFile(filepath.Join(venvDir, "pyvenv.cfg"), []byte(pyvenvCfg), 0o600))
	}
	return tmpDir
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}

func TestCheck_VenvExists(t *testing.T) {
	dir := setupVenv(t, "")
	chdir(t, dir)

	c := &Check{Name: ".venv", FS: &RealFileSystem{}}
	result := c.Run()

	assert.Equal(t, check.StatusOK, result.Status)
	assert.Equal(t, "venv: .venv", result.Name)
	assert.Contains(t, result.Details, "type: directory")
}

func TestCheck_VenvMissing(t *testing.T) {
	chdir(t, t.TempDir())

	c := &Check{Name: ".venv", FS: &RealFileSystem{}}
	result := c.Run()

	assert.Equal(t, check.StatusFail, result.Status)
	assert.Contains(t, result.Details, ".venv folder not found")
	assert.Contains(t, result.Guide, "python3 -m venv .venv")
	assert.Error(t, result.Err)
}

func TestCheck_VenvIsAFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".venv"), []byte("not a dir"), 0o600))
	chdir(t, tmpDir)

	c := &Check{Name: ".venv", FS: &RealFileSystem{}}
	result := c.Run()

	assert.Equal(t, check.StatusFail, result.Status)
	assert.Contains(t, result.Details[0], "not a directory")
}

func TestCheck_DefaultName(t *testing.T) {
	dir := setupVenv(t, "")
	chdir(t, dir)

	c := &Check{FS: &RealFileSystem{}}
	result := c.Run()

	assert.Equal(t, "venv: .venv", result.Name)
	assert.Equal(t, check.StatusOK, result.Status)
}

func TestCheck_CustomName(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "env"), 0o750))
	chdir(t, tmpDir)

	c := &Check{Name: "env", FS: &RealFileSystem{}}
	result := c.Run()

	assert.Equal(t, "venv: env", result.Name)
	assert.Equal(t, check.StatusOK, result.Status)
}

func TestCheck_PyvenvCfgDetails(t *testing.T) {
	dir := setupVenv(t, "home = /usr/bin\nversion = 3.12.4\ninclude-system-site-packages = false\n")
	chdir(t, dir)

	c := &Check{Name: ".venv", FS: &RealFileSystem{}}
	result := c.Run()

	assert.Equal(t, check.StatusOK, result.Status)
	assert.Contains(t, result.Details, "python: 3.12.4")
	assert.Contains(t, result.Details, "home: /usr/bin")
}

func TestCheck_PyvenvCfgVersionInfoFallback(t *testing.T) {
	dir := setupVenv(t, "home = /usr/bin\nversion_info = 3.13.1\n")
	chdir(t, dir)

	c := &Check{Name: ".venv", FS: &RealFileSystem{}}
	result := c.Run()

	assert.Equal(t, check.StatusOK, result.Status)
	assert.Contains(t, result.Details, "python: 3.13.1")
}

func TestCheck_PyvenvCfgAbsent(t *testing.T) {
	dir := setupVenv(t, "")
	chdir(t, dir)

	c := &Check{Name: ".venv", FS: &RealFileSystem{}}
	result := c.Run()

	assert.Equal(t, check.StatusOK, result.Status)
	for _, d := range result.Details {
		assert.False(t, strings.HasPrefix(d, "python:"), "unexpected detail %q", d)
	}
}
