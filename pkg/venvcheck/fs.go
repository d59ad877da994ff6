package venvcheck

import "os"

// FileSystem abstracts filesystem access for testability.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// RealFileSystem uses the actual filesystem.
type RealFileSystem struct{}

func (r *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // intentional: reading pyvenv.cfg
}
