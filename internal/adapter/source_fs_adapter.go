// Package adapter contains infrastructure adapters for the robotreport CLI.
package adapter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	reportDirPerm  = 0o750
	reportFilePerm = 0o644
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when discovering result files and writing reports. It hides direct
// `os` access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// Glob returns the entries matching pattern, in lexical order.
	Glob(pattern string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists.
	Exists(path m.Path) (bool, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// WriteFile replaces the file contents, creating parent directories.
	WriteFile(path m.Path, content []byte) error

	// AppendFile appends content to the file, creating it when missing.
	AppendFile(path m.Path, content []byte) error

	// Open opens a file for reading.
	Open(path m.Path) (*os.File, error)

	// AbsPath returns an absolute representation of path.
	AbsPath(path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// Glob expands a shell pattern.
func (a *LocalSourceFSAdapter) Glob(pattern string) ([]m.Path, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - report and result paths are provided by the CI job
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether the path exists. Errors other than "not exist" are returned.
func (a *LocalSourceFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// MkdirAll creates the directory tree.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), reportDirPerm)
}

// WriteFile writes content to a file, creating the parent directory first.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	if err := a.ensureParent(path); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, reportFilePerm)
}

// AppendFile appends content to a file, creating it when missing.
func (a *LocalSourceFSAdapter) AppendFile(path m.Path, content []byte) error {
	if err := a.ensureParent(path); err != nil {
		return err
	}

	// #nosec G304 - destination is the configured report path
	file, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, reportFilePerm)
	if err != nil {
		return err
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// Open opens a file for reading.
func (a *LocalSourceFSAdapter) Open(path m.Path) (*os.File, error) {
	// #nosec G304 - artifacts are produced by this tool
	return os.Open(string(path))
}

// AbsPath returns the absolute path.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func (a *LocalSourceFSAdapter) ensureParent(path m.Path) error {
	dir := filepath.Dir(string(path))
	if dir == "." || dir == "" {
		return nil
	}

	return os.MkdirAll(dir, reportDirPerm)
}
