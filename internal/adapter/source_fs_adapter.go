// Package adapter contains the filesystem-facing ports used by the
// reconciliation workflow.
package adapter

import (
	"context"
	"os"
	"path/filepath"

	m "recon.dev/pkg/recon/internal/model"
)

const (
	patternsDirName  = ".clt"
	patternsFileName = "patterns"
)

// SourceFSAdapter abstracts the filesystem reads the domain layer relies on
// when loading transcripts and captured process output. It hides direct `os`
// access so the reconciliation logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// FindPatternsFile looks for the .clt/patterns file next to a test
	// definition. It returns an empty path when there is none.
	FindPatternsFile(ctx context.Context, testPath m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - paths come from the operator's own command line
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// FindPatternsFile finds the .clt/patterns file beside testPath.
func (a *LocalSourceFSAdapter) FindPatternsFile(ctx context.Context, testPath m.Path) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if testPath == "" {
		return "", nil
	}

	candidate := filepath.Join(filepath.Dir(string(testPath)), patternsDirName, patternsFileName)

	info, err := os.Stat(candidate)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", err
	}

	if info.IsDir() {
		return "", nil
	}

	return m.Path(candidate), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
