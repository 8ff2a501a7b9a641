package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ft-go/internal/ft"
)

// OSFilesystemManager is the real filesystem implementation of FilesystemManager.
// It performs actual filesystem operations using the os package and the
// platform timestamp syscalls.
type OSFilesystemManager struct{}

// NewOSFilesystemManager creates a new filesystem manager that operates on the real filesystem.
func NewOSFilesystemManager() *OSFilesystemManager {
	return &OSFilesystemManager{}
}

// Resolve validates a raw path and returns a Path object.
// The path must reference an existing regular file. Symlinks are followed,
// so a link to a regular file resolves to that file.
func (m *OSFilesystemManager) Resolve(rawPath string) (*ft.Path, error) {
	if rawPath == "" {
		return nil, &ft.OpError{
			Category: ft.CategoryInvalidInput,
			Err:      errors.New("no file path given"),
		}
	}

	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, ft.Classify(rawPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, ft.Classify(rawPath, err)
	}

	if info.IsDir() {
		return nil, &ft.OpError{
			Category: ft.CategoryNotFound,
			Path:     rawPath,
			Err:      fmt.Errorf("'%s' is a directory, not a file", rawPath),
		}
	}
	if !info.Mode().IsRegular() {
		return nil, &ft.OpError{
			Category: ft.CategoryNotFound,
			Path:     rawPath,
			Err:      fmt.Errorf("'%s' is not a regular file", rawPath),
		}
	}

	return ft.NewPath(absPath, info), nil
}

// ReadTimes returns the file's current timestamp triple. It stats the file
// fresh rather than trusting the info cached at Resolve time, and never
// holds the file open.
func (m *OSFilesystemManager) ReadTimes(path *ft.Path) (ft.Timestamps, error) {
	info, err := os.Stat(path.String())
	if err != nil {
		return ft.Timestamps{}, ft.Classify(path.String(), err)
	}
	return timesFromInfo(info), nil
}

// WriteTimes applies the full triple to the file in a single metadata
// update. Values outside the representable range are clamped first.
func (m *OSFilesystemManager) WriteTimes(path *ft.Path, ts ft.Timestamps) error {
	ts.Creation = clampTime(ts.Creation)
	ts.Access = clampTime(ts.Access)
	ts.Modified = clampTime(ts.Modified)

	if err := writeTimes(path.String(), ts); err != nil {
		return ft.Classify(path.String(), err)
	}
	return nil
}

// CanSetCreation reports whether this platform can write creation times.
func (m *OSFilesystemManager) CanSetCreation() bool {
	return creationSettable
}

// Compile-time check that OSFilesystemManager implements ft.FilesystemManager interface
var _ ft.FilesystemManager = (*OSFilesystemManager)(nil)
