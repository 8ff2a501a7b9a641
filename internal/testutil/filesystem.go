package testutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"ft-go/internal/ft"
)

// MockFile represents a file in the mock filesystem.
type MockFile struct {
	Times       ft.Timestamps
	Size        int64
	Permissions fs.FileMode
	IsDirectory bool
}

// WriteRecord captures one successful WriteTimes call.
type WriteRecord struct {
	Path  string
	Times ft.Timestamps
}

// MockFilesystemManager is an in-memory filesystem for testing.
// CreationSettable defaults to true; flip it to model platforms without a
// writable creation time. ResolveErr, ReadErr, and WriteErr, when set, are
// returned by the corresponding method to simulate failures.
type MockFilesystemManager struct {
	files map[string]*MockFile

	CreationSettable bool
	ResolveErr       error
	ReadErr          error
	WriteErr         error

	// Writes records every successful WriteTimes call, in order.
	Writes []WriteRecord
}

// NewMockFilesystemManager creates a new mock filesystem.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{
		files:            make(map[string]*MockFile),
		CreationSettable: true,
	}
}

// AddFile adds a regular file with the given timestamps to the mock filesystem.
func (m *MockFilesystemManager) AddFile(path string, times ft.Timestamps) {
	m.files[path] = &MockFile{
		Times:       times,
		Size:        64,
		Permissions: 0644,
	}
}

// AddDirectory adds a directory to the mock filesystem.
func (m *MockFilesystemManager) AddDirectory(path string) {
	now := time.Now()
	m.files[path] = &MockFile{
		Times:       ft.Timestamps{Creation: now, Access: now, Modified: now},
		Permissions: 0755 | fs.ModeDir,
		IsDirectory: true,
	}
}

// File returns the mock file stored at path, or nil.
func (m *MockFilesystemManager) File(path string) *MockFile {
	return m.files[path]
}

func (m *MockFilesystemManager) Resolve(rawPath string) (*ft.Path, error) {
	if m.ResolveErr != nil {
		return nil, m.ResolveErr
	}

	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, err
	}

	file, ok := m.files[absPath]
	if !ok {
		return nil, &ft.OpError{
			Category: ft.CategoryNotFound,
			Path:     rawPath,
			Err:      fmt.Errorf("file '%s' does not exist", rawPath),
		}
	}
	if file.IsDirectory {
		return nil, &ft.OpError{
			Category: ft.CategoryNotFound,
			Path:     rawPath,
			Err:      fmt.Errorf("'%s' is a directory, not a file", rawPath),
		}
	}

	info := &mockFileInfo{
		name:     filepath.Base(absPath),
		size:     file.Size,
		mode:     file.Permissions,
		modTime:  file.Times.Modified,
		isDir:    file.IsDirectory,
		mockFile: file,
	}

	return ft.NewPath(absPath, info), nil
}

func (m *MockFilesystemManager) ReadTimes(path *ft.Path) (ft.Timestamps, error) {
	if m.ReadErr != nil {
		return ft.Timestamps{}, m.ReadErr
	}
	file, ok := m.files[path.String()]
	if !ok {
		return ft.Timestamps{}, &ft.OpError{
			Category: ft.CategoryNotFound,
			Path:     path.String(),
			Err:      fmt.Errorf("file '%s' does not exist", path.String()),
		}
	}
	return file.Times, nil
}

func (m *MockFilesystemManager) WriteTimes(path *ft.Path, ts ft.Timestamps) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	file, ok := m.files[path.String()]
	if !ok {
		return &ft.OpError{
			Category: ft.CategoryNotFound,
			Path:     path.String(),
			Err:      fmt.Errorf("file '%s' does not exist", path.String()),
		}
	}
	file.Times = ts
	m.Writes = append(m.Writes, WriteRecord{Path: path.String(), Times: ts})
	return nil
}

func (m *MockFilesystemManager) CanSetCreation() bool {
	return m.CreationSettable
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name     string
	size     int64
	mode     fs.FileMode
	modTime  time.Time
	isDir    bool
	mockFile *MockFile // reference to get stat data
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() any           { return m.mockFile }

// Compile-time check
var _ ft.FilesystemManager = (*MockFilesystemManager)(nil)
