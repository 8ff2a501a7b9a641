package ft

import "io/fs"

// Path represents a validated filesystem path with cached metadata.
// Path objects are created by FilesystemManager.Resolve() which validates
// the path exists, resolves it to an absolute path, and caches stat info.
type Path struct {
	absPath string
	info    fs.FileInfo
}

// NewPath creates a Path from its components.
// This is primarily for use by FilesystemManager implementations.
func NewPath(absPath string, info fs.FileInfo) *Path {
	return &Path{
		absPath: absPath,
		info:    info,
	}
}

// String returns the absolute path as a string.
func (p *Path) String() string {
	return p.absPath
}

// Info returns the cached file info from when the path was resolved.
// Timestamps read through it may be stale; use FilesystemManager.ReadTimes
// for current values.
func (p *Path) Info() fs.FileInfo {
	return p.info
}
