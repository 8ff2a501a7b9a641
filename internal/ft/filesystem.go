package ft

// FilesystemManager provides an interface for filesystem operations.
// It abstracts file access to enable testing without touching the real
// filesystem.
type FilesystemManager interface {
	// Resolve validates a raw path and returns a Path object.
	// It resolves the path to an absolute path, stats it, and validates
	// it's an existing regular file (not a directory, device, etc.).
	Resolve(rawPath string) (*Path, error)

	// ReadTimes returns the file's current timestamp triple.
	// The file is not held open after the call returns.
	ReadTimes(path *Path) (Timestamps, error)

	// WriteTimes applies the full triple to the file as a single metadata
	// update. On failure the file's timestamps are unchanged.
	WriteTimes(path *Path, ts Timestamps) error

	// CanSetCreation reports whether this platform can write the creation
	// (birth) timestamp.
	CanSetCreation() bool
}
