package ft

import (
	"fmt"
	"strings"
	"time"
)

// Timestamps is a file's timestamp triple: creation (birth), last access,
// and last modification. On platforms without a birth time the creation
// field carries the closest available value (change time, else mtime).
type Timestamps struct {
	Creation time.Time
	Access   time.Time
	Modified time.Time
}

// Selection names the subset of timestamp fields an update applies to.
// The zero value (nothing selected) means "all fields"; normalization
// happens inside the engine so every caller gets the same behavior.
type Selection struct {
	Creation bool
	Access   bool
	Modified bool
}

// IsEmpty returns true if no field is selected.
func (s Selection) IsEmpty() bool {
	return !s.Creation && !s.Access && !s.Modified
}

// Names returns the selected field names in canonical order:
// creation, access, modification.
func (s Selection) Names() []string {
	var names []string
	if s.Creation {
		names = append(names, "creation")
	}
	if s.Access {
		names = append(names, "access")
	}
	if s.Modified {
		names = append(names, "modification")
	}
	return names
}

// String renders the selected field names as a comma-separated list.
func (s Selection) String() string {
	return strings.Join(s.Names(), ", ")
}

// DefaultSelection returns the fields an empty selection expands to:
// all three where the platform can set creation time, access and
// modification elsewhere.
func DefaultSelection(canSetCreation bool) Selection {
	return Selection{Creation: canSetCreation, Access: true, Modified: true}
}

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceInstant
	sourceFile
)

// TimeSource is where new timestamp values come from: exactly one of an
// explicit instant or another file's current timestamps. The zero value
// carries no source; construct with ExplicitInstant or CopyFrom.
type TimeSource struct {
	kind    sourceKind
	instant time.Time
	path    string
}

// ExplicitInstant returns a TimeSource that applies the given instant to
// every selected field.
func ExplicitInstant(t time.Time) TimeSource {
	return TimeSource{kind: sourceInstant, instant: t}
}

// CopyFrom returns a TimeSource that copies each selected field from the
// file at the given path. The path is resolved when the update runs.
func CopyFrom(path string) TimeSource {
	return TimeSource{kind: sourceFile, path: path}
}

// Instant returns the explicit instant and true if this source is one.
func (ts TimeSource) Instant() (time.Time, bool) {
	return ts.instant, ts.kind == sourceInstant
}

// SourceFile returns the path timestamps are copied from and true if this
// source is one.
func (ts TimeSource) SourceFile() (string, bool) {
	return ts.path, ts.kind == sourceFile
}

// IsZero returns true if no source was set.
func (ts TimeSource) IsZero() bool {
	return ts.kind == sourceNone
}

// Describe renders the source for operator-facing summaries: the instant
// in the given layout, or the quoted source path.
func (ts TimeSource) Describe(timeFormat string) string {
	switch ts.kind {
	case sourceInstant:
		return ts.instant.Format(timeFormat)
	case sourceFile:
		return fmt.Sprintf("copy from '%s'", ts.path)
	default:
		return "(none)"
	}
}

// Request is a single timestamp update: the target file, the source of the
// new values, and the fields to change. Requests are built per operation
// and discarded afterwards; nothing about them is persisted.
type Request struct {
	Target string
	Source TimeSource
	Fields Selection
}
