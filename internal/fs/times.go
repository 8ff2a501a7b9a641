package fs

import (
	"io/fs"
	"math"
	"time"

	"github.com/djherbis/times"

	"ft-go/internal/ft"
)

// os.Chtimes and the Windows FILETIME conversion misbehave outside the
// 64-bit nanosecond range, so written values are clamped to it.
var (
	minWriteTime = time.Unix(0, 0)
	maxWriteTime = time.Unix(0, math.MaxInt64)
)

func clampTime(t time.Time) time.Time {
	if t.Before(minWriteTime) {
		return minWriteTime
	}
	if t.After(maxWriteTime) {
		return maxWriteTime
	}
	return t
}

// timesFromInfo extracts the timestamp triple from stat info. Where the
// platform records no birth time, the creation field falls back to the
// inode change time, and failing that the modification time.
func timesFromInfo(info fs.FileInfo) ft.Timestamps {
	spec := times.Get(info)

	ts := ft.Timestamps{
		Access:   spec.AccessTime(),
		Modified: spec.ModTime(),
	}

	switch {
	case spec.HasBirthTime():
		ts.Creation = spec.BirthTime()
	case spec.HasChangeTime():
		ts.Creation = spec.ChangeTime()
	default:
		ts.Creation = spec.ModTime()
	}

	return ts
}
