//go:build !windows

package fs

import (
	"os"

	"ft-go/internal/ft"
)

const creationSettable = false

// writeTimes applies the access and modification times. There is no
// portable syscall for writing the creation (birth) time here, so the
// service never selects that field on these platforms.
func writeTimes(path string, ts ft.Timestamps) error {
	return os.Chtimes(path, ts.Access, ts.Modified)
}
