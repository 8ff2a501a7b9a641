//go:build windows

package fs

import (
	"golang.org/x/sys/windows"

	"ft-go/internal/ft"
)

const creationSettable = true

// writeTimes opens the file for exclusive write access and applies all
// three timestamps in a single SetFileTime call. The handle is closed
// before returning, whatever happens.
func writeTimes(path string, ts ft.Timestamps) error {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	h, err := windows.CreateFile(pathp,
		windows.GENERIC_WRITE,
		0, // no sharing while we rewrite the times
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0)
	if err != nil {
		return err
	}
	defer windows.Close(h)

	c := windows.NsecToFiletime(ts.Creation.UnixNano())
	a := windows.NsecToFiletime(ts.Access.UnixNano())
	w := windows.NsecToFiletime(ts.Modified.UnixNano())

	return windows.SetFileTime(h, &c, &a, &w)
}
