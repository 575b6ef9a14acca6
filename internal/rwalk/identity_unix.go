// identity_unix.go - device/inode identity for loop and FS-boundary checks
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

//go:build unix

package rwalk

import (
	"golang.org/x/sys/unix"
)

// identitySupported reports whether this platform can answer device/inode
// queries; same_file_system and symlink-loop detection both depend on it.
const identitySupported = true

// identity stats path (following symlinks) and returns its device and
// inode numbers.
func identity(path string) (dev, ino uint64, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, 0, err
	}
	return uint64(st.Dev), uint64(st.Ino), nil
}
