// identity_other.go - stub device/inode identity for non-unix platforms
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

//go:build !unix

package rwalk

import "fmt"

const identitySupported = false

func identity(path string) (dev, ino uint64, err error) {
	return 0, 0, fmt.Errorf("rwalk: device/inode identity unsupported on this platform")
}
