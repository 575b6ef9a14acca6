// dirent_xattr_nop.go - extended attributes stub for non-unix platforms
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

package multiglob

import "fmt"

// Xattr is the collection of extended attributes of a file.
type Xattr map[string]string

func (x Xattr) String() string { return "" }

func fetchXattr(nm string, follow bool) (Xattr, error) {
	return nil, fmt.Errorf("multiglob: extended attributes are not supported on this platform")
}
