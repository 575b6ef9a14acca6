// dirent_xattr_unix.go - extended attributes for DirEntry (unix)
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

package multiglob

import (
	"fmt"
	"strings"

	"github.com/pkg/xattr"
)

// Xattr is the collection of extended attributes of a file.
type Xattr map[string]string

// String renders every attribute as "key=value", one per line.
func (x Xattr) String() string {
	var s strings.Builder
	for k, v := range x {
		fmt.Fprintf(&s, "%s=%s\n", k, v)
	}
	return s.String()
}

// fetchXattr reads every extended attribute of nm. If follow is true, a
// symlink's target attributes are read; otherwise the symlink's own
// attributes are read, matching DirEntry's follow-mode everywhere else.
func fetchXattr(nm string, follow bool) (Xattr, error) {
	list, get := xattr.LList, xattr.LGet
	if follow {
		list, get = xattr.List, xattr.Get
	}

	keys, err := list(nm)
	if err != nil {
		return nil, err
	}

	x := make(Xattr, len(keys))
	for _, k := range keys {
		b, err := get(nm, k)
		if err != nil {
			return nil, err
		}
		x[k] = string(b)
	}
	return x, nil
}
