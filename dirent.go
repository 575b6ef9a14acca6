// dirent.go - the unified DirEntry abstraction (spec §4.5)
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

package multiglob

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opencoff/go-multiglob/internal/rwalk"
)

// DirEntry hides whether a yielded value came from a literal-path probe
// or from the recursive walker. Its path always names the on-disk entry,
// never a symlink's target.
type DirEntry struct {
	path      string
	fileType  fs.FileMode
	isSymlink bool
	followed  bool
	meta      func() (fs.FileInfo, error)
}

// Path is the on-disk path as joined from the walker's base.
func (d DirEntry) Path() string { return d.path }

// FileName is the final path component, or the whole path if it has
// none (e.g. "/").
func (d DirEntry) FileName() string {
	name := filepath.Base(d.path)
	if name == "." || name == string(filepath.Separator) {
		return d.path
	}
	return name
}

// IsSymlink is true iff the on-disk entry is a symlink, or the entry was
// produced by following a symlinked literal path.
func (d DirEntry) IsSymlink() bool { return d.isSymlink }

// Followed reports whether FileType and Metadata reflect a symlink's
// target rather than the link itself.
func (d DirEntry) Followed() bool { return d.followed }

// FileType never costs a syscall; it reflects the target type when
// Followed is true.
func (d DirEntry) FileType() fs.FileMode { return d.fileType }

// Metadata returns target metadata in follow-mode, link metadata
// otherwise. I/O errors are surfaced to the caller.
func (d DirEntry) Metadata() (fs.FileInfo, error) { return d.meta() }

// Xattr fetches the entry's extended attributes, following symlinks iff
// the entry itself is in follow-mode. Supplemented beyond spec.md: not
// every platform supports it, see dirent_xattr_*.go.
func (d DirEntry) Xattr() (Xattr, error) {
	return fetchXattr(d.path, d.followed)
}

func dirEntryFromWalk(e rwalk.Entry) DirEntry {
	return DirEntry{
		path:      e.Path(),
		fileType:  e.FileType(),
		isSymlink: e.IsSymlink(),
		followed:  e.Followed(),
		meta:      e.Metadata,
	}
}

// probeLiteralPath stats a candidate literal path. It reports ok=false
// (not an error) when the path does not exist, matching spec §4.3's
// PathState: non-existence of a literal path silently produces no match.
func probeLiteralPath(path string, followLinks bool) (DirEntry, bool) {
	lst, err := os.Lstat(path)
	if err != nil {
		return DirEntry{}, false
	}

	isSym := lst.Mode()&os.ModeSymlink != 0
	fileType := lst.Mode().Type()
	followed := false
	var cached fs.FileInfo = lst

	if isSym && followLinks {
		tgt, err := os.Stat(path)
		if err != nil {
			return DirEntry{}, false
		}
		fileType = tgt.Mode().Type()
		followed = true
		cached = tgt
	}

	entry := DirEntry{path: path, fileType: fileType, isSymlink: isSym, followed: followed}
	if followed {
		info := cached
		entry.meta = func() (fs.FileInfo, error) { return info, nil }
	} else {
		entry.meta = func() (fs.FileInfo, error) { return os.Lstat(path) }
	}
	return entry, true
}

// probeSelf builds the one-shot self-emitted entry for a group root whose
// plan node is terminal (spec §4.3 "Self-emission"). It reports ok=false,
// matching probeLiteralPath, when base does not exist: a missing group
// base is not an error.
func probeSelf(base string, followLinks bool) (DirEntry, bool) {
	lst, err := os.Lstat(base)
	if err != nil {
		return DirEntry{}, false
	}

	isSym := lst.Mode()&os.ModeSymlink != 0
	fileType := lst.Mode().Type()
	followed := false
	var cached fs.FileInfo = lst

	if isSym && followLinks {
		tgt, err := os.Stat(base)
		if err != nil {
			return DirEntry{}, false
		}
		fileType = tgt.Mode().Type()
		followed = true
		cached = tgt
	}

	entry := DirEntry{path: base, fileType: fileType, isSymlink: isSym, followed: followed}
	if followed {
		info := cached
		entry.meta = func() (fs.FileInfo, error) { return info, nil }
	} else {
		entry.meta = func() (fs.FileInfo, error) { return os.Lstat(base) }
	}
	return entry, true
}
