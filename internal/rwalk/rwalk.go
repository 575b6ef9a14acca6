// rwalk.go - the RecursiveWalk collaborator: a sequential, sorted,
// depth-limited single-directory-tree walker with symlink-loop detection.
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

// Package rwalk is the black-box single-directory recursive walker the
// node walker treats as an external service (spec §4.3's WalkState): it
// supplies ordered, depth-limited entries below a base directory, with
// symlink-loop detection and an optional same-filesystem restriction.
//
// Because callers require lexicographic output, every directory's
// listing must be read and sorted before any of its entries can be
// yielded — os.ReadDir already guarantees that order. One consequence:
// at most one directory listing is ever mid-read at a time, so MaxOpen
// is validated and carried but does not change observable output. See
// DESIGN.md for the full rationale.
package rwalk

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Options configures a Walker.
type Options struct {
	// FollowLinks makes the walker treat a symlink as its target type
	// and descend into it if the target is a directory.
	FollowLinks bool

	// FollowRootLinks controls whether a symlinked base directory is
	// entered at all. Spawned child walkers always pass true, since
	// their caller already decided to follow (spec §4.3 candidate
	// dispatch checks file_type().is_dir(), which already reflects
	// follow-mode, before spawning).
	FollowRootLinks bool

	// MaxDepth caps how many levels below the base are visited. Zero
	// means unbounded.
	MaxDepth int

	// MaxOpen is the concurrent directory-handle cap (spec §5); see
	// the package doc for why it is a no-op on output here.
	MaxOpen int

	// SameFileSystem restricts descent to the device of the base.
	SameFileSystem bool
}

// Entry is one yielded directory entry.
type Entry struct {
	path      string
	rel       string
	fileType  fs.FileMode
	isSymlink bool
	followed  bool
	meta      func() (fs.FileInfo, error)
}

// Path is the on-disk path as joined from the walker's base.
func (e Entry) Path() string { return e.path }

// Rel is the path relative to the walker's base, slash-separated.
func (e Entry) Rel() string { return e.rel }

// FileType never costs a syscall; it reflects the target type in
// follow-mode.
func (e Entry) FileType() fs.FileMode { return e.fileType }

// IsSymlink reports whether the on-disk entry itself is a symlink.
func (e Entry) IsSymlink() bool { return e.isSymlink }

// Followed reports whether FileType and Metadata reflect a symlink's
// target rather than the link itself.
func (e Entry) Followed() bool { return e.followed }

// Metadata fetches (lazily, for unfollowed entries) the entry's metadata:
// target metadata in follow-mode, link metadata otherwise.
func (e Entry) Metadata() (fs.FileInfo, error) { return e.meta() }

var errBaseMissing = errors.New("rwalk: base missing")

type frame struct {
	abs   string
	rel   string
	depth int
	dev   uint64
	ino   uint64
	names []string
	idx   int
}

// Walker is a lazy, stateful iterator over one directory subtree.
type Walker struct {
	opts    Options
	base    string
	rootDev uint64
	stack   []*frame
	started bool
	err     error
}

// New returns a Walker rooted at base. MaxOpen is coerced to at least 1.
func New(base string, opts Options) *Walker {
	if opts.MaxOpen < 1 {
		opts.MaxOpen = 1
	}
	return &Walker{opts: opts, base: base}
}

// Next returns the next entry in pre-order, depth-first, lexicographic
// order. It returns io.EOF when the walk is exhausted or the base does
// not exist (or, with FollowRootLinks false, is itself a symlink).
// A per-entry I/O failure (an entry that cannot be statted, a detected
// symlink loop) is returned for that one call only; the walker has
// already advanced past the failing entry, so the next call resumes the
// walk rather than repeating the error. A subdirectory whose identity or
// listing cannot be read is still yielded, but it is not descended into
// and no error is returned for it.
func (w *Walker) Next() (Entry, error) {
	if w.err != nil {
		return Entry{}, w.err
	}
	if !w.started {
		w.started = true
		if err := w.start(); err != nil {
			if errors.Is(err, errBaseMissing) {
				w.err = io.EOF
				return Entry{}, io.EOF
			}
			// The base cannot be walked: report the error once, then
			// the walk is exhausted.
			w.err = io.EOF
			return Entry{}, err
		}
	}

	for {
		if len(w.stack) == 0 {
			w.err = io.EOF
			return Entry{}, io.EOF
		}
		top := w.stack[len(w.stack)-1]
		if top.idx >= len(top.names) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		name := top.names[top.idx]
		top.idx++

		childAbs := filepath.Join(top.abs, name)
		childRel := name
		if top.rel != "" {
			childRel = top.rel + "/" + name
		}

		entry, descend, err := w.visit(top, childAbs, childRel)
		if err != nil {
			// Not sticky: top.idx is already past the failing name, so
			// the next call resumes with the following entry.
			return Entry{}, err
		}
		if descend != nil {
			w.stack = append(w.stack, descend)
		}
		return entry, nil
	}
}

func (w *Walker) start() error {
	lst, err := os.Lstat(w.base)
	if err != nil {
		return errBaseMissing
	}

	fi := lst
	if lst.Mode()&os.ModeSymlink != 0 {
		if !w.opts.FollowRootLinks {
			return errBaseMissing
		}
		fi, err = os.Stat(w.base)
		if err != nil {
			return errBaseMissing
		}
	}
	if !fi.IsDir() {
		return errBaseMissing
	}

	var dev, ino uint64
	if identitySupported {
		dev, ino, _ = identity(w.base)
	}
	if w.opts.SameFileSystem {
		if !identitySupported {
			return ErrSameFileSystemUnsupported
		}
		w.rootDev = dev
	}

	names, err := readSortedNames(w.base)
	if err != nil {
		return &PathError{Path: w.base, Err: err}
	}
	w.stack = append(w.stack, &frame{abs: w.base, rel: "", depth: 0, dev: dev, ino: ino, names: names})
	return nil
}

// visit stats one directory child and decides whether to descend into
// it, returning the entry to yield and (if applicable) the frame to push.
func (w *Walker) visit(top *frame, childAbs, childRel string) (Entry, *frame, error) {
	lst, err := os.Lstat(childAbs)
	if err != nil {
		return Entry{}, nil, &PathError{Path: childAbs, Err: err}
	}

	isSym := lst.Mode()&os.ModeSymlink != 0
	fileType := lst.Mode().Type()
	followed := false
	var cached fs.FileInfo = lst

	if isSym && w.opts.FollowLinks {
		tgt, err := os.Stat(childAbs)
		if err != nil {
			return Entry{}, nil, &PathError{Path: childAbs, Err: err}
		}
		fileType = tgt.Mode().Type()
		followed = true
		cached = tgt
	}

	entry := Entry{path: childAbs, rel: childRel, fileType: fileType, isSymlink: isSym, followed: followed}
	if followed {
		info := cached
		entry.meta = func() (fs.FileInfo, error) { return info, nil }
	} else {
		entry.meta = func() (fs.FileInfo, error) { return os.Lstat(childAbs) }
	}

	if !fileType.IsDir() {
		return entry, nil, nil
	}

	var dev, ino uint64
	if identitySupported {
		dev, ino, err = identity(childAbs)
		if err != nil {
			// identity failure: yield the entry we already have in
			// hand without descending into it; no error is reported.
			return entry, nil, nil
		}
	}

	if isSym && followed && identitySupported {
		if w.ancestorLoop(dev, ino) {
			return Entry{}, nil, &LoopError{Path: childAbs}
		}
	}

	if w.opts.SameFileSystem {
		if !identitySupported {
			return Entry{}, nil, ErrSameFileSystemUnsupported
		}
		if dev != w.rootDev {
			return entry, nil, nil
		}
	}

	depth := top.depth + 1
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return entry, nil, nil
	}

	names, err := readSortedNames(childAbs)
	if err != nil {
		return entry, nil, nil
	}
	return entry, &frame{abs: childAbs, rel: childRel, depth: depth, dev: dev, ino: ino, names: names}, nil
}

func (w *Walker) ancestorLoop(dev, ino uint64) bool {
	for _, f := range w.stack {
		if f.dev == dev && f.ino == ino {
			return true
		}
	}
	return false
}

func readSortedNames(abs string) ([]string, error) {
	ents, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(ents))
	for i, e := range ents {
		names[i] = e.Name()
	}
	return names, nil
}
