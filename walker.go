// walker.go - the top-level stack-driven iterator (spec §4.4)
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

import "io"

// MultiGlobWalker is the top-level iterator returned by Builder.Build.
// It composes a stack of node walkers, one per clustered pattern group,
// into a single depth-first, pre-order, lexicographically ordered
// sequence of DirEntry values.
//
// A MultiGlobWalker is single-use and not safe for concurrent use: spec
// §5 mandates single-threaded cooperative iteration with no shared
// mutable state between walker instances.
type MultiGlobWalker struct {
	opts  Options
	stack []*nodeWalker
	err   error
}

// newMultiGlobWalker pushes roots in original group order, then reverses
// the stack so popping from the top replays that same order.
func newMultiGlobWalker(opts Options, roots []*nodeWalker) *MultiGlobWalker {
	stack := make([]*nodeWalker, len(roots))
	for i, r := range roots {
		stack[len(roots)-1-i] = r
	}
	return &MultiGlobWalker{opts: opts, stack: stack}
}

// Next returns the next matching entry, io.EOF once the walk is
// exhausted, or a walk-time error encountered along the way. Next is
// sticky only after io.EOF or Close: a walk-time I/O error is yielded
// for that one call, and the group that produced it is left on the
// stack so iteration resumes there (and sibling groups are never
// affected) on the following call.
func (w *MultiGlobWalker) Next() (DirEntry, error) {
	if w.err != nil {
		return DirEntry{}, w.err
	}

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		out, err := top.next()
		if err == errExhausted {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		if err != nil {
			return DirEntry{}, err
		}

		// LIFO: push in reverse so the lexicographically first spawned
		// child ends up on top and traverses before its siblings, and
		// before the parent's remaining candidates resume.
		for i := len(out.spawned) - 1; i >= 0; i-- {
			w.stack = append(w.stack, out.spawned[i])
		}

		if out.terminal != nil {
			return *out.terminal, nil
		}
	}

	w.err = io.EOF
	return DirEntry{}, io.EOF
}

// Close releases the walker early. Every directory is opened, fully read,
// and closed by the underlying os.ReadDir call before any of its entries
// are yielded, so no node walker on the stack holds a live descriptor;
// Close only needs to mark the walker done. A subsequent Next returns
// ErrClosed.
func (w *MultiGlobWalker) Close() error {
	if w.err == nil {
		w.err = ErrClosed
	}
	w.stack = nil
	return nil
}
