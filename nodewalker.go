// nodewalker.go - per-node iterator over one of three traversal modes
// (spec §4.3)
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
	"errors"
	"io"
	"path/filepath"

	"github.com/opencoff/go-multiglob/internal/globset"
	"github.com/opencoff/go-multiglob/internal/plan"
	"github.com/opencoff/go-multiglob/internal/rwalk"
)

// errExhausted signals that a nodeWalker has no more candidates; it never
// escapes this package.
var errExhausted = errors.New("multiglob: node walker exhausted")

// pathState is a cursor over a fixed list of base-joined literal paths.
type pathState struct {
	paths  []string
	cursor int
}

// walkState wraps the recursive-walk collaborator plus the GlobSet its
// entries are matched against.
type walkState struct {
	set     *globset.Set
	walker  *rwalk.Walker
	scratch []int
}

// stepOutput is what one nodeWalker.next() call produces: an optional
// terminal match and any freshly spawned child walkers.
type stepOutput struct {
	terminal *DirEntry
	spawned  []*nodeWalker
}

// nodeWalker advances one of the two finite state machines described in
// spec §4.3 over a single compiled plan node.
type nodeWalker struct {
	base         string
	destinations []*plan.Compiled
	opts         Options

	emitSelf bool
	selfDone bool

	path *pathState
	walk *walkState
}

// newNodeWalker builds a walker for node, rooted at base. isRoot marks
// a walker as the root of a pattern group: only group roots can
// self-emit their own base.
func newNodeWalker(base string, node *plan.Compiled, opts Options, isRoot bool) *nodeWalker {
	nw := &nodeWalker{
		base:         base,
		destinations: node.Destinations,
		opts:         opts,
		emitSelf:     isRoot && node.Terminal,
	}

	switch node.Matcher.Kind {
	case plan.LiteralPaths:
		paths := make([]string, len(node.Matcher.Paths))
		for i, p := range node.Matcher.Paths {
			paths[i] = filepath.Join(base, p)
		}
		nw.path = &pathState{paths: paths}

	case plan.GlobMatch:
		maxDepth := opts.MaxDepth
		if !node.Matcher.Recursive {
			maxDepth = 1
		}
		w := rwalk.New(base, rwalk.Options{
			FollowLinks:     opts.FollowLinks,
			FollowRootLinks: true,
			MaxDepth:        maxDepth,
			MaxOpen:         opts.MaxOpen,
			SameFileSystem:  opts.SameFileSystem,
		})
		nw.walk = &walkState{set: node.Matcher.Set, walker: w}
	}

	return nw
}

// next drives the walker's state machine until it produces a non-empty
// output or is exhausted, per spec §4.3's "If neither terminal nor
// spawned children resulted, continue the loop".
func (nw *nodeWalker) next() (stepOutput, error) {
	if nw.emitSelf && !nw.selfDone {
		nw.selfDone = true
		if entry, ok := probeSelf(nw.base, nw.opts.FollowLinks); ok {
			return stepOutput{terminal: &entry}, nil
		}
	}

	for {
		cand, idxs, ok, err := nw.advance()
		if err != nil {
			return stepOutput{}, err
		}
		if !ok {
			return stepOutput{}, errExhausted
		}
		out := nw.dispatch(cand, idxs)
		if out.terminal != nil || len(out.spawned) > 0 {
			return out, nil
		}
	}
}

// advance pulls the next raw candidate and the destination indices it
// matched, from whichever state machine this walker runs.
func (nw *nodeWalker) advance() (DirEntry, []int, bool, error) {
	if nw.path != nil {
		for nw.path.cursor < len(nw.path.paths) {
			i := nw.path.cursor
			nw.path.cursor++
			entry, ok := probeLiteralPath(nw.path.paths[i], nw.opts.FollowLinks)
			if !ok {
				continue
			}
			return entry, []int{i}, true, nil
		}
		return DirEntry{}, nil, false, nil
	}

	for {
		e, err := nw.walk.walker.Next()
		if err == io.EOF {
			return DirEntry{}, nil, false, nil
		}
		if err != nil {
			return DirEntry{}, nil, false, wrapWalkError(nw.base, err)
		}

		nw.walk.scratch = nw.walk.scratch[:0]
		nw.walk.scratch = nw.walk.set.MatchesInto(e.Rel(), nw.walk.scratch)
		if len(nw.walk.scratch) == 0 {
			continue
		}
		idxs := append([]int(nil), nw.walk.scratch...)
		return dirEntryFromWalk(e), idxs, true, nil
	}
}

// dispatch implements spec §4.3's candidate dispatch: claim a terminal
// match and/or spawn child walkers for matched destinations that are
// directories with further structure.
func (nw *nodeWalker) dispatch(cand DirEntry, idxs []int) stepOutput {
	var out stepOutput
	for _, i := range idxs {
		if i < 0 || i >= len(nw.destinations) {
			continue
		}
		dest := nw.destinations[i]

		if dest.Terminal && out.terminal == nil {
			e := cand
			out.terminal = &e
		}
		if len(dest.Destinations) > 0 && cand.FileType().IsDir() {
			out.spawned = append(out.spawned, newNodeWalker(cand.Path(), dest, nw.opts, false))
		}
	}
	return out
}

func wrapWalkError(fallbackPath string, err error) error {
	path := fallbackPath
	switch e := err.(type) {
	case *rwalk.PathError:
		path = e.Path
	case *rwalk.LoopError:
		path = e.Path
	}
	return &WalkError{Path: path, Err: err}
}
