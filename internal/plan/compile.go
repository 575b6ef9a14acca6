// compile.go - pattern-to-plan compilation (the compiled half)
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

package plan

import (
	"fmt"

	"github.com/opencoff/go-multiglob/internal/globset"
)

// MatcherKind discriminates a Compiled node's matcher.
type MatcherKind int

const (
	// LiteralPaths matches a fixed list of literal segment strings.
	LiteralPaths MatcherKind = iota
	// GlobMatch matches against a compiled GlobSet.
	GlobMatch
)

// Matcher is either a literal path list or a compiled glob set.
type Matcher struct {
	Kind      MatcherKind
	Paths     []string
	Set       *globset.Set
	Recursive bool
}

// Compiled mirrors Node after compilation: its matcher now knows how to
// test path segments or relative paths against precompiled patterns.
type Compiled struct {
	Matcher      Matcher
	Terminal     bool
	Destinations []*Compiled
}

// BadPatternError reports a glob that failed to compile.
type BadPatternError struct {
	Pattern string
	Err     error
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("plan: bad pattern %q: %v", e.Pattern, e.Err)
}

func (e *BadPatternError) Unwrap() error { return e.Err }

// Compile lowers a Node tree into a Compiled tree. caseInsensitive governs
// how child GlobSets are built; skipInvalid silently drops individual
// patterns that fail to compile instead of propagating an error.
func Compile(n *Node, caseInsensitive, skipInvalid bool) (*Compiled, error) {
	keys := n.SortedKeys()

	if n.Kind == Path {
		dests := make([]*Compiled, 0, len(keys))
		for _, k := range keys {
			d, err := Compile(n.Children[k], caseInsensitive, skipInvalid)
			if err != nil {
				return nil, err
			}
			dests = append(dests, d)
		}
		return &Compiled{
			Matcher:      Matcher{Kind: LiteralPaths, Paths: keys},
			Terminal:     n.Terminal,
			Destinations: dests,
		}, nil
	}

	b := globset.NewBuilder(caseInsensitive)
	used := make([]string, 0, len(keys))
	for _, k := range keys {
		if err := b.Add(k); err != nil {
			if skipInvalid {
				continue
			}
			return nil, &BadPatternError{Pattern: k, Err: err}
		}
		used = append(used, k)
	}

	set := b.Build()
	dests := make([]*Compiled, 0, len(used))
	for _, k := range used {
		d, err := Compile(n.Children[k], caseInsensitive, skipInvalid)
		if err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}

	return &Compiled{
		Matcher: Matcher{
			Kind:      GlobMatch,
			Set:       set,
			Recursive: n.Kind == Walk,
		},
		Terminal:     n.Terminal,
		Destinations: dests,
	}, nil
}
