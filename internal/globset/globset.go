// globset.go - compiled glob-set matching, the GlobSet collaborator
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

// Package globset is the black-box glob-compilation and matching engine
// the walk planner treats as an external service: it turns a list of
// shell-style patterns into something that can be asked, cheaply and
// repeatedly, which of those patterns a given name or relative path
// matches. It is built on doublestar, which already implements the full
// grammar the spec requires: '*', '?', '[...]', '{a,b,c}' and '**'.
package globset

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Set is a compiled, ordered list of glob patterns.
type Set struct {
	patterns []string
	foldCase bool
}

// Builder accumulates patterns before compiling them into a Set.
type Builder struct {
	caseInsensitive bool
	patterns        []string
}

// NewBuilder returns a Builder that folds case on every pattern it
// compiles when caseInsensitive is set.
func NewBuilder(caseInsensitive bool) *Builder {
	return &Builder{caseInsensitive: caseInsensitive}
}

// Add validates and appends one pattern. It reports an error without
// mutating the builder if the pattern's syntax is invalid.
func (b *Builder) Add(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("globset: invalid pattern %q", pattern)
	}
	b.patterns = append(b.patterns, pattern)
	return nil
}

// Build compiles the accumulated patterns into a Set. The returned Set
// preserves the order patterns were Added in; callers rely on this to
// line up GlobSet matches with a plan node's destinations by index.
func (b *Builder) Build() *Set {
	pats := make([]string, len(b.patterns))
	copy(pats, b.patterns)
	if b.caseInsensitive {
		for i, p := range pats {
			pats[i] = strings.ToLower(p)
		}
	}
	return &Set{patterns: pats, foldCase: b.caseInsensitive}
}

// Empty returns a Set with no patterns; it never matches anything.
func Empty() *Set {
	return &Set{}
}

// Len reports how many patterns are in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// MatchesInto appends to dst the index of every pattern in s that matches
// name (or relative path, for a recursive set), and returns dst. Callers
// reuse the same backing slice across calls by truncating it to length
// zero first, the way the node walker's scratch buffer is reused.
func (s *Set) MatchesInto(name string, dst []int) []int {
	probe := name
	if s.foldCase {
		probe = strings.ToLower(probe)
	}
	for i, p := range s.patterns {
		ok, err := doublestar.Match(p, probe)
		if err == nil && ok {
			dst = append(dst, i)
		}
	}
	return dst
}
