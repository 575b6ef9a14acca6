// cluster.go - a simplified clustering/normalization preprocessor
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

// Package cluster groups a raw pattern list by common literal prefix, the
// preprocessing step spec.md treats as an external collaborator. This is
// a deliberately simple stand-in: it factors out each pattern's longest
// leading run of non-wildcard segments as the group's base, and merges
// patterns that share an identical base into one group. It does not
// attempt the deeper prefix-merging a production clustering pass might
// do (e.g. partial segment overlap, common ancestor hoisting) — grouping
// strategy only affects how many directories get re-read, never
// correctness, since the walker unions every group's output regardless
// of how patterns were split across groups.
package cluster

import "strings"

// Group is a set of patterns sharing a literal base path, to be joined
// onto the walker's root and evaluated together against it.
type Group struct {
	// Base is the literal path to join onto the walk root; empty if
	// this group is anchored directly at the root.
	Base string
	// Patterns are the remaining pattern strings, relative to Base,
	// handed to the plan builder.
	Patterns []string
	// IsRoot is true iff Base is empty.
	IsRoot bool
}

// Cluster groups patterns by literal prefix, preserving each base's
// first-seen order.
func Cluster(patterns []string) []Group {
	order := make([]string, 0, len(patterns))
	byBase := make(map[string][]string, len(patterns))

	for _, p := range patterns {
		base, rest := splitLiteralPrefix(p)
		if _, ok := byBase[base]; !ok {
			order = append(order, base)
		}
		byBase[base] = append(byBase[base], rest)
	}

	groups := make([]Group, 0, len(order))
	for _, base := range order {
		groups = append(groups, Group{
			Base:     base,
			Patterns: byBase[base],
			IsRoot:   base == "",
		})
	}
	return groups
}

// splitLiteralPrefix factors the longest leading run of literal segments
// out of pattern, always leaving at least the last segment in rest. A
// pattern whose every segment is literal is not split at all: it gets an
// empty base, and the plan builder handles it directly as a pure-literal
// pattern.
func splitLiteralPrefix(pattern string) (base, rest string) {
	if pattern == "" || pattern == "." {
		return "", pattern
	}

	segs := strings.Split(pattern, "/")

	allLiteral := true
	for _, s := range segs {
		if !isLiteralSegment(s) {
			allLiteral = false
			break
		}
	}
	if allLiteral {
		return "", pattern
	}

	i := 0
	for i < len(segs)-1 && isLiteralSegment(segs[i]) {
		i++
	}
	if i == 0 {
		return "", pattern
	}
	return strings.Join(segs[:i], "/"), strings.Join(segs[i:], "/")
}

func isLiteralSegment(seg string) bool {
	return !strings.ContainsAny(seg, "*?[]{}")
}
