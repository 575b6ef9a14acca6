// builder.go - Builder, the top-level entry point (spec §6)
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
	"path/filepath"

	"github.com/opencoff/go-logger"

	"github.com/opencoff/go-multiglob/internal/cluster"
	"github.com/opencoff/go-multiglob/internal/plan"
)

// Builder configures and compiles a pattern list into a MultiGlobWalker.
// Its fluent setters mirror the original MultiGlobBuilder.
type Builder struct {
	base     string
	patterns []string
	opts     Options
	log      logger.Logger
}

// New returns a Builder rooted at base, evaluating patterns against it.
func New(base string, patterns []string) *Builder {
	ps := make([]string, len(patterns))
	copy(ps, patterns)
	return &Builder{
		base:     base,
		patterns: ps,
		opts:     defaultOptions(),
	}
}

// FollowLinks sets whether symbolic links are followed during traversal.
func (b *Builder) FollowLinks(v bool) *Builder {
	b.opts.FollowLinks = v
	return b
}

// MaxDepth sets the per-recursive-segment depth cap. Zero means
// unbounded; per spec §9's "Known ambiguity" note, this is a plain
// setter with no special-casing.
func (b *Builder) MaxDepth(v int) *Builder {
	b.opts.MaxDepth = v
	return b
}

// MaxOpen sets the concurrent directory-handle cap.
func (b *Builder) MaxOpen(v int) *Builder {
	b.opts.MaxOpen = v
	return b
}

// SameFileSystem restricts descent to the device of each group's base.
func (b *Builder) SameFileSystem(v bool) *Builder {
	b.opts.SameFileSystem = v
	return b
}

// CaseInsensitive compiles subsequently added globs without regard to
// case.
func (b *Builder) CaseInsensitive(v bool) *Builder {
	b.opts.CaseInsensitive = v
	return b
}

// SkipInvalid drops individually unparseable patterns instead of failing
// Build.
func (b *Builder) SkipInvalid(v bool) *Builder {
	b.opts.SkipInvalid = v
	return b
}

// Log attaches a logger; Build logs one Debug line per clustered group.
func (b *Builder) Log(log logger.Logger) *Builder {
	b.log = log
	return b
}

// Build compiles the configured patterns into a MultiGlobWalker. Glob
// compilation errors are surfaced here, not mid-stream; a group whose
// base does not exist is not an error.
func (b *Builder) Build() (*MultiGlobWalker, error) {
	opts := b.opts.normalized()
	groups := cluster.Cluster(b.patterns)

	roots := make([]*nodeWalker, 0, len(groups))
	for _, g := range groups {
		if b.log != nil {
			b.log.Debug("adding a glob group: base=%q patterns=%v is_root=%v", g.Base, g.Patterns, g.IsRoot)
		}

		node := plan.Build(g.Patterns)
		compiled, err := plan.Compile(node, opts.CaseInsensitive, opts.SkipInvalid)
		if err != nil {
			return nil, asPatternError(g.Base, err)
		}

		groupBase := b.base
		if g.Base != "" {
			groupBase = filepath.Join(b.base, g.Base)
		}
		roots = append(roots, newNodeWalker(groupBase, compiled, opts, true))
	}

	return newMultiGlobWalker(opts, roots), nil
}
