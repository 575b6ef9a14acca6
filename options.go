// options.go - builder configuration, mirroring MultiGlobOptions
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

// Options holds the walk-wide configuration, with the defaults spec §6
// mandates.
type Options struct {
	// FollowLinks follows symbolic links from the first wildcard-bearing
	// segment onward; broken or cyclic links raise errors when set.
	FollowLinks bool

	// MaxDepth caps traversal depth per recursive ("**") segment,
	// counted from that segment's anchor. Zero means unbounded.
	MaxDepth int

	// MaxOpen is the concurrent directory-handle cap; coerced to 1 if
	// zero.
	MaxOpen int

	// SameFileSystem prohibits crossing device boundaries.
	SameFileSystem bool

	// CaseInsensitive compiles subsequently added globs without regard
	// to case.
	CaseInsensitive bool

	// SkipInvalid drops individual unparseable patterns (and coerces a
	// whole-group compile failure to "match nothing") instead of
	// failing Build outright.
	SkipInvalid bool
}

// defaultOptions returns the spec-mandated defaults.
func defaultOptions() Options {
	return Options{
		MaxOpen: 10,
	}
}

func (o Options) normalized() Options {
	if o.MaxOpen <= 0 {
		o.MaxOpen = 1
	}
	return o
}
