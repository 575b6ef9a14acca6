// doc.go - package overview
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

// Package multiglob matches a list of glob patterns against a single base
// directory and returns every matching entry as a lazily produced,
// depth-first, lexicographically ordered sequence.
//
// Patterns are one of three kinds: a literal path ("etc/hosts"), a
// single-segment glob ("*.go"), or a pattern containing a recursive "**"
// segment ("src/**/*.rs"). A Builder compiles a pattern list once; the
// returned MultiGlobWalker is then driven one entry at a time via Next,
// without ever materializing the whole result set in memory.
package multiglob
