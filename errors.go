// errors.go - error types raised by Builder and the walkers
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
	"fmt"

	"github.com/opencoff/go-multiglob/internal/plan"
)

// ErrClosed is returned by a MultiGlobWalker's Next once Close has been
// called. An exhausted walker keeps returning io.EOF instead.
var ErrClosed = errors.New("multiglob: walker closed")

// PatternError is a build-time glob-compilation failure, surfaced once
// from Builder.Build rather than mid-stream.
type PatternError struct {
	Base    string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	if e.Base != "" {
		return fmt.Sprintf("multiglob: group %q: bad pattern %q: %v", e.Base, e.Pattern, e.Err)
	}
	return fmt.Sprintf("multiglob: bad pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// asPatternError wraps a plan.BadPatternError with the group base it
// failed in, or returns err unchanged if it isn't one.
func asPatternError(base string, err error) error {
	var bad *plan.BadPatternError
	if errors.As(err, &bad) {
		return &PatternError{Base: base, Pattern: bad.Pattern, Err: bad.Err}
	}
	return err
}

// WalkError is a mid-stream I/O or symlink-loop failure encountered while
// driving a node walker.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("multiglob: %s: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }
