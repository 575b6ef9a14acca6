// multiglob_test.go - end-to-end tests for Builder/MultiGlobWalker

package multiglob

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("\n%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

func mkdirp(t *testing.T, base, rel string) string {
	p := filepath.Join(base, rel)
	if err := os.MkdirAll(p, 0755); err != nil {
		t.Fatalf("mkdirp %s: %s", p, err)
	}
	return p
}

func touch(t *testing.T, base, rel string) string {
	p := filepath.Join(base, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("mkdir %s: %s", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatalf("touch %s: %s", p, err)
	}
	return p
}

func symlink(t *testing.T, base, target, rel string) string {
	p := filepath.Join(base, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("mkdir %s: %s", filepath.Dir(p), err)
	}
	if err := os.Symlink(filepath.Join(base, target), p); err != nil {
		t.Fatalf("symlink %s -> %s: %s", p, target, err)
	}
	return p
}

// setupDirWithSyms reproduces the original test fixture: base/x holding
// three plain files and a symlinked directory, plus a second symlinked
// directory living outside base/x entirely.
func setupDirWithSyms(t *testing.T) string {
	dir := t.TempDir()
	mkdirp(t, dir, "base/x")
	mkdirp(t, dir, "a/b")
	symlink(t, dir, "a", "base/x/asym")
	symlink(t, dir, "a/b", "a/bsym")
	touch(t, dir, "a/b/c")
	touch(t, dir, "base/x/d.1")
	touch(t, dir, "base/x/d.2")
	touch(t, dir, "base/x/d.3")
	return dir
}

func collect(t *testing.T, w *MultiGlobWalker) []string {
	var out []string
	for {
		ent, err := w.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("walk: %s", err)
		}
		out = append(out, ent.Path())
	}
	sort.Strings(out)
	return out
}

func TestWalkPathNoPatterns(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)

	w, err := New(filepath.Join(dir, "base/x"), nil).Build()
	assert(err == nil, "build: %s", err)
	assert(len(collect(t, w)) == 0, "expected no entries")
}

func TestWalkPathLiteral(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)

	w, err := New(filepath.Join(dir, "a"), []string{"b"}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{filepath.Join(dir, "a/b")}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkPathNestedLiteral(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)

	w, err := New(filepath.Join(dir, "a"), []string{"b/c"}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{filepath.Join(dir, "a/b/c")}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkPathLiteralAndNested(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)

	w, err := New(filepath.Join(dir, "a"), []string{"b", "b/c"}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{filepath.Join(dir, "a/b"), filepath.Join(dir, "a/b/c")}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkPathSelfEmission(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	base := filepath.Join(dir, "base/x")

	for _, pat := range [][]string{{"."}, {""}} {
		w, err := New(base, pat).Build()
		assert(err == nil, "build: %s", err)
		got := collect(t, w)
		want := []string{base}
		assert(slicesEqual(got, want), "pattern %v: got %v want %v", pat, got, want)
	}
}

func TestWalkPathMixedSelfAndLiteral(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	base := filepath.Join(dir, "base/x")

	w, err := New(base, []string{"", "asym", "wrong"}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{base, filepath.Join(base, "asym")}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkGlobSingleSegment(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	base := filepath.Join(dir, "base/x")

	w, err := New(base, []string{"a*"}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{filepath.Join(base, "asym")}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkGlobBraceAndClass(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	base := filepath.Join(dir, "base/x")

	for _, pat := range []string{"d.{1,2}", "d.[12]"} {
		w, err := New(base, []string{pat, "asym"}).Build()
		assert(err == nil, "build: %s", err)
		got := collect(t, w)
		want := []string{
			filepath.Join(base, "asym"),
			filepath.Join(base, "d.1"),
			filepath.Join(base, "d.2"),
		}
		assert(slicesEqual(got, want), "pattern %q: got %v want %v", pat, got, want)
	}
}

func TestWalkGlobAndSelf(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	base := filepath.Join(dir, "base/x")

	w, err := New(base, []string{"d.{1,2}", "."}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{base, filepath.Join(base, "d.1"), filepath.Join(base, "d.2")}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkRecursiveBareAtRoot(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	base := filepath.Join(dir, "base/x")

	w, err := New(base, []string{"**"}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{
		base,
		filepath.Join(base, "asym"),
		filepath.Join(base, "d.1"),
		filepath.Join(base, "d.2"),
		filepath.Join(base, "d.3"),
	}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkRecursiveAnchoredAtPath(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	base := dir

	w, err := New(base, []string{"base/x/**"}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	xbase := filepath.Join(base, "base/x")
	want := []string{
		xbase,
		filepath.Join(xbase, "asym"),
		filepath.Join(xbase, "d.1"),
		filepath.Join(xbase, "d.2"),
		filepath.Join(xbase, "d.3"),
	}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkRecursiveFollowLinks(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	base := filepath.Join(dir, "base/x")

	w, err := New(base, []string{"**"}).FollowLinks(true).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{
		base,
		filepath.Join(base, "asym"),
		filepath.Join(base, "asym/b"),
		filepath.Join(base, "asym/b/c"),
		filepath.Join(base, "asym/bsym"),
		filepath.Join(base, "asym/bsym/c"),
		filepath.Join(base, "d.1"),
		filepath.Join(base, "d.2"),
		filepath.Join(base, "d.3"),
	}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkRecursiveMaxDepth(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)
	mkdirp(t, dir, "y/1/2/3")
	touch(t, dir, "y/top")
	touch(t, dir, "y/1/mid")
	touch(t, dir, "y/1/2/deep")

	base := dir
	w, err := New(base, []string{"y/**"}).MaxDepth(2).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)

	ybase := filepath.Join(base, "y")
	want := []string{
		ybase,
		filepath.Join(ybase, "1"),
		filepath.Join(ybase, "1/2"),
		filepath.Join(ybase, "1/mid"),
		filepath.Join(ybase, "top"),
	}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkInvalidPattern(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()

	_, err := New(dir, []string{"["}).Build()
	assert(err != nil, "expected a build-time pattern error")

	var pe *PatternError
	assert(asErrPattern(err, &pe), "expected *PatternError, got %T: %v", err, err)
}

func TestWalkSkipInvalidPattern(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()
	touch(t, dir, "ok")

	w, err := New(dir, []string{"[", "ok"}).SkipInvalid(true).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	want := []string{filepath.Join(dir, "ok")}
	assert(slicesEqual(got, want), "got %v want %v", got, want)
}

func TestWalkPathSelfEmissionMissingBase(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope")

	w, err := New(missing, []string{"."}).Build()
	assert(err == nil, "build: %s", err)
	got := collect(t, w)
	assert(len(got) == 0, "expected no entries for a missing self-emission base, got %v", got)
}

func TestWalkResumesAfterPerEntryError(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()
	base := mkdirp(t, dir, "base")
	symlink(t, dir, "base", "base/loop")
	touch(t, dir, "base/zzz")

	w, err := New(base, []string{"**"}).FollowLinks(true).Build()
	assert(err == nil, "build: %s", err)

	var sawErr bool
	var got []string
	for {
		ent, err := w.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			sawErr = true
			continue
		}
		got = append(got, ent.Path())
	}
	sort.Strings(got)

	assert(sawErr, "expected the symlink loop to surface as a walk-time error")
	want := []string{base, filepath.Join(base, "zzz")}
	assert(slicesEqual(got, want), "got %v want %v (walk should resume past the loop)", got, want)
}

func TestWalkerCloseIsSticky(t *testing.T) {
	assert := newAsserter(t)
	dir := setupDirWithSyms(t)

	w, err := New(filepath.Join(dir, "base/x"), []string{"**"}).Build()
	assert(err == nil, "build: %s", err)

	assert(w.Close() == nil, "close")
	_, err = w.Next()
	assert(err == ErrClosed, "expected ErrClosed, got %v", err)
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func asErrPattern(err error, target **PatternError) bool {
	pe, ok := err.(*PatternError)
	if ok {
		*target = pe
	}
	return ok
}
