package plan

import "testing"

func TestCompileLiteralPaths(t *testing.T) {
	n := Build([]string{"b", "a"})
	c, err := Compile(n, false, false)
	if err != nil {
		t.Fatalf("Compile: %s", err)
	}
	if c.Matcher.Kind != LiteralPaths {
		t.Fatalf("Matcher.Kind = %v, want LiteralPaths", c.Matcher.Kind)
	}
	want := []string{"a", "b"}
	for i := range want {
		if c.Matcher.Paths[i] != want[i] {
			t.Fatalf("Paths = %v, want %v", c.Matcher.Paths, want)
		}
	}
}

func TestCompileBadPatternFails(t *testing.T) {
	n := Build([]string{"["})
	_, err := Compile(n, false, false)
	if err == nil {
		t.Fatalf("expected an error for an invalid pattern")
	}
	var bad *BadPatternError
	if ok := asBadPatternError(err, &bad); !ok {
		t.Fatalf("expected *BadPatternError, got %T: %v", err, err)
	}
	if bad.Pattern != "[" {
		t.Fatalf("Pattern = %q, want %q", bad.Pattern, "[")
	}
}

func TestCompileSkipInvalidDropsBadPattern(t *testing.T) {
	n := Build([]string{"[", "ok"})
	c, err := Compile(n, false, true)
	if err != nil {
		t.Fatalf("Compile: %s", err)
	}
	if c.Matcher.Set.Len() != 1 {
		t.Fatalf("Set.Len() = %d, want 1", c.Matcher.Set.Len())
	}
}

func asBadPatternError(err error, target **BadPatternError) bool {
	bad, ok := err.(*BadPatternError)
	if ok {
		*target = bad
	}
	return ok
}
