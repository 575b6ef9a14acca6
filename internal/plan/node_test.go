package plan

import "testing"

func TestBuildLiteralChain(t *testing.T) {
	n := Build([]string{"b", "b/c"})
	if n.Kind != Path {
		t.Fatalf("root kind = %v, want Path", n.Kind)
	}
	b, ok := n.Children["b"]
	if !ok {
		t.Fatalf("missing child %q", "b")
	}
	if !b.Terminal {
		t.Fatalf("b.Terminal = false, want true")
	}
	c, ok := b.Children["c"]
	if !ok {
		t.Fatalf("missing grandchild %q", "c")
	}
	if !c.Terminal {
		t.Fatalf("c.Terminal = false, want true")
	}
}

func TestBuildBareDoubleStarIsTerminal(t *testing.T) {
	n := Build([]string{"**"})
	if n.Kind != Walk {
		t.Fatalf("root kind = %v, want Walk", n.Kind)
	}
	if !n.Terminal {
		t.Fatalf("root.Terminal = false, want true for a bare \"**\"")
	}
	child, ok := n.Children["**"]
	if !ok || !child.Terminal {
		t.Fatalf("expected a terminal \"**\" child")
	}
}

func TestBuildDoubleStarAnchoredAtLiteral(t *testing.T) {
	n := Build([]string{"x/**"})
	if n.Kind != Path {
		t.Fatalf("root kind = %v, want Path", n.Kind)
	}
	x, ok := n.Children["x"]
	if !ok {
		t.Fatalf("missing child %q", "x")
	}
	if x.Kind != Walk {
		t.Fatalf("x.Kind = %v, want Walk", x.Kind)
	}
	if !x.Terminal {
		t.Fatalf("x.Terminal = false, want true: \"x/**\" also matches \"x\" itself")
	}
}

func TestBuildDoubleStarNestedUnderLiteralDoesNotMakeItTerminal(t *testing.T) {
	n := Build([]string{"x/**/y"})
	x := n.Children["x"]
	if x == nil {
		t.Fatalf("missing child %q", "x")
	}
	if x.Terminal {
		t.Fatalf("x.Terminal = true, want false: \"x/**/y\" does not match \"x\" alone")
	}
}

func TestBuildSelfPatterns(t *testing.T) {
	for _, pat := range []string{"", "."} {
		n := Build([]string{pat})
		if !n.Terminal {
			t.Fatalf("pattern %q: root.Terminal = false, want true", pat)
		}
		if len(n.Children) != 0 {
			t.Fatalf("pattern %q: expected no children, got %v", pat, n.Children)
		}
	}
}

func TestBuildGlobAndLiteralShareOneGlobNode(t *testing.T) {
	n := Build([]string{"d.{1,2}", "asym"})
	if n.Kind != Glob {
		t.Fatalf("root kind = %v, want Glob", n.Kind)
	}
	if len(n.Children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(n.Children))
	}
}

func TestSortedKeysAreLexicographic(t *testing.T) {
	n := Build([]string{"b", "a", "c"})
	got := n.SortedKeys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedKeys() = %v, want %v", got, want)
		}
	}
}
