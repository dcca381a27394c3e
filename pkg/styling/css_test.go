package styling

import (
	"strings"
	"testing"
)

func TestClassScopesDeclarations(t *testing.T) {
	s := newTestSheet()

	name, err := ClassInto(s, "color: red; padding: 1rem;")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(name, "sc-") {
		t.Errorf("class name should carry the sc- prefix, got %s", name)
	}

	css := s.CSS()
	if !strings.Contains(css, "."+name+" {color: red; padding: 1rem;}") {
		t.Errorf("css missing scoped rule for %s: %q", name, css)
	}
}

func TestClassDedup(t *testing.T) {
	s := newTestSheet()

	a, err := ClassInto(s, "color: red")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ClassInto(s, "color: red")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("identical declarations must share a class: %s vs %s", a, b)
	}
	if n := strings.Count(s.CSS(), "color: red"); n != 1 {
		t.Errorf("expected one injected rule, found %d", n)
	}

	c, err := ClassInto(s, "color: blue")
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("different declarations must not share a class")
	}
}

func TestInjectGlobalOnce(t *testing.T) {
	s := newTestSheet()

	if err := InjectGlobalInto(s, "body { margin: 0 }"); err != nil {
		t.Fatal(err)
	}
	if err := InjectGlobalInto(s, "body { margin: 0 }"); err != nil {
		t.Fatal(err)
	}

	if n := strings.Count(s.CSS(), "body { margin: 0 }"); n != 1 {
		t.Errorf("expected one injection, found %d", n)
	}
	if !strings.Contains(s.CSS(), "sc-component-id: sc-global-") {
		t.Errorf("global rules must live under a sc-global component: %q", s.CSS())
	}
}
