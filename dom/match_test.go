package dom

import (
	"errors"
	"testing"
)

func TestCompileMatchShapes(t *testing.T) {
	h2 := NewElement("h2", Properties{"id": "x", "className": []string{"fancy"}})
	cases := []struct {
		name  string
		test  any
		match bool
	}{
		{"nil matches all", nil, true},
		{"tag name", "h2", true},
		{"tag name miss", "h3", false},
		{"tag name case-insensitive", "H2", true},
		{"tag list", []string{"h1", "h2"}, true},
		{"tag list miss", []string{"h1", "h3"}, false},
		{"properties", Properties{"id": "x"}, true},
		{"properties structural", Properties{"className": []string{"fancy"}}, true},
		{"properties miss", Properties{"id": "y"}, false},
		{"predicate", Predicate(func(e *Element, _ int, _ *Element) bool { return e.Tag == "h2" }), true},
		{"plain func", func(e *Element, _ int, _ *Element) bool { return false }, false},
	}
	for _, c := range cases {
		pred, err := CompileMatch(c.test)
		if err != nil {
			t.Errorf("%s: unexpected compile error %v", c.name, err)
			continue
		}
		if got := pred(h2, 0, nil); got != c.match {
			t.Errorf("%s: expected match=%v, have %v", c.name, c.match, got)
		}
	}
}

func TestCompileMatchRejectsUnknownShape(t *testing.T) {
	_, err := CompileMatch(42)
	if !errors.Is(err, ErrBadTest) {
		t.Errorf("expected ErrBadTest for an int test, have %v", err)
	}
}
