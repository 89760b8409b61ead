package dom

import (
	"testing"
)

func TestElementChildManagement(t *testing.T) {
	p := NewElement("p", nil, NewText("one"), NewText("three"))
	if p.ChildCount() != 2 {
		t.Fatalf("expected 2 children, have %d", p.ChildCount())
	}
	two := NewText("two")
	p.InsertChildAt(1, two)
	if p.ChildCount() != 3 {
		t.Errorf("expected 3 children after insert, have %d", p.ChildCount())
	}
	if got := p.IndexOfChild(two); got != 1 {
		t.Errorf("expected inserted child at index 1, is at %d", got)
	}
	ch, ok := p.Child(2)
	if !ok || ch.(*Text).Value != "three" {
		t.Errorf("expected child 2 to be shifted text 'three', is %v", ch)
	}
}

func TestElementInsertChildAtEnd(t *testing.T) {
	p := NewElement("p", nil)
	p.InsertChildAt(7, NewText("x"))
	if p.ChildCount() != 1 {
		t.Errorf("expected out-of-range insert to append, have %d children", p.ChildCount())
	}
}

func TestElementSplice(t *testing.T) {
	p := NewElement("p", nil, NewText("a"), NewText("b"), NewText("c"))
	p.Splice(1, 1, NewText("x"), NewText("y"))
	if p.ChildCount() != 4 {
		t.Fatalf("expected 4 children after splice, have %d", p.ChildCount())
	}
	want := []string{"a", "x", "y", "c"}
	for i, w := range want {
		ch, _ := p.Child(i)
		if ch.(*Text).Value != w {
			t.Errorf("child %d: expected %q, have %q", i, w, ch.(*Text).Value)
		}
	}
}

func TestElementSpliceClampsRange(t *testing.T) {
	p := NewElement("p", nil, NewText("a"))
	p.Splice(5, 3, NewText("b"))
	if p.ChildCount() != 2 {
		t.Errorf("expected clamped splice to append, have %d children", p.ChildCount())
	}
}

func TestChildrenReturnsCopy(t *testing.T) {
	p := NewElement("p", nil, NewText("a"))
	children := p.Children()
	children[0] = NewText("b")
	ch, _ := p.Child(0)
	if ch.(*Text).Value != "a" {
		t.Error("mutating the Children() slice must not alter the element")
	}
}

func TestHeadingRank(t *testing.T) {
	cases := []struct {
		tag  string
		rank int
	}{
		{"h1", 1}, {"h3", 3}, {"h6", 6}, {"H2", 2},
		{"h7", 0}, {"h0", 0}, {"div", 0}, {"h", 0}, {"hr", 0},
	}
	for _, c := range cases {
		rank, ok := HeadingRank(NewElement(c.tag, nil))
		if c.rank == 0 && ok {
			t.Errorf("<%s> is no heading, but rank %d reported", c.tag, rank)
		}
		if c.rank > 0 && (!ok || rank != c.rank) {
			t.Errorf("<%s>: expected rank %d, have %d (ok=%v)", c.tag, c.rank, rank, ok)
		}
	}
}

func TestElementID(t *testing.T) {
	if id := NewElement("h2", Properties{"id": "intro"}).ID(); id != "intro" {
		t.Errorf("expected id 'intro', have %q", id)
	}
	if id := NewElement("h2", nil).ID(); id != "" {
		t.Errorf("expected empty id, have %q", id)
	}
	if id := NewElement("h2", Properties{"id": 42}).ID(); id != "" {
		t.Errorf("expected non-string id to count as absent, have %q", id)
	}
}
