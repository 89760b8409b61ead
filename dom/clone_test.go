package dom

import (
	"errors"
	"testing"

	"github.com/chrisweb/autolink/clone"
)

func TestCloneNodeIsDisjoint(t *testing.T) {
	orig := NewElement("span",
		Properties{"className": []string{"icon", "icon-link"}},
		NewText("hi"),
	)
	cpNode, err := CloneNode(orig)
	if err != nil {
		t.Fatal(err)
	}
	cp := cpNode.(*Element)
	cp.Properties["className"].([]string)[0] = "mutated"
	cp.SetProperty("id", "other")
	ch, _ := cp.Child(0)
	ch.(*Text).Value = "changed"

	if orig.Properties["className"].([]string)[0] != "icon" {
		t.Error("clone shares the className slice with the original")
	}
	if _, ok := orig.Properties["id"]; ok {
		t.Error("clone shares the property map with the original")
	}
	origCh, _ := orig.Child(0)
	if origCh.(*Text).Value != "hi" {
		t.Error("clone shares child nodes with the original")
	}
}

func TestCloneNodeRejectsNonData(t *testing.T) {
	bad := NewElement("span", Properties{"onClick": func() {}})
	_, err := CloneNode(bad)
	if !errors.Is(err, clone.ErrNotPlainData) {
		t.Errorf("expected ErrNotPlainData for a function property, have %v", err)
	}
}
