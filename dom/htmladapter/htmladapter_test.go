package htmladapter

import (
	"strings"
	"testing"

	"github.com/chrisweb/autolink/dom"
)

func TestParseFragmentProperties(t *testing.T) {
	nodes, err := ParseFragment(`<h2 id="x" class="a b" tabindex="2" aria-hidden="true">Hello</h2>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected one node, have %d", len(nodes))
	}
	h2 := nodes[0].(*dom.Element)
	if h2.Tag != "h2" {
		t.Errorf("expected tag h2, have %q", h2.Tag)
	}
	if h2.ID() != "x" {
		t.Errorf("expected id 'x', have %q", h2.ID())
	}
	classes, ok := h2.Properties["className"].([]string)
	if !ok || len(classes) != 2 || classes[0] != "a" {
		t.Errorf("expected className [a b], have %v", h2.Properties["className"])
	}
	if h2.Properties["tabIndex"] != 2 {
		t.Errorf("expected tabIndex 2, have %v", h2.Properties["tabIndex"])
	}
	if h2.Properties["ariaHidden"] != true {
		t.Errorf("expected ariaHidden true, have %v", h2.Properties["ariaHidden"])
	}
	ch, _ := h2.Child(0)
	if txt, ok := ch.(*dom.Text); !ok || txt.Value != "Hello" {
		t.Errorf("expected text child 'Hello', have %v", ch)
	}
}

func TestRenderString(t *testing.T) {
	el := dom.NewElement("a",
		dom.Properties{
			"href":       "#intro",
			"ariaHidden": true,
			"tabIndex":   -1,
			"className":  []string{"icon", "icon-link"},
		},
		dom.NewText("Intro"),
	)
	want := `<a aria-hidden="true" class="icon icon-link" href="#intro" tabindex="-1">Intro</a>`
	got, err := RenderString(el)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("expected %s, have %s", want, got)
	}
}

func TestRenderOmitsFalseAndNil(t *testing.T) {
	el := dom.NewElement("a", dom.Properties{
		"href":       "#x",
		"ariaHidden": false,
		"download":   nil,
	})
	got, err := RenderString(el)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<a href="#x"></a>` {
		t.Errorf("expected false/nil properties to be omitted, have %s", got)
	}
}

func TestRenderBooleanAttribute(t *testing.T) {
	el := dom.NewElement("section", dom.Properties{"hidden": true})
	got, err := RenderString(el)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<section hidden=""></section>` {
		t.Errorf("expected bare boolean attribute, have %s", got)
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	in := `<h2 id="intro">Intro <em>text</em></h2><p>body</p>`
	nodes, err := ParseFragment(in)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for _, n := range nodes {
		if err := Render(&sb, n); err != nil {
			t.Fatal(err)
		}
	}
	if sb.String() != in {
		t.Errorf("round trip altered the fragment:\n%s\n->\n%s", in, sb.String())
	}
}

func TestParseDocument(t *testing.T) {
	root, err := Parse(strings.NewReader(`<!doctype html><html><body><h1 id="t">T</h1></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	if root.Tag != "html" {
		t.Fatalf("expected <html> root, have <%s>", root.Tag)
	}
	var found bool
	dom.Walk(root, func(n dom.Node, _ int, _ *dom.Element) (dom.WalkControl, error) {
		if el, ok := n.(*dom.Element); ok && el.Tag == "h1" && el.ID() == "t" {
			found = true
		}
		return dom.WalkControl{}, nil
	})
	if !found {
		t.Error("expected to find the h1 inside the parsed document")
	}
}

func TestCamelKebabNames(t *testing.T) {
	cases := []struct{ prop, attr string }{
		{"ariaHidden", "aria-hidden"},
		{"ariaLabel", "aria-label"},
		{"dataFoo", "data-foo"},
	}
	for _, c := range cases {
		if got := kebabCase(c.prop); got != c.attr {
			t.Errorf("kebabCase(%q): expected %q, have %q", c.prop, c.attr, got)
		}
		if got := camelCase(c.attr); got != c.prop {
			t.Errorf("camelCase(%q): expected %q, have %q", c.attr, c.prop, got)
		}
	}
	if got := kebabCase("tabIndex"); got != "tabindex" {
		t.Errorf("kebabCase folds mid-word capitals, have %q", got)
	}
	if got := camelCase("tabindex"); got != "tabindex" {
		t.Errorf("camelCase leaves single words alone, have %q", got)
	}
}
