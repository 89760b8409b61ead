package autolink

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/chrisweb/autolink/dom"
)

// Config collects the user-facing settings of a transform. The zero value
// is a working configuration: prepend an icon-marker link into every
// heading that has an id.
type Config struct {
	// Behavior selects the placement strategy; default Prepend.
	Behavior Behavior
	// Content is the template for the link's children. Default is a
	// childless <span class="icon icon-link"> marker.
	Content ContentTemplate
	// Group is a wrapper-element template, honored by Before and After
	// only: when it materializes to exactly one element, heading and
	// link are merged into that element instead of being siblings.
	Group ContentTemplate
	// Properties is the template for extra link properties. Defaults
	// depend on Behavior. The computed href always wins over a
	// template-supplied one.
	Properties PropertiesTemplate
	// Test is an optional additional heading filter; see
	// dom.CompileMatch for the accepted shapes.
	Test any
	// TestExpr is an optional expression filter, e.g. "rank <= 3",
	// evaluated over {tag, id, rank, index, parent}. When both Test and
	// TestExpr are set, a heading must pass both.
	TestExpr string
}

// Transform decorates all qualifying headings of the tree below root,
// mutating the tree in place. A returned error aborts the pass; headings
// processed before the error keep their links.
type Transform func(root dom.Node) error

// settings is a resolved, immutable configuration.
type settings struct {
	behavior   Behavior
	content    ContentTemplate
	group      ContentTemplate
	properties PropertiesTemplate
	test       dom.Predicate
}

// New resolves a configuration and returns the transform closed over it.
// Configuration problems (unknown behavior, uncompilable test) surface
// here, not during the transform.
func New(cfg Config) (Transform, error) {
	s := &settings{
		behavior:   cfg.Behavior,
		content:    cfg.Content,
		group:      cfg.Group,
		properties: cfg.Properties,
	}
	if s.behavior == "" {
		s.behavior = Prepend
	}
	if !s.behavior.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, cfg.Behavior)
	}
	if s.content.isZero() {
		s.content = Content(dom.NewElement("span", dom.Properties{
			"className": []string{"icon", "icon-link"},
		}))
	}
	if s.properties.isZero() {
		s.properties = Props(s.behavior.defaultProperties())
	}
	test, err := dom.CompileMatch(cfg.Test)
	if err != nil {
		return nil, err
	}
	s.test = test
	if cfg.TestExpr != "" {
		exprTest, err := compileExprTest(cfg.TestExpr)
		if err != nil {
			return nil, err
		}
		s.test = allOf(test, exprTest)
	}
	return s.transform, nil
}

func allOf(preds ...dom.Predicate) dom.Predicate {
	return func(e *dom.Element, index int, parent *dom.Element) bool {
		for _, p := range preds {
			if !p(e, index, parent) {
				return false
			}
		}
		return true
	}
}

// transform walks the tree in document order and dispatches every
// qualifying heading to the placement strategy. It never constructs nodes
// itself.
func (s *settings) transform(root dom.Node) error {
	return dom.Walk(root, func(n dom.Node, index int, parent *dom.Element) (dom.WalkControl, error) {
		el, ok := n.(*dom.Element)
		if !ok {
			return dom.WalkControl{}, nil
		}
		if _, isHeading := dom.HeadingRank(el); !isHeading {
			return dom.WalkControl{}, nil
		}
		if el.ID() == "" {
			return dom.WalkControl{}, nil
		}
		if !s.test(el, index, parent) {
			return dom.WalkControl{}, nil
		}
		return s.place(el, index, parent)
	})
}

// --- Placement strategies --------------------------------------------------

// place builds the link for one heading and splices it into the tree.
// The returned control keeps the walker from re-descending into content
// generated for this heading.
func (s *settings) place(heading *dom.Element, index int, parent *dom.Element) (dom.WalkControl, error) {
	tracer().Debugf("linking heading <%s id=%q>", heading.Tag, heading.ID())
	switch s.behavior {
	case Prepend:
		link, err := s.link(heading)
		if err != nil {
			return dom.WalkControl{}, err
		}
		heading.InsertChildAt(0, link)
		return dom.SkipChildren(), nil

	case Append:
		link, err := s.link(heading)
		if err != nil {
			return dom.WalkControl{}, err
		}
		heading.AppendChild(link)
		return dom.SkipChildren(), nil

	case Wrap, Substitute:
		link, err := s.wrappingLink(heading)
		if err != nil {
			return dom.WalkControl{}, err
		}
		heading.SetChildren(link)
		return dom.SkipChildren(), nil

	case Before, After:
		return s.placeSibling(heading, index, parent)
	}
	// unreachable: New validates the behavior
	return dom.WalkControl{}, fmt.Errorf("%w: %q", ErrUnknownBehavior, s.behavior)
}

// placeSibling implements Before and After, with optional grouping. A
// heading without a parent cannot gain a sibling and is skipped silently.
func (s *settings) placeSibling(heading *dom.Element, index int, parent *dom.Element) (dom.WalkControl, error) {
	if parent == nil || index < 0 {
		return dom.SkipChildren(), nil
	}
	link, err := s.link(heading)
	if err != nil {
		return dom.WalkControl{}, err
	}
	var nodes []dom.Node
	if s.behavior == Before {
		nodes = []dom.Node{link, heading}
	} else {
		nodes = []dom.Node{heading, link}
	}
	if group, err := s.grouping(heading); err != nil {
		return dom.WalkControl{}, err
	} else if group != nil {
		group.SetChildren(nodes...)
		nodes = []dom.Node{group}
	}
	parent.Splice(index, 1, nodes...)
	return dom.SkipTo(index + len(nodes)), nil
}

// grouping materializes the group template. Grouping applies only when
// the template yields exactly one element node; any other shape means
// "insert ungrouped".
func (s *settings) grouping(heading *dom.Element) (*dom.Element, error) {
	if s.group.isZero() {
		return nil, nil
	}
	nodes, err := s.group.materialize(heading)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, nil
	}
	group, ok := nodes[0].(*dom.Element)
	if !ok {
		return nil, nil
	}
	return group, nil
}

// link builds the anchor element for a heading, with materialized content
// as its children.
func (s *settings) link(heading *dom.Element) (*dom.Element, error) {
	content, err := s.content.materialize(heading)
	if err != nil {
		return nil, err
	}
	props, err := s.linkProperties(heading)
	if err != nil {
		return nil, err
	}
	return dom.NewElement("a", props, content...), nil
}

// wrappingLink builds the anchor for Wrap and Substitute: it takes over
// the heading's current children instead of materialized content.
func (s *settings) wrappingLink(heading *dom.Element) (*dom.Element, error) {
	props, err := s.linkProperties(heading)
	if err != nil {
		return nil, err
	}
	return dom.NewElement("a", props, heading.Children()...), nil
}

// linkProperties unions the materialized extra properties with the
// self-reference. The computed href is the final authority; it is derived
// from the heading's id at processing time, never cached.
func (s *settings) linkProperties(heading *dom.Element) (dom.Properties, error) {
	props := dom.Properties{"href": "#" + heading.ID()}
	extra, err := s.properties.materialize(heading)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return props, nil
	}
	if err := mergo.Merge(&props, extra); err != nil {
		return nil, fmt.Errorf("cannot merge link properties: %w", err)
	}
	return props, nil
}
