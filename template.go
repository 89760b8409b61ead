package autolink

import (
	"fmt"

	"github.com/chrisweb/autolink/clone"
	"github.com/chrisweb/autolink/dom"
)

/*
Templates come in two variants: static data, deep-copied on every use, and
generator functions, invoked once per heading. A static template must
never leak a node or map reference into the tree — two headings sharing
one node would alias, and mutating one inserted copy would corrupt the
other. Generators own that responsibility themselves: they must return a
fresh, unaliased value on each call.
*/

// ContentTemplate describes the children of a generated link: either a
// fixed list of nodes or a per-heading generator. The zero value is empty
// and lets the configuration default apply.
type ContentTemplate struct {
	static []dom.Node
	fn     func(heading *dom.Element) []dom.Node
}

// Content builds a static content template from the given nodes.
func Content(nodes ...dom.Node) ContentTemplate {
	return ContentTemplate{static: nodes}
}

// ContentFunc builds a generated content template. fn is invoked with the
// heading being decorated and must not mutate it.
func ContentFunc(fn func(heading *dom.Element) []dom.Node) ContentTemplate {
	return ContentTemplate{fn: fn}
}

func (c ContentTemplate) isZero() bool {
	return c.static == nil && c.fn == nil
}

// materialize produces children ready for ownership by exactly one new
// tree location: generator output directly, static data as a deep copy.
func (c ContentTemplate) materialize(heading *dom.Element) ([]dom.Node, error) {
	if c.fn != nil {
		return c.fn(heading), nil
	}
	nodes, err := dom.CloneNodes(c.static)
	if err != nil {
		return nil, fmt.Errorf("content template: %w", err)
	}
	return nodes, nil
}

// PropertiesTemplate describes the extra properties of a generated link:
// a fixed property map or a per-heading generator. The zero value is
// empty and lets the behavior-dependent default apply.
type PropertiesTemplate struct {
	static dom.Properties
	fn     func(heading *dom.Element) dom.Properties
}

// Props builds a static properties template.
func Props(p dom.Properties) PropertiesTemplate {
	return PropertiesTemplate{static: p}
}

// PropsFunc builds a generated properties template. fn is invoked with
// the heading being decorated and must not mutate it.
func PropsFunc(fn func(heading *dom.Element) dom.Properties) PropertiesTemplate {
	return PropertiesTemplate{fn: fn}
}

func (p PropertiesTemplate) isZero() bool {
	return p.static == nil && p.fn == nil
}

func (p PropertiesTemplate) materialize(heading *dom.Element) (dom.Properties, error) {
	if p.fn != nil {
		return p.fn(heading), nil
	}
	cp, err := clone.Map(p.static)
	if err != nil {
		return nil, fmt.Errorf("properties template: %w", err)
	}
	return dom.Properties(cp), nil
}
