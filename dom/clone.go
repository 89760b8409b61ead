package dom

import (
	"fmt"

	"github.com/chrisweb/autolink/clone"
)

// CloneNode returns a structural copy of a node: a new node owning fresh
// property maps, fresh child slices and recursively cloned children. The
// copy shares no mutable state with the original.
//
// Property values must be plain data; a non-clonable value (say, a
// function smuggled into a template's property map) aborts the clone with
// an error wrapping clone.ErrNotPlainData.
func CloneNode(n Node) (Node, error) {
	switch n := n.(type) {
	case nil:
		return nil, nil
	case *Text:
		return &Text{Value: n.Value}, nil
	case *Comment:
		return &Comment{Value: n.Value}, nil
	case *Element:
		props, err := clone.Map(n.Properties)
		if err != nil {
			return nil, fmt.Errorf("element <%s>: %w", n.Tag, err)
		}
		cp := &Element{Tag: n.Tag}
		if props != nil {
			cp.Properties = Properties(props)
		}
		for i, child := range n.children {
			cc, err := CloneNode(child)
			if err != nil {
				return nil, fmt.Errorf("element <%s>, child %d: %w", n.Tag, i, err)
			}
			cp.children = append(cp.children, cc)
		}
		return cp, nil
	default:
		return nil, fmt.Errorf("clone: unknown node type %T", n)
	}
}

// CloneNodes clones a slice of nodes into a fresh slice.
func CloneNodes(nodes []Node) ([]Node, error) {
	if nodes == nil {
		return nil, nil
	}
	cp := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		c, err := CloneNode(n)
		if err != nil {
			return nil, err
		}
		cp = append(cp, c)
	}
	return cp, nil
}
