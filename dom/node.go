package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the autolink authors

*/

import (
	"fmt"
	"strings"
)

/*
We manage a tree of mutable nodes. Element nodes carry a tag, a property
map and an ordered slice of children. Every node is exclusively owned by
its parent's child list; a node must never appear twice within a tree.
*/

// Node is the building block of a document tree. Implementations are
// *Element, *Text and *Comment; the interface is sealed to this package.
type Node interface {
	node()
}

// Properties maps hast-style property names (camelCase, e.g. "className",
// "tabIndex", "ariaHidden") to values. Legal values are strings, bools,
// ints, floats, or slices thereof.
type Properties map[string]any

// Element is a tagged node with properties and children.
type Element struct {
	Tag        string
	Properties Properties
	children   []Node
}

// Text is a leaf node holding character data.
type Text struct {
	Value string
}

// Comment is a leaf node holding an HTML comment.
type Comment struct {
	Value string
}

func (e *Element) node() {}
func (t *Text) node()    {}
func (c *Comment) node() {}

// NewElement creates an element node with the given tag, properties and
// children. A nil properties map is allocated lazily on first write.
func NewElement(tag string, props Properties, children ...Node) *Element {
	return &Element{Tag: tag, Properties: props, children: children}
}

// NewText creates a text node.
func NewText(value string) *Text {
	return &Text{Value: value}
}

func (e *Element) String() string {
	return fmt.Sprintf("(Element <%s> #ch=%d)", e.Tag, len(e.children))
}

// --- Child management ------------------------------------------------------

// ChildCount returns the number of children of an element.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// Child returns the child at position n, if it exists.
func (e *Element) Child(n int) (Node, bool) {
	if n < 0 || n >= len(e.children) {
		return nil, false
	}
	return e.children[n], true
}

// Children returns a fresh slice with all children of an element.
// Mutating the returned slice does not alter the element.
func (e *Element) Children() []Node {
	children := make([]Node, len(e.children))
	copy(children, e.children)
	return children
}

// AppendChild inserts a new child node after all existing children.
// It returns the element to allow for chaining.
func (e *Element) AppendChild(ch Node) *Element {
	if ch != nil {
		e.children = append(e.children, ch)
	}
	return e
}

// InsertChildAt inserts a new child node at a given position in relation
// to other children, shifting children at later positions. Positions past
// the end append. It returns the element to allow for chaining.
func (e *Element) InsertChildAt(i int, ch Node) *Element {
	if ch == nil {
		return e
	}
	if i < 0 {
		i = 0
	}
	if i >= len(e.children) {
		e.children = append(e.children, ch)
		return e
	}
	e.children = append(e.children, nil) // make room for one child
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = ch
	return e
}

// SetChildren replaces the element's child list wholesale.
func (e *Element) SetChildren(children ...Node) *Element {
	e.children = children
	return e
}

// Splice removes del children starting at position i and inserts the
// given nodes in their place, shifting later children as needed. Out of
// range positions are clamped.
func (e *Element) Splice(i, del int, nodes ...Node) *Element {
	if i < 0 {
		i = 0
	}
	if i > len(e.children) {
		i = len(e.children)
	}
	if del < 0 {
		del = 0
	}
	if i+del > len(e.children) {
		del = len(e.children) - i
	}
	tail := make([]Node, len(e.children[i+del:]))
	copy(tail, e.children[i+del:])
	e.children = append(e.children[:i], nodes...)
	e.children = append(e.children, tail...)
	return e
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of this element.
func (e *Element) IndexOfChild(ch Node) int {
	for i, child := range e.children {
		if child == ch {
			return i
		}
	}
	return -1
}

// --- Properties ------------------------------------------------------------

// Property returns the value stored under a property name.
func (e *Element) Property(name string) (any, bool) {
	v, ok := e.Properties[name]
	return v, ok
}

// SetProperty stores a property value, allocating the map if necessary.
func (e *Element) SetProperty(name string, value any) {
	if e.Properties == nil {
		e.Properties = make(Properties, 1)
	}
	e.Properties[name] = value
}

// ID returns the element's identifier, or "" if it has none. Only a
// non-empty string property qualifies as an identifier.
func (e *Element) ID() string {
	id, _ := e.Properties["id"].(string)
	return id
}

// --- Heading rank ----------------------------------------------------------

// HeadingRank returns the heading level of an element (1–6), if it is a
// heading. The second return value reports whether the element is one.
func HeadingRank(e *Element) (int, bool) {
	tag := strings.ToLower(e.Tag)
	if len(tag) != 2 || tag[0] != 'h' {
		return 0, false
	}
	if tag[1] < '1' || tag[1] > '6' {
		return 0, false
	}
	return int(tag[1] - '0'), true
}
