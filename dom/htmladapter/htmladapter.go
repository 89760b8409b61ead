/*
Package htmladapter converts between golang.org/x/net/html parse trees and
dom trees.

Property names follow the hast convention (camelCase, "className",
"tabIndex", …) on the dom side and plain attribute names ("class",
"tabindex", …) on the HTML side; the adapter translates in both
directions. Rendering emits attributes in sorted order so that output is
deterministic.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the autolink authors

*/
package htmladapter

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/chrisweb/autolink/dom"
)

// Parse reads a complete HTML document and converts it into a dom tree.
// The returned element is the document's <html> element.
func Parse(r io.Reader) (*dom.Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmladapter: cannot parse document: %w", err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			el, _ := FromHTML(c).(*dom.Element)
			return el, nil
		}
	}
	return nil, fmt.Errorf("htmladapter: document without root element")
}

// ParseFragment reads an HTML fragment, as it would occur inside a <div>,
// and converts it into a list of dom nodes.
func ParseFragment(fragment string) ([]dom.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, fmt.Errorf("htmladapter: cannot parse fragment: %w", err)
	}
	var nodes []dom.Node
	for _, n := range parsed {
		if converted := FromHTML(n); converted != nil {
			nodes = append(nodes, converted)
		}
	}
	return nodes, nil
}

// FromHTML converts an HTML node and its subtree into a dom node.
// Node types without a dom counterpart (doctype, document) yield nil.
func FromHTML(n *html.Node) dom.Node {
	switch n.Type {
	case html.TextNode:
		return dom.NewText(n.Data)
	case html.CommentNode:
		return &dom.Comment{Value: n.Data}
	case html.ElementNode:
		el := dom.NewElement(n.Data, nil)
		for _, attr := range n.Attr {
			name, value := propertyFromAttribute(attr.Key, attr.Val)
			el.SetProperty(name, value)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := FromHTML(c); child != nil {
				el.AppendChild(child)
			}
		}
		return el
	}
	return nil
}

// ToHTML converts a dom node and its subtree into an HTML node.
func ToHTML(n dom.Node) *html.Node {
	switch n := n.(type) {
	case *dom.Text:
		return &html.Node{Type: html.TextNode, Data: n.Value}
	case *dom.Comment:
		return &html.Node{Type: html.CommentNode, Data: n.Value}
	case *dom.Element:
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
		}
		for _, name := range sortedPropertyNames(n.Properties) {
			key, val, ok := attributeFromProperty(name, n.Properties[name])
			if !ok {
				continue
			}
			h.Attr = append(h.Attr, html.Attribute{Key: key, Val: val})
		}
		for _, child := range n.Children() {
			if hc := ToHTML(child); hc != nil {
				h.AppendChild(hc)
			}
		}
		return h
	}
	return nil
}

// Render writes a dom node as HTML.
func Render(w io.Writer, n dom.Node) error {
	h := ToHTML(n)
	if h == nil {
		return fmt.Errorf("htmladapter: node %T cannot be rendered", n)
	}
	return html.Render(w, h)
}

// RenderString renders a dom node into an HTML string.
func RenderString(n dom.Node) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// --- Property name and value translation -----------------------------------

// Attribute names that do not follow the mechanical camelCase/kebab-case
// correspondence.
var irregularAttributes = map[string]string{
	"className": "class",
	"htmlFor":   "for",
	"httpEquiv": "http-equiv",
	"tabIndex":  "tabindex",
}

var irregularProperties = func() map[string]string {
	m := make(map[string]string, len(irregularAttributes))
	for prop, attr := range irregularAttributes {
		m[attr] = prop
	}
	return m
}()

// Attributes that are boolean in HTML and render without a value.
var booleanAttributes = map[string]bool{
	"checked":  true,
	"disabled": true,
	"hidden":   true,
	"open":     true,
	"required": true,
	"selected": true,
}

func sortedPropertyNames(props dom.Properties) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// attributeFromProperty translates one hast-style property into an HTML
// attribute. The third return value is false when the attribute shall be
// omitted entirely (nil values, boolean false).
func attributeFromProperty(name string, value any) (string, string, bool) {
	key, known := irregularAttributes[name]
	if !known {
		key = kebabCase(name)
	}
	switch v := value.(type) {
	case nil:
		return "", "", false
	case bool:
		if !v {
			return "", "", false
		}
		if booleanAttributes[key] {
			return key, "", true
		}
		return key, "true", true
	case string:
		return key, v, true
	case int:
		return key, strconv.Itoa(v), true
	case float64:
		return key, strconv.FormatFloat(v, 'g', -1, 64), true
	case []string:
		return key, strings.Join(v, " "), true
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return key, strings.Join(parts, " "), true
	default:
		return key, fmt.Sprint(v), true
	}
}

// propertyFromAttribute translates one HTML attribute into a hast-style
// property name and value.
func propertyFromAttribute(key, val string) (string, any) {
	name, known := irregularProperties[key]
	if !known {
		name = camelCase(key)
	}
	switch name {
	case "className":
		return name, strings.Fields(val)
	case "tabIndex":
		if i, err := strconv.Atoi(val); err == nil {
			return name, i
		}
	}
	if booleanAttributes[key] {
		return name, true
	}
	if strings.HasPrefix(key, "aria-") {
		switch val {
		case "true":
			return name, true
		case "false":
			return name, false
		}
	}
	return name, val
}

// kebabCase turns "ariaHidden" into "aria-hidden" and "tabIndex" into
// "tabindex": word breaks survive only after the "aria" and "data"
// prefixes, everything else folds to lowercase.
func kebabCase(name string) string {
	lowered := make([]rune, 0, len(name)+2)
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if prefixed(name[:i]) {
				lowered = append(lowered, '-')
			}
			r += 'a' - 'A'
		}
		lowered = append(lowered, r)
	}
	return string(lowered)
}

// camelCase turns "aria-hidden" into "ariaHidden".
func camelCase(key string) string {
	parts := strings.Split(key, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func prefixed(head string) bool {
	return head == "aria" || head == "data"
}
