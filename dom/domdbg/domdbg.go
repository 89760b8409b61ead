/*
Package domdbg implements helpers to debug a dom tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the autolink authors

*/
package domdbg

import (
	"fmt"
	"sort"
	"strings"

	tp "github.com/xlab/treeprint"

	"github.com/chrisweb/autolink/dom"
)

// Print returns an indented text diagram of a dom tree, one line per
// node. Intended for t.Logf output in tests.
func Print(root dom.Node) string {
	tree := tp.New()
	describe(root, tree)
	return tree.String()
}

func describe(n dom.Node, branch tp.Tree) {
	switch n := n.(type) {
	case *dom.Text:
		branch.AddNode(fmt.Sprintf("%q", n.Value))
	case *dom.Comment:
		branch.AddNode(fmt.Sprintf("<!--%s-->", n.Value))
	case *dom.Element:
		sub := branch.AddBranch(label(n))
		for _, child := range n.Children() {
			describe(child, sub)
		}
	default:
		branch.AddNode(fmt.Sprintf("?%T", n))
	}
}

func label(e *dom.Element) string {
	if len(e.Properties) == 0 {
		return "<" + e.Tag + ">"
	}
	names := make([]string, 0, len(e.Properties))
	for name := range e.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	props := make([]string, 0, len(names))
	for _, name := range names {
		props = append(props, fmt.Sprintf("%s=%v", name, e.Properties[name]))
	}
	return fmt.Sprintf("<%s %s>", e.Tag, strings.Join(props, " "))
}
