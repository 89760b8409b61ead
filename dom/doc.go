/*
Package dom implements a small mutable document object model for HTML-like
trees, together with the utilities a tree transformation needs: a
depth-first walker with subtree pruning, heading-rank detection, element
test compilation and structural node cloning.

Overview

The model is deliberately minimal: element nodes carry a tag, a map of
hast-style properties and an ordered list of children; text and comment
nodes are leaves. There is no parent pointer — traversal supplies the
parent and the sibling index to its callback, which keeps splicing
operations explicit and the ownership rules simple.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the autolink authors

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'autolink.dom'.
func tracer() tracing.Trace {
	return tracing.Select("autolink.dom")
}
