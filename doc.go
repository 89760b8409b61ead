/*
Package autolink decorates headings in an HTML-like document tree with
links pointing back to the heading itself, so that readers can link
directly to a section.

Overview

The package performs one transformation pass over a tree: it selects
heading elements carrying a non-empty id property, builds an anchor
element per heading and splices it into the tree according to a
configurable placement behavior. Content and properties of the generated
anchors come from templates — static values copied per heading, or
generator functions invoked per heading.

A configured transform is created once and may be applied to any number
of trees:

    transform, err := autolink.New(autolink.Config{Behavior: autolink.Wrap})
    if err != nil { … }
    err = transform(root)

The transform mutates the given tree in place. Distinct trees may be
transformed concurrently; a single tree must not.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the autolink authors

*/
package autolink

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'autolink'.
func tracer() tracing.Trace {
	return tracing.Select("autolink")
}
