package autolink

import (
	"fmt"

	"github.com/chrisweb/autolink/dom"
)

// Behavior selects how a generated link is placed relative to its heading.
type Behavior string

const (
	// After inserts the link as the heading's next sibling.
	After Behavior = "after"
	// Append inserts the link as the heading's last child.
	Append Behavior = "append"
	// Before inserts the link as the heading's previous sibling.
	Before Behavior = "before"
	// Prepend inserts the link as the heading's first child.
	Prepend Behavior = "prepend"
	// Substitute wraps the heading's children in the link, with the
	// focus-related property defaults of a replaced heading body.
	Substitute Behavior = "substitute"
	// Wrap wraps the heading's children in the link.
	Wrap Behavior = "wrap"
)

// ErrUnknownBehavior is returned by New for behavior values outside the
// six defined ones. Unrecognized behaviors fail configuration instead of
// silently degrading to Prepend.
var ErrUnknownBehavior = fmt.Errorf("unknown placement behavior")

func (b Behavior) valid() bool {
	switch b {
	case After, Append, Before, Prepend, Substitute, Wrap:
		return true
	}
	return false
}

// defaultProperties returns the extra link properties used when the
// configuration supplies none.
func (b Behavior) defaultProperties() dom.Properties {
	switch b {
	case Append, Prepend:
		return dom.Properties{"ariaHidden": true, "tabIndex": -1}
	case Substitute:
		return dom.Properties{"tabIndex": -1}
	}
	return nil
}
