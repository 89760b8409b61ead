package dom

// WalkStatus tells the walker how to proceed after visiting a node.
type WalkStatus int

const (
	// WalkContinue descends into the node's children.
	WalkContinue WalkStatus = iota
	// WalkSkipChildren does not descend, but continues with siblings.
	WalkSkipChildren
	// WalkStop terminates the traversal immediately.
	WalkStop
)

// WalkControl is returned by a Visitor to steer the traversal. The zero
// value continues in natural document order.
//
// Resume is honored for positive values only: the walker then resumes the
// enclosing sibling loop at that child index. Visitors that splice new
// siblings into the parent use this to jump past the nodes they inserted,
// so that generated content is never re-visited as if it were part of the
// original document.
type WalkControl struct {
	Status WalkStatus
	Resume int
}

// SkipChildren prunes the subtree of the visited node.
func SkipChildren() WalkControl {
	return WalkControl{Status: WalkSkipChildren}
}

// SkipTo prunes the subtree of the visited node and resumes the parent's
// child loop at index i.
func SkipTo(i int) WalkControl {
	return WalkControl{Status: WalkSkipChildren, Resume: i}
}

// Visitor is called for every node of a tree in document order. index is
// the node's position among its siblings, or -1 for the root; parent is
// nil for the root. A visitor may mutate the tree at and below the visited
// node, and may splice siblings when it returns a suitable Resume index.
type Visitor func(n Node, index int, parent *Element) (WalkControl, error)

// Walk traverses a tree depth-first in pre-order, calling visit for every
// node. The traversal honors the returned WalkControl; the first error
// aborts the walk and is returned to the caller.
func Walk(root Node, visit Visitor) error {
	if root == nil {
		return nil
	}
	tracer().Debugf("new tree walk, root = %v", root)
	_, _, err := walk(root, -1, nil, visit)
	return err
}

// walk visits n, then n's children. It reports the index at which the
// parent's child loop shall continue and whether the traversal is done.
func walk(n Node, index int, parent *Element, visit Visitor) (next int, done bool, err error) {
	ctl, err := visit(n, index, parent)
	if err != nil {
		return 0, true, err
	}
	next = index + 1
	if ctl.Resume > 0 {
		next = ctl.Resume
	}
	if ctl.Status == WalkStop {
		return next, true, nil
	}
	if ctl.Status == WalkSkipChildren {
		return next, false, nil
	}
	el, ok := n.(*Element)
	if !ok {
		return next, false, nil
	}
	for i := 0; i < el.ChildCount(); {
		child, _ := el.Child(i)
		nxt, done, err := walk(child, i, el, visit)
		if err != nil || done {
			return next, true, err
		}
		if nxt > i {
			i = nxt
		} else {
			i++ // guard against a stalling resume index
		}
	}
	return next, false, nil
}
