package dom

import (
	"fmt"
	"reflect"
	"strings"
)

// Predicate decides whether an element qualifies for some operation,
// given the element itself, its index among its siblings (-1 for a root)
// and its parent (nil for a root).
type Predicate func(e *Element, index int, parent *Element) bool

// ErrBadTest is returned by CompileMatch for unsupported test shapes.
var ErrBadTest = fmt.Errorf("cannot compile element test")

// CompileMatch compiles a user-supplied element test into a uniform
// Predicate. Accepted shapes are:
//
//   nil              matches every element
//   string           matches elements with that tag name
//   []string         matches elements with any of the tag names
//   Properties       matches elements whose properties contain all the
//   map[string]any   given entries (values compared structurally)
//   Predicate        used as-is
//   func(e *Element, index int, parent *Element) bool
//
// Anything else fails with ErrBadTest.
func CompileMatch(test any) (Predicate, error) {
	switch test := test.(type) {
	case nil:
		return func(*Element, int, *Element) bool { return true }, nil
	case string:
		tag := strings.ToLower(test)
		return func(e *Element, _ int, _ *Element) bool {
			return strings.ToLower(e.Tag) == tag
		}, nil
	case []string:
		tags := make(map[string]bool, len(test))
		for _, t := range test {
			tags[strings.ToLower(t)] = true
		}
		return func(e *Element, _ int, _ *Element) bool {
			return tags[strings.ToLower(e.Tag)]
		}, nil
	case Properties:
		return matchProperties(test), nil
	case map[string]any:
		return matchProperties(test), nil
	case Predicate:
		return test, nil
	case func(*Element, int, *Element) bool:
		return test, nil
	default:
		return nil, fmt.Errorf("%w: unsupported test of type %T", ErrBadTest, test)
	}
}

func matchProperties(want map[string]any) Predicate {
	return func(e *Element, _ int, _ *Element) bool {
		for k, v := range want {
			have, ok := e.Properties[k]
			if !ok || !reflect.DeepEqual(have, v) {
				return false
			}
		}
		return true
	}
}
