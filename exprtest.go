package autolink

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/chrisweb/autolink/dom"
)

// exprEnv is the evaluation environment of a TestExpr filter, one
// instance per visited heading.
type exprEnv struct {
	Tag    string `expr:"tag"`
	ID     string `expr:"id"`
	Rank   int    `expr:"rank"`
	Index  int    `expr:"index"`
	Parent string `expr:"parent"`
}

// compileExprTest compiles a boolean filter expression once, at
// configuration time. The expression sees the heading's tag, id and rank,
// its index among its siblings, and the parent's tag name ("" for a
// parentless heading). Example: "rank >= 2 && parent != 'blockquote'".
func compileExprTest(src string) (dom.Predicate, error) {
	program, err := expr.Compile(src, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("cannot compile test expression: %w", err)
	}
	return func(e *dom.Element, index int, parent *dom.Element) bool {
		return runExprTest(program, e, index, parent)
	}, nil
}

func runExprTest(program *vm.Program, e *dom.Element, index int, parent *dom.Element) bool {
	rank, _ := dom.HeadingRank(e)
	env := exprEnv{
		Tag:   e.Tag,
		ID:    e.ID(),
		Rank:  rank,
		Index: index,
	}
	if parent != nil {
		env.Parent = parent.Tag
	}
	out, err := expr.Run(program, env)
	if err != nil {
		tracer().Errorf("test expression failed: %v", err)
		return false
	}
	accept, _ := out.(bool)
	return accept
}
