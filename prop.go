// Package prop provides a compiled-formula façade over the
// propositional-logic subpackages.
//
// The root package is a façade over the subpackages: [Compile] turns
// input text into a [Formula], and [Analyze] derives the truth table,
// canonical forms, and Karnaugh map in one call.  Applications that
// need finer control use the subpackages directly (parse, eval,
// table, canon, kmap, sat, bdd).
package prop

import (
	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

// Formula is a parsed propositional formula.  A Formula is immutable
// once compiled and safe for concurrent use.
type Formula struct {
	text string
	node *ast.Node
	vars []token.Variable
}

// Compile parses text and returns the resulting formula.  Invalid
// text yields a nil Formula and a [parse.ParseErr].
func Compile(text string) (*Formula, error) {
	y, err := parse.Parse([]byte(text))
	if err != nil {
		return nil, err
	}
	return &Formula{text: text, node: y, vars: y.Vars()}, nil
}

// Text returns the input text the formula was compiled from.
func (f *Formula) Text() string {
	return f.text
}

// String returns the canonical rendering of the formula, which may
// differ from [Formula.Text] in case, spacing, and parenthesization.
func (f *Formula) String() string {
	return f.node.String()
}

// Vars returns the formula's variables in alphabetical order.  The
// caller owns the result.
func (f *Formula) Vars() []token.Variable {
	vs := make([]token.Variable, len(f.vars))
	copy(vs, f.vars)
	return vs
}

// AST returns a copy of the formula's syntax tree.  The caller owns
// the result and may modify it freely.
func (f *Formula) AST() *ast.Node {
	return f.node.Clone()
}

// Eval evaluates the formula under asg.  Every variable of the
// formula must be bound or Eval returns an [eval.EvalErr].
func (f *Formula) Eval(asg eval.Assignment) (bool, error) {
	return eval.Eval(f.node, asg)
}

// Table generates the formula's truth table over its own variable
// set.
func (f *Formula) Table() (*table.Table, error) {
	return table.Generate(f.vars, f.node)
}
