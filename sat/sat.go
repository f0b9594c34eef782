// Package sat answers satisfiability questions about formulas
// without enumerating assignments.
//
// Formulas are lowered to and-inverter circuits and solved by CNF
// translation, so the package stays usable where truth tables blow
// up: classification needs one solver call instead of 1<<n rows.
package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/debug"
	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/token"
)

type builder struct {
	c    *logic.C
	vars map[token.Variable]z.Lit
	err  error
}

func newBuilder() *builder {
	return &builder{
		c:    logic.NewC(),
		vars: map[token.Variable]z.Lit{},
	}
}

// lit lowers y to a literal in the circuit.  On error the zero
// constant is returned and b.err carries the cause.
func (b *builder) lit(y *ast.Node) z.Lit {
	if b.err != nil {
		return b.c.F
	}
	switch y.Op {
	case ast.OpVar:
		return b.varLit(y.Var)
	case ast.OpConst:
		if y.Value {
			return b.c.T
		}
		return b.c.F
	case ast.OpNot:
		return b.lit(y.Left).Not()
	case ast.OpAnd:
		return b.c.And(b.lit(y.Left), b.lit(y.Right))
	case ast.OpOr:
		return b.c.Or(b.lit(y.Left), b.lit(y.Right))
	case ast.OpXor:
		return b.c.Xor(b.lit(y.Left), b.lit(y.Right))
	case ast.OpImplies:
		return b.c.Implies(b.lit(y.Left), b.lit(y.Right))
	case ast.OpEquiv:
		return b.c.Xor(b.lit(y.Left), b.lit(y.Right)).Not()
	case ast.OpNand:
		return b.c.And(b.lit(y.Left), b.lit(y.Right)).Not()
	case ast.OpNor:
		return b.c.Or(b.lit(y.Left), b.lit(y.Right)).Not()
	default:
		b.err = fmt.Errorf("unknown operator %s", y.Op)
		return b.c.F
	}
}

func (b *builder) varLit(v token.Variable) z.Lit {
	if m, ok := b.vars[v]; ok {
		return m
	}
	m := b.c.Lit()
	b.vars[v] = m
	return m
}

// solve asks whether m is satisfiable, returning a witness
// assignment over the builder's variables when it is.
func (b *builder) solve(m z.Lit) (bool, eval.Assignment) {
	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(m)
	if g.Solve() != 1 {
		return false, nil
	}
	model := make(eval.Assignment, len(b.vars))
	for v, lit := range b.vars {
		model[v] = g.Value(lit)
	}
	if debug.Sat() {
		debug.Logf("sat model %v\n", model)
	}
	return true, model
}

// Satisfiable reports whether some assignment makes y true, and
// returns one when so.  The witness binds exactly the variables y
// references.
func Satisfiable(y *ast.Node) (bool, eval.Assignment, error) {
	b := newBuilder()
	m := b.lit(y)
	if b.err != nil {
		return false, nil, b.err
	}
	ok, model := b.solve(m)
	return ok, model, nil
}

// Tautology reports whether y holds under every assignment.
func Tautology(y *ast.Node) (bool, error) {
	b := newBuilder()
	m := b.lit(y)
	if b.err != nil {
		return false, b.err
	}
	ok, _ := b.solve(m.Not())
	return !ok, nil
}

// Contradiction reports whether y holds under no assignment.
func Contradiction(y *ast.Node) (bool, error) {
	b := newBuilder()
	m := b.lit(y)
	if b.err != nil {
		return false, b.err
	}
	ok, _ := b.solve(m)
	return !ok, nil
}

// Equivalent reports whether a and y agree under every assignment of
// their combined variables.  When they differ, the returned
// assignment is one on which they disagree.
func Equivalent(a, y *ast.Node) (bool, eval.Assignment, error) {
	b := newBuilder()
	ma := b.lit(a)
	mb := b.lit(y)
	if b.err != nil {
		return false, nil, b.err
	}
	ok, model := b.solve(b.c.Xor(ma, mb))
	return !ok, model, nil
}
