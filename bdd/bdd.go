// Package bdd compiles formulas to binary decision diagrams for
// model counting.
//
// Counting through a diagram costs one pass over its nodes, so the
// number of satisfying assignments of a wide formula is available
// without generating its truth table.
package bdd

import (
	"fmt"
	"math/big"

	"github.com/dalzilio/rudd"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/token"
)

// Func is a formula compiled against a fixed variable order.
type Func struct {
	b    *rudd.BDD
	node rudd.Node
	vars []token.Variable
}

// Compile builds the diagram of y over vars, which fixes both the
// variable order and the space assignments are counted over.  Extra
// variables in vars are legal and double the count each; a variable
// y references beyond vars is an [*eval.EvalErr].
//
// A formula with no variables cannot be compiled this way; callers
// handle the constant case with [eval.Eval] directly.
func Compile(vars []token.Variable, y *ast.Node) (*Func, error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("no variables to order the diagram by")
	}
	b, err := rudd.New(len(vars), rudd.Nodesize(10000), rudd.Cachesize(3000))
	if err != nil {
		return nil, err
	}
	idx := make(map[token.Variable]int, len(vars))
	for i, v := range vars {
		idx[v] = i
	}
	node, err := build(b, idx, y)
	if err != nil {
		return nil, err
	}
	return &Func{
		b:    b,
		node: node,
		vars: append([]token.Variable(nil), vars...),
	}, nil
}

func build(b *rudd.BDD, idx map[token.Variable]int, y *ast.Node) (rudd.Node, error) {
	switch y.Op {
	case ast.OpVar:
		i, ok := idx[y.Var]
		if !ok {
			return nil, &eval.EvalErr{Var: y.Var}
		}
		return b.Ithvar(i), nil
	case ast.OpConst:
		if y.Value {
			return b.True(), nil
		}
		return b.False(), nil
	case ast.OpNot:
		x, err := build(b, idx, y.Left)
		if err != nil {
			return nil, err
		}
		return b.Not(x), nil
	}
	l, err := build(b, idx, y.Left)
	if err != nil {
		return nil, err
	}
	r, err := build(b, idx, y.Right)
	if err != nil {
		return nil, err
	}
	switch y.Op {
	case ast.OpAnd:
		return b.And(l, r), nil
	case ast.OpOr:
		return b.Or(l, r), nil
	case ast.OpXor:
		return b.Apply(l, r, rudd.OPxor), nil
	case ast.OpImplies:
		return b.Imp(l, r), nil
	case ast.OpEquiv:
		return b.Equiv(l, r), nil
	case ast.OpNand:
		return b.Apply(l, r, rudd.OPnand), nil
	case ast.OpNor:
		return b.Apply(l, r, rudd.OPnor), nil
	default:
		return nil, fmt.Errorf("unknown operator %s", y.Op)
	}
}

// Vars returns the diagram's variable order.
func (f *Func) Vars() []token.Variable {
	return append([]token.Variable(nil), f.vars...)
}

// Count returns the number of assignments of the diagram's variables
// that satisfy the formula.
func (f *Func) Count() *big.Int {
	return f.b.Satcount(f.node)
}

// space returns 2 to the number of variables.
func (f *Func) space() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(len(f.vars)))
}

// Tautology reports whether every assignment satisfies the formula.
func (f *Func) Tautology() bool {
	return f.Count().Cmp(f.space()) == 0
}

// Contradiction reports whether no assignment satisfies the formula.
func (f *Func) Contradiction() bool {
	return f.Count().Sign() == 0
}
