package eval

import (
	"fmt"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/token"
)

// Assignment binds variables to truth values.
type Assignment map[token.Variable]bool

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	res := make(Assignment, len(a))
	for v, b := range a {
		res[v] = b
	}
	return res
}

// Eval evaluates the formula rooted at y under asg.  A variable
// without a binding yields an [*EvalErr]; both operands of a
// connective are always evaluated, so the error does not depend on
// the values bound elsewhere.
func Eval(y *ast.Node, asg Assignment) (bool, error) {
	switch y.Op {
	case ast.OpVar:
		v, ok := asg[y.Var]
		if !ok {
			return false, &EvalErr{Var: y.Var}
		}
		return v, nil
	case ast.OpConst:
		return y.Value, nil
	case ast.OpNot:
		v, err := Eval(y.Left, asg)
		if err != nil {
			return false, err
		}
		return !v, nil
	}
	l, err := Eval(y.Left, asg)
	if err != nil {
		return false, err
	}
	r, err := Eval(y.Right, asg)
	if err != nil {
		return false, err
	}
	switch y.Op {
	case ast.OpAnd:
		return l && r, nil
	case ast.OpOr:
		return l || r, nil
	case ast.OpXor:
		return l != r, nil
	case ast.OpImplies:
		return !l || r, nil
	case ast.OpEquiv:
		return l == r, nil
	case ast.OpNand:
		return !(l && r), nil
	case ast.OpNor:
		return !(l || r), nil
	default:
		return false, fmt.Errorf("unknown operator %s", y.Op)
	}
}
