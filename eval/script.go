package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/debug"
	"github.com/truthlab/go-prop/token"
)

// Script is a formula compiled to a boolean expression program.  A
// Script is read only after Compile and safe for concurrent use.
type Script struct {
	prg  *vm.Program
	vars []token.Variable
}

// Compile lowers y to an expression program.  Repeated evaluation of
// the same formula is cheaper through a Script than through [Eval].
func Compile(y *ast.Node) (*Script, error) {
	src := exprSource(y)
	if debug.Eval() {
		debug.Logf("compile %s to %s\n", y, src)
	}
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return &Script{prg: prg, vars: y.Vars()}, nil
}

// Vars returns the variables the script reads.
func (s *Script) Vars() []token.Variable {
	res := make([]token.Variable, len(s.vars))
	copy(res, s.vars)
	return res
}

// Eval runs the program under asg.  Like [Eval], every variable the
// formula references must be bound.
func (s *Script) Eval(asg Assignment) (bool, error) {
	env := make(map[string]any, len(s.vars))
	for _, v := range s.vars {
		b, ok := asg[v]
		if !ok {
			return false, &EvalErr{Var: v}
		}
		env[v.String()] = b
	}
	res, err := expr.Run(s.prg, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expression yielded %T, not bool", res)
	}
	return b, nil
}

// exprSource renders y in expression syntax.  Operands are always
// parenthesized, so operator precedence never comes into play.
func exprSource(y *ast.Node) string {
	var sb strings.Builder
	writeExpr(&sb, y)
	return sb.String()
}

func writeExpr(sb *strings.Builder, y *ast.Node) {
	switch y.Op {
	case ast.OpVar:
		sb.WriteByte(byte(y.Var))
	case ast.OpConst:
		if y.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case ast.OpNot:
		sb.WriteByte('!')
		writeGroup(sb, y.Left)
	case ast.OpAnd:
		writeBinary(sb, y, "&&")
	case ast.OpOr:
		writeBinary(sb, y, "||")
	case ast.OpXor:
		writeBinary(sb, y, "!=")
	case ast.OpEquiv:
		writeBinary(sb, y, "==")
	case ast.OpImplies:
		sb.WriteByte('!')
		writeGroup(sb, y.Left)
		sb.WriteString(" || ")
		writeGroup(sb, y.Right)
	case ast.OpNand:
		sb.WriteByte('!')
		sb.WriteByte('(')
		writeBinary(sb, y, "&&")
		sb.WriteByte(')')
	case ast.OpNor:
		sb.WriteByte('!')
		sb.WriteByte('(')
		writeBinary(sb, y, "||")
		sb.WriteByte(')')
	}
}

func writeBinary(sb *strings.Builder, y *ast.Node, op string) {
	writeGroup(sb, y.Left)
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	writeGroup(sb, y.Right)
}

func writeGroup(sb *strings.Builder, y *ast.Node) {
	sb.WriteByte('(')
	writeExpr(sb, y)
	sb.WriteByte(')')
}
