package ast

import (
	"github.com/truthlab/go-prop/token"
)

type Op int

const (
	OpVar = iota
	OpConst
	OpNot
	OpAnd
	OpOr
	OpXor
	OpImplies
	OpEquiv
	OpNand
	OpNor
)

func (o Op) String() string {
	return map[Op]string{
		OpVar:     "Var",
		OpConst:   "Const",
		OpNot:     "Not",
		OpAnd:     "And",
		OpOr:      "Or",
		OpXor:     "Xor",
		OpImplies: "Implies",
		OpEquiv:   "Equiv",
		OpNand:    "Nand",
		OpNor:     "Nor",
	}[o]
}

// Arity returns the number of operands the operator takes.
func (o Op) Arity() int {
	switch o {
	case OpVar, OpConst:
		return 0
	case OpNot:
		return 1
	default:
		return 2
	}
}

type Node struct {
	Op    Op
	Var   token.Variable // OpVar
	Value bool           // OpConst
	Left  *Node          // operand of OpNot, left operand otherwise
	Right *Node
}

func Var(v token.Variable) *Node {
	return &Node{Op: OpVar, Var: v}
}

func Const(v bool) *Node {
	return &Node{Op: OpConst, Value: v}
}

func Not(x *Node) *Node {
	return &Node{Op: OpNot, Left: x}
}

func And(l, r *Node) *Node {
	return &Node{Op: OpAnd, Left: l, Right: r}
}

func Or(l, r *Node) *Node {
	return &Node{Op: OpOr, Left: l, Right: r}
}

func Xor(l, r *Node) *Node {
	return &Node{Op: OpXor, Left: l, Right: r}
}

func Implies(l, r *Node) *Node {
	return &Node{Op: OpImplies, Left: l, Right: r}
}

func Equiv(l, r *Node) *Node {
	return &Node{Op: OpEquiv, Left: l, Right: r}
}

func Nand(l, r *Node) *Node {
	return &Node{Op: OpNand, Left: l, Right: r}
}

func Nor(l, r *Node) *Node {
	return &Node{Op: OpNor, Left: l, Right: r}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Op = y.Op
	dst.Var = y.Var
	dst.Value = y.Value
	if y.Left != nil {
		dst.Left = y.Left.CloneTo(&Node{})
	}
	if y.Right != nil {
		dst.Right = y.Right.CloneTo(&Node{})
	}
	return dst
}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Op != b.Op || a.Var != b.Var || a.Value != b.Value {
		return false
	}
	return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Walk visits y and its operands in prefix order.  If fn returns
// false the operands of the visited node are skipped.
func (y *Node) Walk(fn func(*Node) bool) {
	if y == nil {
		return
	}
	if !fn(y) {
		return
	}
	y.Left.Walk(fn)
	y.Right.Walk(fn)
}

// Vars returns the sorted, deduplicated variables referenced by the
// formula rooted at y.
func (y *Node) Vars() []token.Variable {
	var seen [26]bool
	y.Walk(func(n *Node) bool {
		if n.Op == OpVar {
			seen[n.Var-'A'] = true
		}
		return true
	})
	var res []token.Variable
	for k, ok := range seen {
		if ok {
			res = append(res, token.Variable('A'+byte(k)))
		}
	}
	return res
}
