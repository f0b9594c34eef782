package ast

import (
	"strings"
)

// binding returns how tightly the node's operator binds, higher is
// tighter.  Atoms and the NAND/NOR call forms never need parentheses
// around themselves.
func (y *Node) binding() int {
	switch y.Op {
	case OpEquiv:
		return 1
	case OpImplies:
		return 2
	case OpXor:
		return 3
	case OpOr:
		return 4
	case OpAnd:
		return 5
	case OpNot:
		return 6
	default:
		return 7
	}
}

func (y *Node) opWord() string {
	switch y.Op {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpXor:
		return "XOR"
	case OpImplies:
		return "->"
	case OpEquiv:
		return "<->"
	default:
		return y.Op.String()
	}
}

func (y *Node) String() string {
	var sb strings.Builder
	y.render(&sb)
	return sb.String()
}

func (y *Node) render(sb *strings.Builder) {
	switch y.Op {
	case OpVar:
		sb.WriteByte(byte(y.Var))
	case OpConst:
		if y.Value {
			sb.WriteString("TRUE")
		} else {
			sb.WriteString("FALSE")
		}
	case OpNot:
		sb.WriteString("NOT ")
		y.Left.renderChild(sb, y.Left.binding() < y.binding())
	case OpNand, OpNor:
		if y.Op == OpNand {
			sb.WriteString("NAND(")
		} else {
			sb.WriteString("NOR(")
		}
		y.Left.render(sb)
		sb.WriteString(", ")
		y.Right.render(sb)
		sb.WriteByte(')')
	default:
		// Binary connectives are left associative, so an equal
		// binding on the right needs parentheses to keep the
		// tree shape.
		y.Left.renderChild(sb, y.Left.binding() < y.binding())
		sb.WriteByte(' ')
		sb.WriteString(y.opWord())
		sb.WriteByte(' ')
		y.Right.renderChild(sb, y.Right.binding() <= y.binding())
	}
}

func (y *Node) renderChild(sb *strings.Builder, wrap bool) {
	if wrap {
		sb.WriteByte('(')
		y.render(sb)
		sb.WriteByte(')')
		return
	}
	y.render(sb)
}
