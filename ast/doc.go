// Package ast defines the tree representation of parsed propositional
// formulas.
//
// # Overview
//
// A formula is a tree of [Node] values.  Leaves are variables and the
// constants TRUE and FALSE, interior nodes are connectives.  Operand
// nodes are owned by their parent: sharing a subtree between two
// parents is not supported, use [Node.Clone] when a formula is reused.
//
// The tree works as a recursive tagged union: [Node.Op] selects which
// of the remaining fields are meaningful.
//
// # Rendering
//
// [Node.String] renders a formula with the minimum parentheses needed
// to reparse to an identical tree, so String and parsing are exact
// inverses.
package ast
