// Package eval evaluates formulas under variable assignments.
//
// [Eval] walks the tree directly.  [Compile] lowers a formula to a
// boolean expression program for repeated evaluation; the two agree
// on every input.
package eval
