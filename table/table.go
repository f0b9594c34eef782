// Package table generates truth tables.
//
// A table enumerates every assignment of a formula's variables in a
// fixed order: the first variable is the most significant bit and
// false sorts before true, so the rows of a two variable table read
// FF, FT, TF, TT.  A formula over n variables always yields 1<<n
// rows; with no variables the table has a single row.
package table

import (
	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/debug"
	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/token"
)

type Row struct {
	Values []bool
	Result bool
}

type Table struct {
	Vars []token.Variable
	Rows []Row
}

// Generate builds the truth table of y over vars.  vars fixes both
// the column order and the set of bound variables: a variable y
// references beyond vars surfaces as an [*eval.EvalErr].  Extra
// variables in vars are legal and simply double the row count each.
func Generate(vars []token.Variable, y *ast.Node) (*Table, error) {
	t := &Table{
		Vars: append([]token.Variable(nil), vars...),
		Rows: make([]Row, 0, 1<<len(vars)),
	}
	err := Each(vars, func(asg eval.Assignment, values []bool) error {
		res, err := eval.Eval(y, asg)
		if err != nil {
			return err
		}
		t.Rows = append(t.Rows, Row{
			Values: append([]bool(nil), values...),
			Result: res,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if debug.Table() {
		debug.Logf("table for %s: %d rows, %d true\n", y, len(t.Rows), t.TrueCount())
	}
	return t, nil
}

// Each calls fn once per assignment of vars, in table row order.  The
// assignment and values slice are reused between calls; fn must copy
// what it keeps.  A non-nil error from fn stops the enumeration.
func Each(vars []token.Variable, fn func(asg eval.Assignment, values []bool) error) error {
	n := len(vars)
	asg := make(eval.Assignment, n)
	values := make([]bool, n)
	for i := 0; i < 1<<n; i++ {
		for j, v := range vars {
			val := i>>(n-1-j)&1 == 1
			asg[v] = val
			values[j] = val
		}
		if err := fn(asg, values); err != nil {
			return err
		}
	}
	return nil
}

// Assignment returns the variable bindings of row i.
func (t *Table) Assignment(i int) eval.Assignment {
	asg := make(eval.Assignment, len(t.Vars))
	for j, v := range t.Vars {
		asg[v] = t.Rows[i].Values[j]
	}
	return asg
}

// IsTautology reports whether every row of the table is true.
func (t *Table) IsTautology() bool {
	for i := range t.Rows {
		if !t.Rows[i].Result {
			return false
		}
	}
	return true
}

// IsContradiction reports whether every row of the table is false.
func (t *Table) IsContradiction() bool {
	for i := range t.Rows {
		if t.Rows[i].Result {
			return false
		}
	}
	return true
}

// TrueCount returns the number of true rows.
func (t *Table) TrueCount() int {
	c := 0
	for i := range t.Rows {
		if t.Rows[i].Result {
			c++
		}
	}
	return c
}

// Complete reports whether the table has the full 1<<n rows its
// variable count calls for.  Tables built by Generate always do;
// decoded tables may not.
func (t *Table) Complete() bool {
	return len(t.Rows) == 1<<len(t.Vars)
}
