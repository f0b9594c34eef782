// Package canon derives canonical normal forms from truth tables.
//
// The disjunctive form ors together one conjunction per true row, the
// conjunctive form ands together one disjunction per false row.  Both
// read off the table, so they are canonical for the table's variable
// order but make no attempt at minimization.
package canon

import (
	"strings"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/table"
)

// DNF returns the full disjunctive normal form of the table, one
// parenthesized conjunction per true row:
//
//	(A and B) or (A and not B)
//
// A table with no true rows has the constant form "False".
func DNF(t *table.Table) string {
	if len(t.Vars) == 0 {
		if t.TrueCount() > 0 {
			return "True"
		}
		return "False"
	}
	var clauses []string
	for _, row := range t.Rows {
		if !row.Result {
			continue
		}
		parts := make([]string, len(t.Vars))
		for j, v := range t.Vars {
			if row.Values[j] {
				parts[j] = v.String()
			} else {
				parts[j] = "not " + v.String()
			}
		}
		clauses = append(clauses, "("+strings.Join(parts, " and ")+")")
	}
	if len(clauses) == 0 {
		return "False"
	}
	return strings.Join(clauses, " or ")
}

// CNF returns the full conjunctive normal form of the table, one
// parenthesized disjunction per false row:
//
//	(A or B) and (A or not B)
//
// Each false row contributes the clause that rules it out, so the
// literals are negated relative to the row's values.  A table with no
// false rows has the constant form "True".
func CNF(t *table.Table) string {
	if len(t.Vars) == 0 {
		if t.TrueCount() > 0 {
			return "True"
		}
		return "False"
	}
	var clauses []string
	for _, row := range t.Rows {
		if row.Result {
			continue
		}
		parts := make([]string, len(t.Vars))
		for j, v := range t.Vars {
			if row.Values[j] {
				parts[j] = "not " + v.String()
			} else {
				parts[j] = v.String()
			}
		}
		clauses = append(clauses, "("+strings.Join(parts, " or ")+")")
	}
	if len(clauses) == 0 {
		return "True"
	}
	return strings.Join(clauses, " and ")
}

// DNFNode returns the disjunctive normal form as a tree.  The or and
// and chains fold left, matching what parsing the DNF string yields.
func DNFNode(t *table.Table) *ast.Node {
	var res *ast.Node
	for _, row := range t.Rows {
		if !row.Result {
			continue
		}
		clause := rowClause(t, row, true)
		if res == nil {
			res = clause
		} else {
			res = ast.Or(res, clause)
		}
	}
	if res == nil {
		return ast.Const(false)
	}
	return res
}

// CNFNode returns the conjunctive normal form as a tree.
func CNFNode(t *table.Table) *ast.Node {
	var res *ast.Node
	for _, row := range t.Rows {
		if row.Result {
			continue
		}
		clause := rowClause(t, row, false)
		if res == nil {
			res = clause
		} else {
			res = ast.And(res, clause)
		}
	}
	if res == nil {
		return ast.Const(true)
	}
	return res
}

// rowClause builds the conjunction matching a row when keep is true,
// or the disjunction excluding it when keep is false.
func rowClause(t *table.Table, row table.Row, keep bool) *ast.Node {
	var clause *ast.Node
	for j, v := range t.Vars {
		lit := ast.Var(v)
		if row.Values[j] != keep {
			lit = ast.Not(lit)
		}
		if clause == nil {
			clause = lit
			continue
		}
		if keep {
			clause = ast.And(clause, lit)
		} else {
			clause = ast.Or(clause, lit)
		}
	}
	if clause == nil {
		// No variables: the empty conjunction is true, the
		// empty disjunction false.
		return ast.Const(keep)
	}
	return clause
}
