package libdiff

import (
	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

// Report lists where two formulas disagree over the assignments of
// their combined variables.
type Report struct {
	Vars      []token.Variable
	Differing []eval.Assignment
	Checked   int
}

// Equivalent reports whether no assignment separated the formulas.
func (r *Report) Equivalent() bool {
	return len(r.Differing) == 0
}

// Formulas compares from and to on every assignment of the union of
// their variables.  A variable only one side references still ranges
// over both values, so formulas over different variables compare
// fairly.
func Formulas(from, to *ast.Node) (*Report, error) {
	r := &Report{Vars: unionVars(from, to)}
	err := table.Each(r.Vars, func(asg eval.Assignment, _ []bool) error {
		f, err := eval.Eval(from, asg)
		if err != nil {
			return err
		}
		t, err := eval.Eval(to, asg)
		if err != nil {
			return err
		}
		if f != t {
			r.Differing = append(r.Differing, asg.Clone())
		}
		r.Checked++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func unionVars(from, to *ast.Node) []token.Variable {
	var seen [26]bool
	for _, v := range from.Vars() {
		seen[v-'A'] = true
	}
	for _, v := range to.Vars() {
		seen[v-'A'] = true
	}
	var res []token.Variable
	for k, ok := range seen {
		if ok {
			res = append(res, token.Variable('A'+byte(k)))
		}
	}
	return res
}
