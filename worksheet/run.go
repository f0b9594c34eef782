package worksheet

import (
	"fmt"
	"strings"

	"github.com/truthlab/go-prop/canon"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/sat"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

// Result is the outcome of one problem.  Err is set when the formula
// or its expectations could not be processed at all; Failures lists
// the expectations that did not hold.
type Result struct {
	Problem  *Problem
	Err      error
	Failures []string
}

func (r *Result) Passed() bool {
	return r.Err == nil && len(r.Failures) == 0
}

type Report struct {
	Worksheet *Worksheet
	Results   []*Result
}

func (r *Report) Passed() bool {
	return r.FailCount() == 0
}

func (r *Report) FailCount() int {
	c := 0
	for _, res := range r.Results {
		if !res.Passed() {
			c++
		}
	}
	return c
}

// Run checks every problem of the worksheet.
func Run(w *Worksheet) *Report {
	report := &Report{Worksheet: w}
	for _, p := range w.Problems {
		report.Results = append(report.Results, runProblem(p))
	}
	return report
}

func runProblem(p *Problem) *Result {
	res := &Result{Problem: p}
	node, err := parse.Parse([]byte(p.Formula))
	if err != nil {
		res.Err = err
		return res
	}
	tbl, err := table.Generate(token.Variables([]byte(p.Formula)), node)
	if err != nil {
		res.Err = err
		return res
	}
	e := p.Expect
	if e == nil {
		return res
	}
	if e.Tautology != nil && tbl.IsTautology() != *e.Tautology {
		res.fail("tautology: got %t, want %t", tbl.IsTautology(), *e.Tautology)
	}
	if e.Contradiction != nil && tbl.IsContradiction() != *e.Contradiction {
		res.fail("contradiction: got %t, want %t", tbl.IsContradiction(), *e.Contradiction)
	}
	if e.TrueRows != nil && tbl.TrueCount() != *e.TrueRows {
		res.fail("true rows: got %d, want %d", tbl.TrueCount(), *e.TrueRows)
	}
	if e.DNF != "" {
		if got := canon.DNF(tbl); got != normalize(e.DNF) {
			res.fail("dnf: got %q, want %q", got, normalize(e.DNF))
		}
	}
	if e.CNF != "" {
		if got := canon.CNF(tbl); got != normalize(e.CNF) {
			res.fail("cnf: got %q, want %q", got, normalize(e.CNF))
		}
	}
	if e.EquivalentTo != "" {
		answer, err := parse.Parse([]byte(e.EquivalentTo))
		if err != nil {
			res.Err = fmt.Errorf("equivalent-to: %w", err)
			return res
		}
		same, witness, err := sat.Equivalent(node, answer)
		if err != nil {
			res.Err = err
			return res
		}
		if !same {
			res.fail("not equivalent to %q, differs at %v", e.EquivalentTo, witness)
		}
	}
	return res
}

func (r *Result) fail(msg string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(msg, args...))
}

// normalize collapses runs of whitespace so expectations can wrap
// across YAML lines.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
