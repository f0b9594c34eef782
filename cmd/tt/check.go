package main

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/bdd"
	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/libdiff"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/sat"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

func checkRun(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 2 {
		return checkEquivalent(cfg, cc, args[0], args[1])
	}
	src, err := formulaArg(cc, args)
	if err != nil {
		return err
	}
	y, err := parse.Parse(src)
	if err != nil {
		return err
	}
	vars := token.Variables(src)
	class, err := classify(cfg, vars, y)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, class)
	if !cfg.Count {
		return nil
	}
	count, err := modelCount(vars, y)
	if err != nil {
		return err
	}
	space := new(big.Int).Lsh(big.NewInt(1), uint(len(vars)))
	fmt.Fprintf(cc.Out, "%v of %v assignments\n", count, space)
	return nil
}

func classify(cfg *CheckConfig, vars []token.Variable, y *ast.Node) (string, error) {
	if cfg.Sat {
		taut, err := sat.Tautology(y)
		if err != nil {
			return "", err
		}
		if taut {
			return "tautology", nil
		}
		sats, _, err := sat.Satisfiable(y)
		if err != nil {
			return "", err
		}
		if !sats {
			return "contradiction", nil
		}
		return "satisfiable", nil
	}
	t, err := table.Generate(vars, y)
	if err != nil {
		return "", err
	}
	switch {
	case t.IsTautology():
		return "tautology", nil
	case t.IsContradiction():
		return "contradiction", nil
	}
	return "satisfiable", nil
}

func modelCount(vars []token.Variable, y *ast.Node) (*big.Int, error) {
	if len(vars) == 0 {
		v, err := eval.Eval(y, eval.Assignment{})
		if err != nil {
			return nil, err
		}
		if v {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	}
	f, err := bdd.Compile(vars, y)
	if err != nil {
		return nil, err
	}
	return f.Count(), nil
}

func checkEquivalent(cfg *CheckConfig, cc *cli.Context, a1, a2 string) error {
	y1, err := parse.Parse([]byte(a1))
	if err != nil {
		return fmt.Errorf("formula 1: %w", err)
	}
	y2, err := parse.Parse([]byte(a2))
	if err != nil {
		return fmt.Errorf("formula 2: %w", err)
	}
	if cfg.Sat {
		eq, sep, err := sat.Equivalent(y1, y2)
		if err != nil {
			return err
		}
		if eq {
			fmt.Fprintln(cc.Out, "equivalent")
			return nil
		}
		fmt.Fprintf(cc.Out, "not equivalent, differ on %s\n", asgString(sep))
		return cli.ExitCodeErr(1)
	}
	r, err := libdiff.Formulas(y1, y2)
	if err != nil {
		return err
	}
	if r.Equivalent() {
		fmt.Fprintln(cc.Out, "equivalent")
		return nil
	}
	fmt.Fprintf(cc.Out, "not equivalent, differ on %d of %d assignments, eg %s\n",
		len(r.Differing), r.Checked, asgString(r.Differing[0]))
	return cli.ExitCodeErr(1)
}

// asgString renders an assignment as "A=1 B=0" in variable order.
func asgString(asg eval.Assignment) string {
	vs := make([]token.Variable, 0, len(asg))
	for v := range asg {
		vs = append(vs, v)
	}
	slices.Sort(vs)
	ss := make([]string, len(vs))
	for i, v := range vs {
		val := "0"
		if asg[v] {
			val = "1"
		}
		ss[i] = v.String() + "=" + val
	}
	return strings.Join(ss, " ")
}
