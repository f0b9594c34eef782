package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/libdiff"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/table"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes two formulas, quote each", cli.ErrUsage)
	}
	y1, err := parse.Parse([]byte(args[0]))
	if err != nil {
		return fmt.Errorf("formula 1: %w", err)
	}
	y2, err := parse.Parse([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("formula 2: %w", err)
	}
	r, err := libdiff.Formulas(y1, y2)
	if err != nil {
		return err
	}
	if r.Equivalent() {
		fmt.Fprintf(cc.Out, "equivalent over %s, %d assignments\n",
			varsString(r.Vars), r.Checked)
		return nil
	}
	t1, err := table.Generate(r.Vars, y1)
	if err != nil {
		return err
	}
	t2, err := table.Generate(r.Vars, y2)
	if err != nil {
		return err
	}
	text, _ := libdiff.Tables(t1, t2)
	fmt.Fprint(cc.Out, text)
	fmt.Fprintf(cc.Out, "%d of %d assignments differ\n", len(r.Differing), r.Checked)
	return cli.ExitCodeErr(1)
}
