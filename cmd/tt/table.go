package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/encode"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

func tableRun(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
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
	if n := len(vars); 1<<n > cfg.Limit {
		return fmt.Errorf("%d variables give %d rows, over the limit %d (raise -limit)",
			n, 1<<n, cfg.Limit)
	}
	t, err := table.Generate(vars, y)
	if err != nil {
		return err
	}
	if err := encode.Encode(t, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if cfg.outFormat().Machine() {
		return nil
	}
	switch {
	case t.IsTautology():
		fmt.Fprintln(cc.Out, "tautology")
	case t.IsContradiction():
		fmt.Fprintln(cc.Out, "contradiction")
	}
	return nil
}
