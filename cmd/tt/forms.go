package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/canon"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

func dnfRun(cfg *FormConfig, cc *cli.Context, args []string) error {
	return formRun(cfg, cc, args, canon.DNF)
}

func cnfRun(cfg *FormConfig, cc *cli.Context, args []string) error {
	return formRun(cfg, cc, args, canon.CNF)
}

func formRun(cfg *FormConfig, cc *cli.Context, args []string, form func(*table.Table) string) error {
	args, err := cfg.Form.Parse(cc, args)
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
	t, err := table.Generate(token.Variables(src), y)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, form(t))
	return nil
}
