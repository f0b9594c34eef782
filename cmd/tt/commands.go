package main

import (
	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/eval"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"fmt"},
			Description: "output format: table/t, flat/f, csv/c, tsv, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tt").
		WithSynopsis("tt [opts] command [opts] [formula]").
		WithDescription(ttDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ttMain(cfg, cc, args)
		}).
		WithSubs(
			TableCommand(cfg),
			EvalCommand(cfg),
			DNFCommand(cfg),
			CNFCommand(cfg),
			KMapCommand(cfg),
			VarsCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			WorksheetCommand(cfg),
			ShellCommand(cfg),
			VersionCommand(cfg))
}

const ttDescription = `tt is a tool for working with propositional-logic formulas.

Formulas are built from single-letter variables A-Z, the constants TRUE and
FALSE, the operators NOT, AND, OR, XOR, -> and <->, the two-argument forms
NAND(p, q) and NOR(p, q), and parentheses.  Input is case-insensitive.

Binding, loosest to tightest: <->, ->, XOR, OR, AND, NOT.  Binary operators
associate to the left, so A -> B -> C reads (A -> B) -> C.

Most commands take a formula argument; the words making it up may be passed
unquoted:

  tt table a and not b
  tt dnf 'A XOR B'
  echo 'NAND(A, B)' | tt check

With no formula argument, the formula is read from standard input.`

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg, Limit: 1 << 16}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Table, "table").
		WithAliases("t", "tab").
		WithSynopsis("table [opts] [formula]").
		WithDescription("render the truth table of a formula").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tableRun(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: eval.Assignment{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "set",
			Description: "bind a variable, eg -set A=1 (repeatable)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(setOptTypeFunc(cfg.Env)), "(var=val)"),
		})

	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval -set A=1 [-set B=0]... [opts] [formula]").
		WithDescription("evaluate a formula under one assignment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalRun(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func DNFCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FormConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Form, "dnf").
		WithSynopsis("dnf [formula]").
		WithDescription("print the canonical disjunctive normal form").
		WithRun(func(cc *cli.Context, args []string) error {
			return dnfRun(cfg, cc, args)
		})
}

func CNFCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FormConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Form, "cnf").
		WithSynopsis("cnf [formula]").
		WithDescription("print the canonical conjunctive normal form").
		WithRun(func(cc *cli.Context, args []string) error {
			return cnfRun(cfg, cc, args)
		})
}

func KMapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KMapConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.KMap, "kmap").
		WithAliases("k", "km").
		WithSynopsis("kmap [formula]").
		WithDescription("render the Karnaugh map of a 2, 3, or 4 variable formula").
		WithRun(func(cc *cli.Context, args []string) error {
			return kmapRun(cfg, cc, args)
		})
}

func VarsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VarsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Vars, "vars").
		WithAliases("v").
		WithSynopsis("vars [formula]").
		WithDescription("print the variables of a formula in order").
		WithRun(func(cc *cli.Context, args []string) error {
			return varsRun(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithSynopsis("check [opts] formula [formula2]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return checkRun(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

const checkDescription = `check classifies a formula as a tautology, a contradiction, or merely
satisfiable.

With one formula, check decides by enumerating the truth table, or with the
sat solver when -sat is given.  -count also reports the number of satisfying
assignments, counted on a binary decision diagram.

With two formulas, check decides whether they are equivalent over the union
of their variables, and exits nonzero with a separating assignment when they
are not.  Quote each formula so they arrive as two arguments.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff formula1 formula2").
		WithDescription("diff the truth tables of two formulas").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
}

func WorksheetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WorksheetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Worksheet, "worksheet").
		WithAliases("w", "ws").
		WithSynopsis("worksheet file...").
		WithDescription("check the problems of yaml worksheet files").
		WithRun(func(cc *cli.Context, args []string) error {
			return worksheetRun(cfg, cc, args)
		})
}

func ShellCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShellConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Shell, "shell").
		WithAliases("s", "sh").
		WithSynopsis("shell").
		WithDescription("analyze formulas interactively").
		WithRun(func(cc *cli.Context, args []string) error {
			return shellRun(cfg, cc, args)
		})
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Version, "version").
		WithSynopsis("version").
		WithDescription("print version information").
		WithRun(func(cc *cli.Context, args []string) error {
			return versionRun(cfg, cc, args)
		})
}
