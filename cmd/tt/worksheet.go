package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/worksheet"
)

func worksheetRun(cfg *WorksheetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Worksheet.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: worksheet requires at least one file", cli.ErrUsage)
	}
	cfg.setColor()
	failed := 0
	for _, arg := range args {
		w, err := worksheet.Load(arg)
		if err != nil {
			return err
		}
		report := worksheet.Run(w)
		printReport(cc, report)
		failed += report.FailCount()
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func printReport(cc *cli.Context, r *worksheet.Report) {
	if r.Worksheet.Name != "" {
		fmt.Fprintf(cc.Out, "%s:\n", r.Worksheet.Name)
	}
	for _, res := range r.Results {
		name := res.Problem.Name
		switch {
		case res.Err != nil:
			fmt.Fprintf(cc.Out, "%s %s: %v\n", color.RedString("FAIL"), name, res.Err)
		case len(res.Failures) > 0:
			fmt.Fprintf(cc.Out, "%s %s\n", color.RedString("FAIL"), name)
			for _, f := range res.Failures {
				fmt.Fprintf(cc.Out, "\t%s\n", f)
			}
		default:
			fmt.Fprintf(cc.Out, "%s %s\n", color.GreenString("ok"), name)
		}
	}
	if c := r.FailCount(); c > 0 {
		fmt.Fprintf(cc.Out, "%d of %d problems failed\n", c, len(r.Results))
		return
	}
	fmt.Fprintf(cc.Out, "%d problems passed\n", len(r.Results))
}
