package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop"
	"github.com/truthlab/go-prop/encode"
)

func shellRun(cfg *ShellConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Shell.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: shell takes no arguments", cli.ErrUsage)
	}
	cfg.setColor()
	fmt.Fprintln(cc.Out, "enter a formula, or exit to quit")
	for {
		prompt := promptui.Prompt{Label: "tt"}
		input, err := prompt.Run()
		if err != nil {
			// ^C and ^D end the session
			return nil
		}
		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := shellEval(cfg, cc.Out, input); err != nil {
			fmt.Fprintln(cc.Out, promptui.Styler(promptui.FGRed)(err.Error()))
		}
	}
}

func shellEval(cfg *ShellConfig, w io.Writer, input string) error {
	f, err := prop.Compile(input)
	if err != nil {
		return err
	}
	if n := len(f.Vars()); n > 16 {
		return fmt.Errorf("%d variables give %d rows, too many for the shell", n, 1<<n)
	}
	a, err := prop.Analyze(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, promptui.Styler(promptui.FGCyan)(a.Formula.String()))
	if err := encode.Encode(a.Table, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	fmt.Fprintf(w, "dnf: %s\n", a.DNF)
	fmt.Fprintf(w, "cnf: %s\n", a.CNF)
	switch {
	case a.Tautology:
		fmt.Fprintln(w, promptui.Styler(promptui.FGGreen)("tautology"))
	case a.Contradiction:
		fmt.Fprintln(w, promptui.Styler(promptui.FGYellow)("contradiction"))
	}
	return nil
}
