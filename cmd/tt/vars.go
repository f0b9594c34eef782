package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/token"
)

func varsRun(cfg *VarsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vars.Parse(cc, args)
	if err != nil {
		return err
	}
	src, err := formulaArg(cc, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, varsString(token.Variables(src)))
	return nil
}

func varsString(vs []token.Variable) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = v.String()
	}
	return strings.Join(ss, " ")
}
