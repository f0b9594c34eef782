package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/token"
)

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
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
	var v bool
	if cfg.Compiled {
		s, err := eval.Compile(y)
		if err != nil {
			return err
		}
		v, err = s.Eval(cfg.Env)
		if err != nil {
			return err
		}
	} else {
		v, err = eval.Eval(y, cfg.Env)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(cc.Out, v)
	return nil
}

func setOptTypeFunc(env eval.Assignment) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		if err := setFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func setFunc(env eval.Assignment, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected var=val", cli.ErrUsage, a)
	}
	vs := token.Variables([]byte(name))
	if len(vs) != 1 {
		return fmt.Errorf("%w: %q is not a variable", cli.ErrUsage, name)
	}
	v, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("%w: %q: value must be one of 0 1 t f true false", cli.ErrUsage, a)
	}
	env[vs[0]] = v
	return nil
}
