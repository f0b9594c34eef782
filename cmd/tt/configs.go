package main

import (
	"fmt"
	"io"
	"os"

	"github.com/truthlab/go-prop/encode"
	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/format"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color the output'"`
	NoColor bool `cli:"name=no-color desc='never color the output'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TableFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.NoColor {
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// setColor aligns the fatih/color global with the -color/-no-color
// flags for commands that print with color helpers rather than the
// encode package.
func (cfg *MainConfig) setColor() {
	switch {
	case cfg.NoColor:
		color.NoColor = true
	case cfg.Color:
		color.NoColor = false
	}
}

type TableConfig struct {
	*MainConfig
	Limit int `cli:"name=limit desc='maximum number of rows to generate'"`

	Table *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env      eval.Assignment
	Compiled bool `cli:"name=compiled desc='evaluate a compiled program instead of the tree'"`

	Eval *cli.Command
}

type FormConfig struct {
	*MainConfig

	Form *cli.Command
}

type KMapConfig struct {
	*MainConfig

	KMap *cli.Command
}

type VarsConfig struct {
	*MainConfig

	Vars *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Sat   bool `cli:"name=sat desc='decide with the sat solver instead of table enumeration'"`
	Count bool `cli:"name=count desc='count models with a binary decision diagram'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type WorksheetConfig struct {
	*MainConfig

	Worksheet *cli.Command
}

type ShellConfig struct {
	*MainConfig

	Shell *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}
