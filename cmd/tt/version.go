package main

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/scott-cotton/cli"
)

func versionRun(cfg *VersionConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Version.Parse(cc, args); err != nil {
		return err
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("no build info")
	}
	fmt.Fprintf(cc.Out, "tt %s %s\n", bi.Main.Version, bi.GoVersion)
	return nil
}
