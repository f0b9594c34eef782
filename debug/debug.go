package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Table bool
	Sat   bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PROP_DEBUG_PARSE")
	d.Eval = boolEnv("PROP_DEBUG_EVAL")
	d.Table = boolEnv("PROP_DEBUG_TABLE")
	d.Sat = boolEnv("PROP_DEBUG_SAT")
	d.LSP = boolEnv("PROP_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Table() bool {
	return d.Table
}
func Sat() bool {
	return d.Sat
}
func LSP() bool {
	return d.LSP
}
