package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/scott-cotton/cli"

	"github.com/truthlab/go-prop/kmap"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

func kmapRun(cfg *KMapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.KMap.Parse(cc, args)
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
	t, err := table.Generate(vars, y)
	if err != nil {
		return err
	}
	m, ok := kmap.Build(t)
	if !ok {
		return fmt.Errorf("karnaugh maps cover 2, 3, or 4 variables, formula has %d", len(vars))
	}
	g := kmap.NewGrid(m)

	tw := tablewriter.NewWriter(cc.Out)
	hdr := make([]string, 0, len(g.ColLabels)+1)
	hdr = append(hdr, corner(g))
	hdr = append(hdr, g.ColLabels...)
	tw.Header(hdr)
	for r, row := range g.Cells {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, g.RowLabels[r])
		for _, v := range row {
			if v {
				rec = append(rec, "1")
			} else {
				rec = append(rec, "0")
			}
		}
		if err := tw.Append(rec); err != nil {
			return err
		}
	}
	return tw.Render()
}

// corner labels the top left header cell with the row variables over
// the column variables, eg "AB\CD".
func corner(g *kmap.Grid) string {
	b := make([]byte, 0, len(g.RowVars)+len(g.ColVars)+1)
	for _, v := range g.RowVars {
		b = append(b, byte(v))
	}
	b = append(b, '\\')
	for _, v := range g.ColVars {
		b = append(b, byte(v))
	}
	return string(b)
}
