package encode

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

var ErrDecode = errors.New("bad table")

// DecodeTable reads a table back from any of the machine formats:
// flat, TSV, CSV, or JSON.  The format is sniffed from the input.
// Truth values decode from 0/1, F/T, and False/True without regard
// to case.
func DecodeTable(r io.Reader) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return decodeJSON(trimmed)
	}
	recs, err := split(data)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs)
}

func decodeJSON(data []byte) (*table.Table, error) {
	jt := &jsonTable{}
	if err := json.Unmarshal(data, jt); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err.Error())
	}
	t := &table.Table{
		Vars: make([]token.Variable, 0, len(jt.Vars)),
		Rows: make([]table.Row, 0, len(jt.Rows)),
	}
	for _, v := range jt.Vars {
		pv, err := parseVar(v)
		if err != nil {
			return nil, err
		}
		t.Vars = append(t.Vars, pv)
	}
	for i, row := range jt.Rows {
		if len(row.Values) != len(t.Vars) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d variables",
				ErrDecode, i, len(row.Values), len(t.Vars))
		}
		t.Rows = append(t.Rows, table.Row{Values: row.Values, Result: row.Result})
	}
	return t, nil
}

// split breaks line oriented input into records, sniffing the
// separator from the first line: tabs, then commas, then runs of
// spaces.
func split(data []byte) ([][]string, error) {
	lines := strings.Split(string(data), "\n")
	var recs [][]string
	var sep string
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if sep == "" {
			switch {
			case strings.ContainsRune(line, '\t'):
				sep = "\t"
			case strings.ContainsRune(line, ','):
				sep = ","
			default:
				sep = " "
			}
		}
		switch sep {
		case ",":
			cr := csv.NewReader(strings.NewReader(line))
			rec, err := cr.Read()
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrDecode, err.Error())
			}
			recs = append(recs, rec)
		case " ":
			recs = append(recs, strings.Fields(line))
		default:
			recs = append(recs, strings.Split(line, sep))
		}
	}
	return recs, nil
}

func fromRecords(recs [][]string) (*table.Table, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}
	hdr := recs[0]
	if len(hdr) == 0 || !strings.EqualFold(strings.TrimSpace(hdr[len(hdr)-1]), "result") {
		return nil, fmt.Errorf("%w: header must end with Result", ErrDecode)
	}
	t := &table.Table{
		Vars: make([]token.Variable, 0, len(hdr)-1),
		Rows: make([]table.Row, 0, len(recs)-1),
	}
	for _, h := range hdr[:len(hdr)-1] {
		v, err := parseVar(strings.TrimSpace(h))
		if err != nil {
			return nil, err
		}
		t.Vars = append(t.Vars, v)
	}
	for i, rec := range recs[1:] {
		if len(rec) != len(hdr) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrDecode, i, len(rec), len(hdr))
		}
		row := table.Row{Values: make([]bool, 0, len(t.Vars))}
		for _, cell := range rec[:len(rec)-1] {
			b, err := parseCell(cell)
			if err != nil {
				return nil, err
			}
			row.Values = append(row.Values, b)
		}
		b, err := parseCell(rec[len(rec)-1])
		if err != nil {
			return nil, err
		}
		row.Result = b
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseVar(s string) (token.Variable, error) {
	vars := token.Variables([]byte(s))
	if len(s) != 1 || len(vars) != 1 {
		return 0, fmt.Errorf("%w: column %q is not a variable", ErrDecode, s)
	}
	return vars[0], nil
}

func parseCell(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "0", "F", "FALSE":
		return false, nil
	case "1", "T", "TRUE":
		return true, nil
	}
	return false, fmt.Errorf("%w: truth value %q", ErrDecode, s)
}
