package encode

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/truthlab/go-prop/format"
	"github.com/truthlab/go-prop/table"
)

// Encode writes t to w in the format carried by opts, flat by
// default.  Colors apply to the flat format only; the machine
// formats and the bordered table keep their bytes plain.
func Encode(t *table.Table, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{header: true}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.FlatFormat:
		return encodeSep(t, w, es, ' ', true)
	case format.TSVFormat:
		return encodeSep(t, w, es, '\t', false)
	case format.CSVFormat:
		return encodeCSV(t, w, es)
	case format.JSONFormat:
		return encodeJSON(t, w)
	case format.TableFormat:
		return encodeTable(t, w, es)
	default:
		return fmt.Errorf("%w: %v", format.ErrBadFormat, int(es.format))
	}
}

func (es *EncState) colorize(a ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(a, v)
}

func (es *EncState) cell(v bool) string {
	s := es.bool(v)
	if v {
		return es.colorize(TrueColor, s)
	}
	return es.colorize(FalseColor, s)
}

func header(t *table.Table) []string {
	hdr := make([]string, 0, len(t.Vars)+1)
	for _, v := range t.Vars {
		hdr = append(hdr, v.String())
	}
	return append(hdr, "Result")
}

// encodeSep writes the line oriented formats: one header line, one
// line per row, values joined by sep.
func encodeSep(t *table.Table, w io.Writer, es *EncState, sep byte, colored bool) error {
	if !colored {
		es = &EncState{format: es.format, bools: es.bools, header: es.header}
	}
	var sb strings.Builder
	if es.header {
		for i, h := range header(t) {
			if i > 0 {
				sb.WriteByte(sep)
			}
			sb.WriteString(es.colorize(HeaderColor, h))
		}
		sb.WriteByte('\n')
	}
	for _, row := range t.Rows {
		for _, v := range row.Values {
			sb.WriteString(es.cell(v))
			sb.WriteByte(sep)
		}
		sb.WriteString(es.cell(row.Result))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func encodeCSV(t *table.Table, w io.Writer, es *EncState) error {
	cw := csv.NewWriter(w)
	plain := &EncState{bools: es.bools}
	if es.header {
		if err := cw.Write(header(t)); err != nil {
			return err
		}
	}
	rec := make([]string, len(t.Vars)+1)
	for _, row := range t.Rows {
		for j, v := range row.Values {
			rec[j] = plain.bool(v)
		}
		rec[len(rec)-1] = plain.bool(row.Result)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonTable struct {
	Vars []string  `json:"vars"`
	Rows []jsonRow `json:"rows"`
}

type jsonRow struct {
	Values []bool `json:"values"`
	Result bool   `json:"result"`
}

func encodeJSON(t *table.Table, w io.Writer) error {
	jt := jsonTable{
		Vars: make([]string, len(t.Vars)),
		Rows: make([]jsonRow, len(t.Rows)),
	}
	for i, v := range t.Vars {
		jt.Vars[i] = v.String()
	}
	for i, row := range t.Rows {
		jt.Rows[i] = jsonRow{Values: row.Values, Result: row.Result}
	}
	return json.NewEncoder(w).Encode(&jt)
}

func encodeTable(t *table.Table, w io.Writer, es *EncState) error {
	tw := tablewriter.NewWriter(w)
	if es.header {
		tw.Header(header(t))
	}
	plain := &EncState{bools: es.bools}
	for _, row := range t.Rows {
		rec := make([]string, 0, len(t.Vars)+1)
		for _, v := range row.Values {
			rec = append(rec, plain.bool(v))
		}
		rec = append(rec, plain.bool(row.Result))
		if err := tw.Append(rec); err != nil {
			return err
		}
	}
	return tw.Render()
}
