package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/truthlab/go-prop/format"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

func mustTable(t *testing.T, src string) *table.Table {
	t.Helper()
	node, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("%q: %s", src, err)
	}
	tbl, err := table.Generate(token.Variables([]byte(src)), node)
	if err != nil {
		t.Fatalf("%q: %s", src, err)
	}
	return tbl
}

func TestEncodeFlat(t *testing.T) {
	tbl := mustTable(t, "A AND B")
	var buf bytes.Buffer
	if err := Encode(tbl, &buf); err != nil {
		t.Fatal(err)
	}
	want := "A B Result\n" +
		"0 0 0\n" +
		"0 1 0\n" +
		"1 0 0\n" +
		"1 1 1\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncodeFlatNoHeader(t *testing.T) {
	tbl := mustTable(t, "A")
	var buf bytes.Buffer
	if err := Encode(tbl, &buf, EncodeHeader(false)); err != nil {
		t.Fatal(err)
	}
	want := "0 0\n1 1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeFlatNoVars(t *testing.T) {
	tbl := mustTable(t, "TRUE")
	var buf bytes.Buffer
	if err := Encode(tbl, &buf); err != nil {
		t.Fatal(err)
	}
	want := "Result\n1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeTSV(t *testing.T) {
	tbl := mustTable(t, "A OR B")
	var buf bytes.Buffer
	if err := Encode(tbl, &buf, EncodeFormat(format.TSVFormat)); err != nil {
		t.Fatal(err)
	}
	want := "A\tB\tResult\n" +
		"0\t0\t0\n" +
		"0\t1\t1\n" +
		"1\t0\t1\n" +
		"1\t1\t1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeCSVWords(t *testing.T) {
	tbl := mustTable(t, "NOT A")
	var buf bytes.Buffer
	err := Encode(tbl, &buf, EncodeFormat(format.CSVFormat), EncodeBools(Words))
	if err != nil {
		t.Fatal(err)
	}
	want := "A,Result\n" +
		"False,True\n" +
		"True,False\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeJSON(t *testing.T) {
	tbl := mustTable(t, "A XOR B")
	var buf bytes.Buffer
	if err := Encode(tbl, &buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	var jt jsonTable
	if err := json.Unmarshal(buf.Bytes(), &jt); err != nil {
		t.Fatalf("output is not JSON: %s", err)
	}
	if len(jt.Vars) != 2 || jt.Vars[0] != "A" || jt.Vars[1] != "B" {
		t.Errorf("unexpected vars %v", jt.Vars)
	}
	if len(jt.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(jt.Rows))
	}
	if !jt.Rows[1].Result || jt.Rows[3].Result {
		t.Error("XOR results mangled")
	}
}

func TestEncodeTableFormat(t *testing.T) {
	tbl := mustTable(t, "A AND B")
	var buf bytes.Buffer
	if err := Encode(tbl, &buf, EncodeFormat(format.TableFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"A", "B", "RESULT", "0", "1"} {
		if !strings.Contains(strings.ToUpper(out), want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines < 5 {
		t.Errorf("rendered table too short:\n%s", out)
	}
}

func TestEncodeFlatColors(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	tbl := mustTable(t, "A")
	var buf bytes.Buffer
	if err := Encode(tbl, &buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected ANSI escapes in colored output")
	}
}

func TestFormulaPlain(t *testing.T) {
	node, err := parse.Parse([]byte("not (a and b)"))
	if err != nil {
		t.Fatal(err)
	}
	if got := Formula(node); got != "NOT (A AND B)" {
		t.Errorf("got %q", got)
	}
}

func TestFormulaColored(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	node, err := parse.Parse([]byte("NAND(A, B) -> TRUE"))
	if err != nil {
		t.Fatal(err)
	}
	got := Formula(node, EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Error("expected ANSI escapes in colored formula")
	}
	stripped := stripANSI(got)
	if stripped != node.String() {
		t.Errorf("stripped %q differs from plain %q", stripped, node.String())
	}
}

func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
