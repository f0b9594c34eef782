package table

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/truthlab/go-prop/eval"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/token"
)

func mustParse(t *testing.T, src string) *Table {
	t.Helper()
	node, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("%q: %s", src, err)
	}
	tbl, err := Generate(token.Variables([]byte(src)), node)
	if err != nil {
		t.Fatalf("%q: %s", src, err)
	}
	return tbl
}

func TestGenerateOrder(t *testing.T) {
	tbl := mustParse(t, "A AND B")
	if len(tbl.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(tbl.Rows))
	}
	wantValues := [][]bool{
		{false, false},
		{false, true},
		{true, false},
		{true, true},
	}
	wantResults := []bool{false, false, false, true}
	for i, row := range tbl.Rows {
		if diff := cmp.Diff(wantValues[i], row.Values); diff != "" {
			t.Errorf("row %d values differ (-want +got):\n%s", i, diff)
		}
		if row.Result != wantResults[i] {
			t.Errorf("row %d result %t, want %t", i, row.Result, wantResults[i])
		}
	}
}

func TestGenerateFirstVarMostSignificant(t *testing.T) {
	tbl := mustParse(t, "A OR B OR C")
	if len(tbl.Rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(tbl.Rows))
	}
	// A flips halfway down, C flips every row.
	if tbl.Rows[3].Values[0] || !tbl.Rows[4].Values[0] {
		t.Error("first variable is not the most significant bit")
	}
	if tbl.Rows[0].Values[2] || !tbl.Rows[1].Values[2] {
		t.Error("last variable is not the least significant bit")
	}
}

func TestGenerateNoVars(t *testing.T) {
	tbl := mustParse(t, "TRUE AND FALSE")
	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tbl.Rows))
	}
	if len(tbl.Rows[0].Values) != 0 {
		t.Errorf("expected no values, got %v", tbl.Rows[0].Values)
	}
	if tbl.Rows[0].Result {
		t.Error("TRUE AND FALSE is not false")
	}
	if !tbl.IsContradiction() {
		t.Error("single false row is not a contradiction")
	}
}

func TestClassification(t *testing.T) {
	taut := mustParse(t, "A OR NOT A")
	if !taut.IsTautology() || taut.IsContradiction() {
		t.Error("A OR NOT A misclassified")
	}
	contra := mustParse(t, "A AND NOT A")
	if contra.IsTautology() || !contra.IsContradiction() {
		t.Error("A AND NOT A misclassified")
	}
	mixed := mustParse(t, "A AND B")
	if mixed.IsTautology() || mixed.IsContradiction() {
		t.Error("A AND B misclassified")
	}
	if got := mixed.TrueCount(); got != 1 {
		t.Errorf("A AND B has %d true rows, want 1", got)
	}
	if !mixed.Complete() {
		t.Error("generated table not complete")
	}
}

func TestGenerateUnboundVar(t *testing.T) {
	node, err := parse.Parse([]byte("A AND B"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Generate([]token.Variable{'A'}, node)
	if !errors.Is(err, eval.ErrUnbound) {
		t.Errorf("expected ErrUnbound, got %v", err)
	}
}

func TestGenerateExtraVars(t *testing.T) {
	node, err := parse.Parse([]byte("A"))
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := Generate([]token.Variable{'A', 'B'}, node)
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(tbl.Rows))
	}
	wantResults := []bool{false, false, true, true}
	for i, row := range tbl.Rows {
		if row.Result != wantResults[i] {
			t.Errorf("row %d result %t, want %t", i, row.Result, wantResults[i])
		}
	}
}

func TestAssignment(t *testing.T) {
	tbl := mustParse(t, "A XOR B")
	asg := tbl.Assignment(2)
	want := eval.Assignment{'A': true, 'B': false}
	if diff := cmp.Diff(want, asg); diff != "" {
		t.Errorf("assignment differs (-want +got):\n%s", diff)
	}
}

func TestEachStops(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Each([]token.Variable{'A', 'B'}, func(eval.Assignment, []bool) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected stop error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}
