package kmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/truthlab/go-prop/parse"
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

func mustMap(t *testing.T, src string) *Map {
	t.Helper()
	node, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("%q: %s", src, err)
	}
	tbl, err := table.Generate(token.Variables([]byte(src)), node)
	if err != nil {
		t.Fatalf("%q: %s", src, err)
	}
	m, ok := Build(tbl)
	if !ok {
		t.Fatalf("%q: no map form", src)
	}
	return m
}

func TestBuildUnsupported(t *testing.T) {
	for _, src := range []string{"A", "TRUE", "A AND B AND C AND D AND E"} {
		node, err := parse.Parse([]byte(src))
		if err != nil {
			t.Fatalf("%q: %s", src, err)
		}
		tbl, err := table.Generate(token.Variables([]byte(src)), node)
		if err != nil {
			t.Fatalf("%q: %s", src, err)
		}
		if m, ok := Build(tbl); ok || m != nil {
			t.Errorf("%q: expected no map form", src)
		}
	}
}

func TestBuildCells(t *testing.T) {
	m := mustMap(t, "A AND B")
	if len(m.Cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(m.Cells))
	}
	for _, tc := range []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	} {
		got, ok := m.Lookup(tc.a, tc.b)
		if !ok {
			t.Fatalf("Lookup(%t, %t) missing", tc.a, tc.b)
		}
		if got != tc.want {
			t.Errorf("Lookup(%t, %t) = %t, want %t", tc.a, tc.b, got, tc.want)
		}
	}
	if _, ok := m.Lookup(true); ok {
		t.Error("Lookup with the wrong arity succeeded")
	}
}

func TestKeyRoundTrip(t *testing.T) {
	values := []bool{true, false, true, true}
	k := KeyOf(values...)
	if k != 0b1011 {
		t.Fatalf("KeyOf = %04b, want 1011", k)
	}
	if diff := cmp.Diff(values, k.Values(4)); diff != "" {
		t.Errorf("values differ (-want +got):\n%s", diff)
	}
}

func TestGridLayout3(t *testing.T) {
	m := mustMap(t, "A AND (B OR C)")
	g := NewGrid(m)
	if diff := cmp.Diff([]string{"0", "1"}, g.RowLabels); diff != "" {
		t.Errorf("row labels differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"00", "01", "11", "10"}, g.ColLabels); diff != "" {
		t.Errorf("col labels differ (-want +got):\n%s", diff)
	}
	if len(g.RowVars) != 1 || g.RowVars[0] != 'A' {
		t.Errorf("unexpected row vars %v", g.RowVars)
	}
	if len(g.ColVars) != 2 || g.ColVars[0] != 'B' || g.ColVars[1] != 'C' {
		t.Errorf("unexpected col vars %v", g.ColVars)
	}
	// Row A=1 holds B OR C in Gray column order 00, 01, 11, 10.
	want := [][]bool{
		{false, false, false, false},
		{false, true, true, true},
	}
	if diff := cmp.Diff(want, g.Cells); diff != "" {
		t.Errorf("cells differ (-want +got):\n%s", diff)
	}
}

func TestGridLayout4(t *testing.T) {
	m := mustMap(t, "A AND B AND C AND D")
	g := NewGrid(m)
	if diff := cmp.Diff([]string{"00", "01", "11", "10"}, g.RowLabels); diff != "" {
		t.Errorf("row labels differ (-want +got):\n%s", diff)
	}
	for r, row := range g.Cells {
		for c, cell := range row {
			want := g.RowLabels[r] == "11" && g.ColLabels[c] == "11"
			if cell != want {
				t.Errorf("cell [%d][%d] = %t, want %t", r, c, cell, want)
			}
		}
	}
}

// TestGridGrayAdjacency checks the defining property: neighboring
// rows and columns, wrapping around, differ in exactly one bit.
func TestGridGrayAdjacency(t *testing.T) {
	for _, bits := range []int{1, 2} {
		codes := grayCodes(bits)
		n := len(codes)
		for i := range codes {
			next := codes[(i+1)%n]
			diff := codes[i] ^ next
			if diff == 0 || diff&(diff-1) != 0 {
				t.Errorf("%d bits: codes %d and %d differ in more than one bit", bits, codes[i], next)
			}
		}
	}
}
