package parse

import (
	"errors"
	"testing"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/token"
)

type parseTest struct {
	in string
	e  error
}

var parseTests = []parseTest{
	{in: "A"},
	{in: "a"},
	{in: "TRUE"},
	{in: "false"},
	{in: "NOT A"},
	{in: "NOT NOT A"},
	{in: "A AND B"},
	{in: "A AND B AND C"},
	{in: "A OR B AND C"},
	{in: "(A OR B) AND C"},
	{in: "A XOR B"},
	{in: "A -> B -> C"},
	{in: "A <-> B"},
	{in: "NAND(A, B)"},
	{in: "NOR(A, B)"},
	{in: "NAND(NAND(A, B), NOR(C, D))"},
	{in: "NAND(A -> B, C)"},
	{in: "NOT (A AND B) OR NOT (A OR B)"},
	{in: "a and not b or c xor d -> e <-> f"},
	{in: "((((A))))"},
	{in: "", e: ErrEmpty},
	{in: "   ", e: ErrEmpty},
	{in: "AND", e: ErrAtom},
	{in: "A AND", e: ErrAtom},
	{in: "A AND OR B", e: ErrAtom},
	{in: ")", e: ErrAtom},
	{in: "(A", e: ErrUnbalanced},
	{in: "((A)", e: ErrUnbalanced},
	{in: "(A B)", e: ErrClose},
	{in: "A B", e: ErrTrailing},
	{in: "A)", e: ErrTrailing},
	{in: "NOT", e: ErrAtom},
	{in: "NAND A", e: ErrCall},
	{in: "NAND(A)", e: ErrArgCount},
	{in: "NAND(A, B, C)", e: ErrArgCount},
	{in: "NOR(A B)", e: ErrComma},
	{in: "NAND(A, B", e: ErrUnbalanced},
	{in: "AB", e: token.ErrBadWord},
	{in: "A & B", e: token.ErrUnexpected},
	{in: "A <- B", e: token.ErrUnexpected},
}

func TestParse(t *testing.T) {
	for _, tst := range parseTests {
		node, err := Parse([]byte(tst.in))
		if tst.e != nil {
			if err == nil {
				t.Errorf("%q: expected error %q, got none", tst.in, tst.e)
				continue
			}
			if !errors.Is(err, tst.e) {
				t.Errorf("%q: expected error %q, got %q", tst.in, tst.e, err)
			}
			var perr *ParseErr
			if !errors.As(err, &perr) {
				t.Errorf("%q: error %q is not a *ParseErr", tst.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %q", tst.in, err)
			continue
		}
		if node == nil {
			t.Errorf("%q: nil node without error", tst.in)
		}
	}
}

type shapeTest struct {
	in   string
	want *ast.Node
}

var shapeTests = []shapeTest{
	{"A", ast.Var('A')},
	{"a", ast.Var('A')},
	{"true AND B", ast.And(ast.Const(true), ast.Var('B'))},
	{
		"A AND B AND C",
		ast.And(ast.And(ast.Var('A'), ast.Var('B')), ast.Var('C')),
	},
	{
		"A OR B AND C",
		ast.Or(ast.Var('A'), ast.And(ast.Var('B'), ast.Var('C'))),
	},
	{
		"(A OR B) AND C",
		ast.And(ast.Or(ast.Var('A'), ast.Var('B')), ast.Var('C')),
	},
	{
		"A -> B -> C",
		ast.Implies(ast.Implies(ast.Var('A'), ast.Var('B')), ast.Var('C')),
	},
	{
		"A <-> B -> C",
		ast.Equiv(ast.Var('A'), ast.Implies(ast.Var('B'), ast.Var('C'))),
	},
	{
		"A XOR B OR C",
		ast.Xor(ast.Var('A'), ast.Or(ast.Var('B'), ast.Var('C'))),
	},
	{
		"NOT A AND B",
		ast.And(ast.Not(ast.Var('A')), ast.Var('B')),
	},
	{
		"NOT NOT A",
		ast.Not(ast.Not(ast.Var('A'))),
	},
	{
		"NAND(NAND(A, B), C)",
		ast.Nand(ast.Nand(ast.Var('A'), ast.Var('B')), ast.Var('C')),
	},
	{
		"NOR(A -> B, C AND D)",
		ast.Nor(
			ast.Implies(ast.Var('A'), ast.Var('B')),
			ast.And(ast.Var('C'), ast.Var('D')),
		),
	},
}

func TestParseShape(t *testing.T) {
	for _, tst := range shapeTests {
		node, err := Parse([]byte(tst.in))
		if err != nil {
			t.Errorf("%q: %s", tst.in, err)
			continue
		}
		if !ast.Equal(tst.want, node) {
			t.Errorf("%q: parsed to %s, want %s", tst.in, node, tst.want)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, tst := range parseTests {
		if tst.e != nil {
			continue
		}
		node, err := Parse([]byte(tst.in))
		if err != nil {
			t.Fatalf("%q: %s", tst.in, err)
		}
		re, err := Parse([]byte(node.String()))
		if err != nil {
			t.Errorf("%q: rendering %q does not reparse: %s", tst.in, node, err)
			continue
		}
		if !ast.Equal(node, re) {
			t.Errorf("%q: %q reparsed to a different tree %q", tst.in, node, re)
		}
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ast.Node]*token.Pos{}
	node, err := Parse([]byte("A AND NOT B"), ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 4 {
		t.Fatalf("expected 4 positions, got %d", len(positions))
	}
	// The AND connective maps to its operator token.
	if p := positions[node]; p == nil || p.I != 2 {
		t.Errorf("AND at %v, want offset 2", p)
	}
	if p := positions[node.Left]; p == nil || p.I != 0 {
		t.Errorf("A at %v, want offset 0", p)
	}
	if p := positions[node.Right]; p == nil || p.I != 6 {
		t.Errorf("NOT at %v, want offset 6", p)
	}
	if p := positions[node.Right.Left]; p == nil || p.I != 10 {
		t.Errorf("B at %v, want offset 10", p)
	}
}

func TestParseErrPositions(t *testing.T) {
	_, err := Parse([]byte("A AND OR B"))
	var perr *ParseErr
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseErr, got %v", err)
	}
	if perr.Fragment != "OR" {
		t.Errorf("fragment %q, want %q", perr.Fragment, "OR")
	}
	if perr.Pos == nil || perr.Pos.I != 6 {
		t.Errorf("pos %v, want offset 6", perr.Pos)
	}
}
