package eval

import (
	"errors"
	"testing"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/parse"
)

type evalTest struct {
	in   string
	asg  Assignment
	want bool
}

var evalTests = []evalTest{
	{"A", Assignment{'A': true}, true},
	{"A", Assignment{'A': false}, false},
	{"NOT A", Assignment{'A': true}, false},
	{"TRUE", nil, true},
	{"FALSE", nil, false},
	{"A AND B", Assignment{'A': true, 'B': true}, true},
	{"A AND B", Assignment{'A': true, 'B': false}, false},
	{"A OR B", Assignment{'A': false, 'B': false}, false},
	{"A OR B", Assignment{'A': false, 'B': true}, true},
	{"A XOR B", Assignment{'A': true, 'B': true}, false},
	{"A XOR B", Assignment{'A': true, 'B': false}, true},
	// Implication is false only when the antecedent holds and the
	// consequent does not.
	{"A -> B", Assignment{'A': false, 'B': false}, true},
	{"A -> B", Assignment{'A': false, 'B': true}, true},
	{"A -> B", Assignment{'A': true, 'B': false}, false},
	{"A -> B", Assignment{'A': true, 'B': true}, true},
	{"A <-> B", Assignment{'A': false, 'B': false}, true},
	{"A <-> B", Assignment{'A': true, 'B': false}, false},
	{"NAND(A, B)", Assignment{'A': true, 'B': true}, false},
	{"NAND(A, B)", Assignment{'A': true, 'B': false}, true},
	{"NOR(A, B)", Assignment{'A': false, 'B': false}, true},
	{"NOR(A, B)", Assignment{'A': false, 'B': true}, false},
	{"NOT (A AND B) <-> NAND(A, B)", Assignment{'A': true, 'B': false}, true},
	{"(A OR B) AND C", Assignment{'A': true, 'B': false, 'C': true}, true},
	{"A -> B -> C", Assignment{'A': true, 'B': false, 'C': false}, true},
}

func TestEval(t *testing.T) {
	for _, tst := range evalTests {
		node, err := parse.Parse([]byte(tst.in))
		if err != nil {
			t.Fatalf("%q: %s", tst.in, err)
		}
		got, err := Eval(node, tst.asg)
		if err != nil {
			t.Errorf("%q under %v: %s", tst.in, tst.asg, err)
			continue
		}
		if got != tst.want {
			t.Errorf("%q under %v: got %t, want %t", tst.in, tst.asg, got, tst.want)
		}
	}
}

func TestEvalUnbound(t *testing.T) {
	node, err := parse.Parse([]byte("A AND B"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Eval(node, Assignment{'A': false})
	if err == nil {
		t.Fatal("expected an error for the unbound B")
	}
	if !errors.Is(err, ErrUnbound) {
		t.Errorf("expected ErrUnbound, got %q", err)
	}
	var everr *EvalErr
	if !errors.As(err, &everr) {
		t.Fatalf("error %q is not an *EvalErr", err)
	}
	if everr.Var != 'B' {
		t.Errorf("expected B unbound, got %s", everr.Var)
	}
}

func TestEvalUnboundNotShortCircuited(t *testing.T) {
	// A false antecedent must not mask an unbound consequent.
	node := ast.And(ast.Var('A'), ast.Var('B'))
	_, err := Eval(node, Assignment{'A': false})
	if !errors.Is(err, ErrUnbound) {
		t.Errorf("expected ErrUnbound, got %v", err)
	}
}

func TestAssignmentClone(t *testing.T) {
	a := Assignment{'A': true, 'B': false}
	b := a.Clone()
	b['A'] = false
	if !a['A'] {
		t.Error("mutating a clone changed its source")
	}
}
