package eval

import (
	"errors"
	"testing"

	"github.com/truthlab/go-prop/parse"
)

var scriptFormulas = []string{
	"A",
	"NOT A",
	"TRUE AND A",
	"A AND B",
	"A OR B",
	"A XOR B",
	"A -> B",
	"A <-> B",
	"NAND(A, B)",
	"NOR(A, B)",
	"(A OR B) AND NOT C",
	"A -> B -> C",
	"NAND(NOR(A, B), A XOR C)",
	"A AND B OR C <-> NOT A XOR B",
}

// TestScriptAgreesWithEval drives both evaluators over every
// assignment of every formula's variables.
func TestScriptAgreesWithEval(t *testing.T) {
	for _, src := range scriptFormulas {
		node, err := parse.Parse([]byte(src))
		if err != nil {
			t.Fatalf("%q: %s", src, err)
		}
		script, err := Compile(node)
		if err != nil {
			t.Fatalf("%q: %s", src, err)
		}
		vars := node.Vars()
		n := len(vars)
		for i := 0; i < 1<<n; i++ {
			asg := make(Assignment, n)
			for j, v := range vars {
				asg[v] = i>>(n-1-j)&1 == 1
			}
			want, err := Eval(node, asg)
			if err != nil {
				t.Fatalf("%q under %v: %s", src, asg, err)
			}
			got, err := script.Eval(asg)
			if err != nil {
				t.Fatalf("%q under %v: %s", src, asg, err)
			}
			if got != want {
				t.Errorf("%q under %v: script %t, eval %t", src, asg, got, want)
			}
		}
	}
}

func TestScriptUnbound(t *testing.T) {
	node, err := parse.Parse([]byte("A AND B"))
	if err != nil {
		t.Fatal(err)
	}
	script, err := Compile(node)
	if err != nil {
		t.Fatal(err)
	}
	_, err = script.Eval(Assignment{'A': true})
	if !errors.Is(err, ErrUnbound) {
		t.Errorf("expected ErrUnbound, got %v", err)
	}
}

func TestScriptVars(t *testing.T) {
	node, err := parse.Parse([]byte("C AND A OR C"))
	if err != nil {
		t.Fatal(err)
	}
	script, err := Compile(node)
	if err != nil {
		t.Fatal(err)
	}
	vars := script.Vars()
	if len(vars) != 2 || vars[0] != 'A' || vars[1] != 'C' {
		t.Errorf("unexpected vars %v", vars)
	}
}
