package prop

import "testing"

type matchTest struct {
	y     string
	sub   string
	found bool
}

var matchTests = []matchTest{
	{"A", "A", true},
	{"A AND (B OR C)", "B OR C", true},
	{"A AND (B OR C)", "A AND B", false},
	{"A AND B", "B AND A", false},
	{"NOT NOT A", "NOT A", true},
	{"A -> B", "B", true},
	{"NAND(A, B)", "A AND B", false},
	{"(A XOR B) <-> (A XOR B)", "A XOR B", true},
	{"TRUE OR A", "TRUE", true},
}

func TestMatch(t *testing.T) {
	for _, tst := range matchTests {
		f, err := Compile(tst.y)
		if err != nil {
			t.Fatalf("%q: %v", tst.y, err)
		}
		sub, err := Compile(tst.sub)
		if err != nil {
			t.Fatalf("%q: %v", tst.sub, err)
		}
		if got := f.Contains(sub); got != tst.found {
			t.Errorf("%q contains %q: got %t want %t", tst.y, tst.sub, got, tst.found)
		}
	}
}
