package prop

import (
	"github.com/truthlab/go-prop/canon"
	"github.com/truthlab/go-prop/kmap"
	"github.com/truthlab/go-prop/table"
)

// Analysis bundles everything derivable from a single truth table.
type Analysis struct {
	Formula *Formula
	Table   *table.Table

	// DNF and CNF are the canonical forms, or the constant strings
	// "False" and "True" when no row supports a clause.
	DNF string
	CNF string

	// KMap is nil unless the formula has 2, 3, or 4 variables.
	KMap *kmap.Map

	Tautology     bool
	Contradiction bool
}

// Analyze compiles text and derives its truth table, canonical
// forms, classification, and, when the variable count supports one,
// its Karnaugh map.
func Analyze(text string) (*Analysis, error) {
	f, err := Compile(text)
	if err != nil {
		return nil, err
	}
	t, err := f.Table()
	if err != nil {
		return nil, err
	}
	a := &Analysis{
		Formula:       f,
		Table:         t,
		DNF:           canon.DNF(t),
		CNF:           canon.CNF(t),
		Tautology:     t.IsTautology(),
		Contradiction: t.IsContradiction(),
	}
	a.KMap, _ = kmap.Build(t)
	return a, nil
}
