// Package worksheet loads and checks problem sets.
//
// A worksheet is a YAML document listing formulas, each with optional
// expectations about its classification, canonical forms, or
// equivalence to an answer formula.  Running a worksheet checks every
// expectation and reports per problem results, which makes formula
// exercises scriptable.
package worksheet

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Worksheet struct {
	Name     string     `yaml:"name"`
	Problems []*Problem `yaml:"problems"`
}

type Problem struct {
	Name    string  `yaml:"name"`
	Formula string  `yaml:"formula"`
	Expect  *Expect `yaml:"expect,omitempty"`
}

// Expect holds a problem's expectations.  Nil fields are unchecked,
// so a problem with no expect block only has to parse.
type Expect struct {
	Tautology     *bool  `yaml:"tautology,omitempty"`
	Contradiction *bool  `yaml:"contradiction,omitempty"`
	TrueRows      *int   `yaml:"true-rows,omitempty"`
	DNF           string `yaml:"dnf,omitempty"`
	CNF           string `yaml:"cnf,omitempty"`
	EquivalentTo  string `yaml:"equivalent-to,omitempty"`
}

// Load reads and parses the worksheet at path.
func Load(path string) (*Worksheet, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Parse parses a worksheet document.
func Parse(d []byte) (*Worksheet, error) {
	w := &Worksheet{}
	if err := yaml.Unmarshal(d, w); err != nil {
		return nil, err
	}
	for i, p := range w.Problems {
		if p.Formula == "" {
			return nil, fmt.Errorf("problem %d (%s): no formula", i, p.Name)
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("problem %d", i+1)
		}
	}
	return w, nil
}
