// Package kmap arranges truth tables into Karnaugh maps.
//
// Maps are defined for 2, 3, and 4 variables only.  [Build] reports
// support with its second result rather than an error: an unsupported
// variable count is an expected case for callers, not a failure.
package kmap

import (
	"github.com/truthlab/go-prop/table"
	"github.com/truthlab/go-prop/token"
)

// Key packs one cell's variable values into a bitmask.  The first
// variable is the most significant bit, matching truth table row
// order, so a complete table's row i populates Key(i).
type Key uint8

// KeyOf packs values in variable order.
func KeyOf(values ...bool) Key {
	var k Key
	for _, v := range values {
		k <<= 1
		if v {
			k |= 1
		}
	}
	return k
}

// Values unpacks the key into n variable values.
func (k Key) Values(n int) []bool {
	values := make([]bool, n)
	for j := 0; j < n; j++ {
		values[j] = k>>(n-1-j)&1 == 1
	}
	return values
}

type Map struct {
	Vars  []token.Variable
	Cells map[Key]bool
}

// Build arranges t into a Karnaugh map.  The second result is false
// when the table's variable count has no map form.
func Build(t *table.Table) (*Map, bool) {
	n := len(t.Vars)
	if n < 2 || n > 4 {
		return nil, false
	}
	m := &Map{
		Vars:  append([]token.Variable(nil), t.Vars...),
		Cells: make(map[Key]bool, len(t.Rows)),
	}
	for _, row := range t.Rows {
		m.Cells[KeyOf(row.Values...)] = row.Result
	}
	return m, true
}

// Lookup returns the cell value for the given variable values.  The
// second result is false when the number of values does not match the
// map's variables.
func (m *Map) Lookup(values ...bool) (bool, bool) {
	if len(values) != len(m.Vars) {
		return false, false
	}
	v, ok := m.Cells[KeyOf(values...)]
	return v, ok
}
