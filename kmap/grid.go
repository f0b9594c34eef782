package kmap

import (
	"strconv"

	"github.com/truthlab/go-prop/token"
)

// Grid is a map laid out for rendering.  Rows and columns follow Gray
// code order, so adjacent cells, wrapping included, differ in exactly
// one variable:
//
//	2 vars: 2x2, rows A, cols B
//	3 vars: 2x4, rows A, cols BC
//	4 vars: 4x4, rows AB, cols CD
type Grid struct {
	RowVars   []token.Variable
	ColVars   []token.Variable
	RowLabels []string
	ColLabels []string
	Cells     [][]bool
}

// NewGrid lays the map out.  The leading variables index rows, the
// trailing ones columns.
func NewGrid(m *Map) *Grid {
	n := len(m.Vars)
	rowBits := 1
	if n == 4 {
		rowBits = 2
	}
	colBits := n - rowBits
	rowCodes := grayCodes(rowBits)
	colCodes := grayCodes(colBits)
	g := &Grid{
		RowVars:   append([]token.Variable(nil), m.Vars[:rowBits]...),
		ColVars:   append([]token.Variable(nil), m.Vars[rowBits:]...),
		RowLabels: codeLabels(rowCodes, rowBits),
		ColLabels: codeLabels(colCodes, colBits),
		Cells:     make([][]bool, len(rowCodes)),
	}
	for r, rc := range rowCodes {
		g.Cells[r] = make([]bool, len(colCodes))
		for c, cc := range colCodes {
			g.Cells[r][c] = m.Cells[Key(rc)<<colBits|Key(cc)]
		}
	}
	return g
}

// grayCodes returns the 1<<bits codes in reflected Gray order.
func grayCodes(bits int) []uint8 {
	codes := make([]uint8, 1<<bits)
	for i := range codes {
		codes[i] = uint8(i ^ i>>1)
	}
	return codes
}

// codeLabels renders codes as fixed width binary strings.
func codeLabels(codes []uint8, bits int) []string {
	labels := make([]string, len(codes))
	for i, c := range codes {
		s := strconv.FormatUint(uint64(c), 2)
		for len(s) < bits {
			s = "0" + s
		}
		labels[i] = s
	}
	return labels
}
