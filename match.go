package prop

import (
	"github.com/truthlab/go-prop/ast"
)

// Match reports whether sub occurs within y as a subformula, compared
// structurally with [ast.Equal].  Every formula matches itself.
func Match(y, sub *ast.Node) bool {
	found := false
	y.Walk(func(n *ast.Node) bool {
		if found || ast.Equal(n, sub) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Contains reports whether sub occurs as a subformula of f.
func (f *Formula) Contains(sub *Formula) bool {
	return Match(f.node, sub.node)
}
