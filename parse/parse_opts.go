package parse

import (
	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/token"
)

type parseOpts struct {
	positions map[*ast.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the source position of every node the parser
// builds into m.  Variables and constants map to their own token,
// connectives map to their operator token.
func ParsePositions(m map[*ast.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

func trackPos(y *ast.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions == nil {
		return
	}
	opts.positions[y] = pos
}
