package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/canon"
	"github.com/truthlab/go-prop/encode"
	"github.com/truthlab/go-prop/table"
)

// hoverTableVars bounds the size of the truth table computed for a
// hover summary.
const hoverTableVars = 12

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	line := int(params.Position.Line)
	if line >= len(doc.lines) {
		return nil, nil
	}
	ln := doc.lines[line]
	if ln.node == nil {
		return nil, nil
	}

	hoverText := buildHoverText(ln, int(params.Position.Character))
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func buildHoverText(ln *docLine, col int) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("**Formula:** `%s`", ln.node.String()))
	if sub := nodeAtColumn(ln, col); sub != nil && sub != ln.node {
		parts = append(parts, fmt.Sprintf("**At cursor:** `%s`", sub.String()))
	}

	vars := ln.node.Vars()
	if len(vars) > 0 {
		ss := make([]string, len(vars))
		for i, v := range vars {
			ss[i] = v.String()
		}
		parts = append(parts, fmt.Sprintf("**Vars:** %s", strings.Join(ss, " ")))
	}
	if len(vars) > hoverTableVars {
		return strings.Join(parts, "\n\n")
	}

	t, err := table.Generate(vars, ln.node)
	if err != nil {
		return strings.Join(parts, "\n\n")
	}
	switch {
	case t.IsTautology():
		parts = append(parts, "tautology")
	case t.IsContradiction():
		parts = append(parts, "contradiction")
	default:
		parts = append(parts, fmt.Sprintf("%d of %d rows true", t.TrueCount(), len(t.Rows)))
	}
	parts = append(parts, fmt.Sprintf("**DNF:** `%s`", canon.DNF(t)))
	parts = append(parts, fmt.Sprintf("**CNF:** `%s`", canon.CNF(t)))
	if len(vars) <= 4 {
		parts = append(parts, "```\n"+encode.MustString(t)+"\n```")
	}

	return strings.Join(parts, "\n\n")
}

// nodeAtColumn finds the subformula whose operator or atom token
// starts closest to the left of the cursor.
func nodeAtColumn(ln *docLine, col int) *ast.Node {
	var best *ast.Node
	bestI := -1
	for node, pos := range ln.positions {
		if pos.I <= col && pos.I > bestI {
			best, bestI = node, pos.I
		}
	}
	return best
}
