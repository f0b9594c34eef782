package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	formatted := canonicalize(doc)
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}

// canonicalize rewrites every well formed formula line in canonical
// form.  Blank lines, comments, and lines that did not parse are
// kept as they are.
func canonicalize(doc *document) string {
	out := make([]string, len(doc.lines))
	for i, ln := range doc.lines {
		if ln.node != nil {
			out[i] = ln.node.String()
		} else {
			out[i] = ln.text
		}
	}
	return strings.Join(out, "\n")
}
