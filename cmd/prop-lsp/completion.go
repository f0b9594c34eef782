package main

import (
	"context"

	"go.lsp.dev/protocol"
)

var keywordCompletions = []string{
	"AND", "OR", "NOT", "XOR", "NAND", "NOR", "TRUE", "FALSE",
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	completions := []protocol.CompletionItem{}
	for _, kw := range keywordCompletions {
		completions = append(completions, protocol.CompletionItem{
			Label:      kw,
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: kw,
		})
	}
	// Variables already used anywhere in the document.
	for _, v := range doc.vars() {
		completions = append(completions, protocol.CompletionItem{
			Label:      v.String(),
			Kind:       protocol.CompletionItemKindVariable,
			InsertText: v.String(),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions,
	}, nil
}
