package main

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/truthlab/go-prop/token"
)

// Legend indices, matching the legend advertised in main.go.
const (
	semComment = iota
	semKeyword
	semVariable
	semOperator
)

type semToken struct {
	line, char, length, typ uint32
}

// collectSemanticTokens tokenizes the lines in [from, to] and delta
// encodes them per the LSP semantic token wire format.  Lines that
// do not tokenize contribute nothing; diagnostics cover them.
func collectSemanticTokens(doc *document, from, to int) []uint32 {
	var list []semToken
	for _, ln := range doc.lines {
		if ln.n < from || ln.n > to {
			continue
		}
		if commentLine(ln.text) {
			list = append(list, semToken{
				line:   uint32(ln.n),
				length: uint32(len(ln.text)),
				typ:    semComment,
			})
			continue
		}
		if blankLine(ln.text) {
			continue
		}
		toks, err := token.Tokenize(nil, []byte(ln.text))
		if err != nil {
			continue
		}
		for i := range toks {
			t := &toks[i]
			typ, ok := semType(t.Type)
			if !ok {
				continue
			}
			list = append(list, semToken{
				line:   uint32(ln.n),
				char:   uint32(t.Pos.I),
				length: uint32(len(t.Bytes)),
				typ:    typ,
			})
		}
	}

	data := make([]uint32, 0, 5*len(list))
	var prevLine, prevChar uint32
	for _, ti := range list {
		deltaLine := ti.line - prevLine
		deltaChar := ti.char
		if deltaLine == 0 {
			deltaChar = ti.char - prevChar
		}
		data = append(data, deltaLine, deltaChar, ti.length, ti.typ, 0)
		prevLine = ti.line
		prevChar = ti.char
	}
	return data
}

func semType(tt token.TokenType) (uint32, bool) {
	switch tt {
	case token.TVar:
		return semVariable, true
	case token.TTrue, token.TFalse, token.TNot, token.TAnd, token.TOr,
		token.TXor, token.TNand, token.TNor:
		return semKeyword, true
	case token.TImplies, token.TEquiv:
		return semOperator, true
	}
	return 0, false
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc, 0, len(doc.lines)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc, int(params.Range.Start.Line), int(params.Range.End.Line)),
	}, nil
}
