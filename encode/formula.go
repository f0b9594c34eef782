package encode

import (
	"strings"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/token"
)

// Formula renders y canonically, colored when the options carry
// colors.  The colored text retokenizes the plain rendering, so the
// two always agree byte for byte once the escapes are stripped.
func Formula(y *ast.Node, opts ...EncodeOption) string {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	s := y.String()
	if es.Color == nil {
		return s
	}
	toks, err := token.Tokenize(nil, []byte(s))
	if err != nil {
		return s
	}
	var sb strings.Builder
	cursor := 0
	for i := range toks {
		tok := &toks[i]
		sb.WriteString(s[cursor:tok.Pos.I])
		sb.WriteString(es.colorize(formulaAttr(tok.Type), tok.String()))
		cursor = tok.Pos.I + len(tok.Bytes)
	}
	sb.WriteString(s[cursor:])
	return sb.String()
}

func formulaAttr(tt token.TokenType) ColorAttr {
	switch tt {
	case token.TVar:
		return VarColor
	case token.TTrue, token.TFalse:
		return ConstColor
	case token.TLParen, token.TRParen, token.TComma:
		return GroupColor
	default:
		return OpColor
	}
}
