package parse

import (
	"errors"

	"github.com/truthlab/go-prop/ast"
	"github.com/truthlab/go-prop/debug"
	"github.com/truthlab/go-prop/token"
)

// Parse parses the formula in d.  Every error it returns is a
// [*ParseErr].
func Parse(d []byte, opts ...ParseOption) (*ast.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, wrapTokenizeErr(err)
	}
	if len(toks) == 0 {
		return nil, &ParseErr{Err: ErrEmpty}
	}
	pi := 0
	res, err := parseExpr(toks, 1, &pi, pOpts)
	if err != nil {
		return nil, err
	}
	if pi < len(toks) {
		return nil, errAt(ErrTrailing, &toks[pi])
	}
	if debug.Parse() {
		debug.Logf("parsed %q to %s\n", d, res)
	}
	return res, nil
}

func wrapTokenizeErr(err error) error {
	var terr *token.TokenizeErr
	if errors.As(err, &terr) {
		return &ParseErr{Err: terr.Err, Pos: &terr.Pos}
	}
	return &ParseErr{Err: err}
}

var binOps = map[token.TokenType]struct {
	prec int
	mk   func(l, r *ast.Node) *ast.Node
}{
	token.TEquiv:   {1, ast.Equiv},
	token.TImplies: {2, ast.Implies},
	token.TXor:     {3, ast.Xor},
	token.TOr:      {4, ast.Or},
	token.TAnd:     {5, ast.And},
}

const maxPrec = 5

// parseExpr parses the binary connective ladder by precedence
// climbing.  Each level folds its operator left associatively over
// the level above it.
func parseExpr(toks []token.Token, prec int, pi *int, opts *parseOpts) (*ast.Node, error) {
	if prec > maxPrec {
		return parseNot(toks, pi, opts)
	}
	res, err := parseExpr(toks, prec+1, pi, opts)
	if err != nil {
		return nil, err
	}
	for *pi < len(toks) {
		op, ok := binOps[toks[*pi].Type]
		if !ok || op.prec != prec {
			break
		}
		opTok := &toks[*pi]
		*pi++
		right, err := parseExpr(toks, prec+1, pi, opts)
		if err != nil {
			return nil, err
		}
		res = op.mk(res, right)
		trackPos(res, opTok.Pos, opts)
	}
	return res, nil
}

func parseNot(toks []token.Token, pi *int, opts *parseOpts) (*ast.Node, error) {
	if *pi < len(toks) && toks[*pi].Type == token.TNot {
		opTok := &toks[*pi]
		*pi++
		x, err := parseNot(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		res := ast.Not(x)
		trackPos(res, opTok.Pos, opts)
		return res, nil
	}
	return parseAtom(toks, pi, opts)
}

func parseAtom(toks []token.Token, pi *int, opts *parseOpts) (*ast.Node, error) {
	if *pi >= len(toks) {
		return nil, &ParseErr{Err: ErrAtom, Pos: endPos(toks)}
	}
	tok := &toks[*pi]
	switch tok.Type {
	case token.TVar:
		*pi++
		res := ast.Var(tok.Variable())
		trackPos(res, tok.Pos, opts)
		return res, nil
	case token.TTrue, token.TFalse:
		*pi++
		res := ast.Const(tok.Type == token.TTrue)
		trackPos(res, tok.Pos, opts)
		return res, nil
	case token.TLParen:
		open := tok
		*pi++
		res, err := parseExpr(toks, 1, pi, opts)
		if err != nil {
			return nil, err
		}
		switch {
		case *pi >= len(toks):
			return nil, errAt(ErrUnbalanced, open)
		case toks[*pi].Type != token.TRParen:
			return nil, errAt(ErrClose, &toks[*pi])
		}
		*pi++
		return res, nil
	case token.TNand, token.TNor:
		return parseCall(toks, pi, opts)
	default:
		return nil, errAt(ErrAtom, tok)
	}
}

// parseCall parses the NAND(x, y) and NOR(x, y) forms.  The arguments
// are full formulas, so calls nest.
func parseCall(toks []token.Token, pi *int, opts *parseOpts) (*ast.Node, error) {
	call := &toks[*pi]
	*pi++
	if *pi >= len(toks) || toks[*pi].Type != token.TLParen {
		return nil, errAt(ErrCall, call)
	}
	open := &toks[*pi]
	*pi++
	lhs, err := parseExpr(toks, 1, pi, opts)
	if err != nil {
		return nil, err
	}
	switch {
	case *pi >= len(toks):
		return nil, errAt(ErrUnbalanced, open)
	case toks[*pi].Type == token.TRParen:
		return nil, errAt(ErrArgCount, &toks[*pi])
	case toks[*pi].Type != token.TComma:
		return nil, errAt(ErrComma, &toks[*pi])
	}
	*pi++
	rhs, err := parseExpr(toks, 1, pi, opts)
	if err != nil {
		return nil, err
	}
	switch {
	case *pi >= len(toks):
		return nil, errAt(ErrUnbalanced, open)
	case toks[*pi].Type == token.TComma:
		return nil, errAt(ErrArgCount, &toks[*pi])
	case toks[*pi].Type != token.TRParen:
		return nil, errAt(ErrClose, &toks[*pi])
	}
	*pi++
	var res *ast.Node
	if call.Type == token.TNand {
		res = ast.Nand(lhs, rhs)
	} else {
		res = ast.Nor(lhs, rhs)
	}
	trackPos(res, call.Pos, opts)
	return res, nil
}

func endPos(toks []token.Token) *token.Pos {
	return toks[len(toks)-1].Pos
}
