package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokenizeTest struct {
	in    string
	types []TokenType
	e     error
}

var tokenizeTests = []tokenizeTest{
	{in: "", types: nil},
	{in: "A", types: []TokenType{TVar}},
	{in: "a", types: []TokenType{TVar}},
	{in: "A AND B", types: []TokenType{TVar, TAnd, TVar}},
	{in: "a and b", types: []TokenType{TVar, TAnd, TVar}},
	{in: "NOT A", types: []TokenType{TNot, TVar}},
	{in: "A OR B XOR C", types: []TokenType{TVar, TOr, TVar, TXor, TVar}},
	{in: "A -> B", types: []TokenType{TVar, TImplies, TVar}},
	{in: "A->B", types: []TokenType{TVar, TImplies, TVar}},
	{in: "A <-> B", types: []TokenType{TVar, TEquiv, TVar}},
	{in: "NAND(A, B)", types: []TokenType{TNand, TLParen, TVar, TComma, TVar, TRParen}},
	{in: "NOR(A,B)", types: []TokenType{TNor, TLParen, TVar, TComma, TVar, TRParen}},
	{in: "(A)", types: []TokenType{TLParen, TVar, TRParen}},
	{in: "TRUE OR FALSE", types: []TokenType{TTrue, TOr, TFalse}},
	{in: "true", types: []TokenType{TTrue}},
	{in: "A\nAND\nB", types: []TokenType{TVar, TAnd, TVar}},
	{in: "\tA  AND\r\nB", types: []TokenType{TVar, TAnd, TVar}},
	{in: "A - B", e: ErrUnexpected},
	{in: "A <- B", e: ErrUnexpected},
	{in: "A & B", e: ErrUnexpected},
	{in: "A AND 1", e: ErrUnexpected},
	{in: "AB", e: ErrBadWord},
	{in: "A1 AND B", e: ErrBadWord},
	{in: "ANDY", e: ErrBadWord},
	{in: "A AND \xff", e: ErrBadUTF8},
	{in: "A ∧ B", e: ErrUnexpected},
}

func TestTokenize(t *testing.T) {
	for _, tst := range tokenizeTests {
		toks, err := Tokenize(nil, []byte(tst.in))
		if tst.e != nil {
			if err == nil {
				t.Errorf("%q: expected error %q, got none", tst.in, tst.e)
				continue
			}
			if !errors.Is(err, tst.e) {
				t.Errorf("%q: expected error %q, got %q", tst.in, tst.e, err)
			}
			var terr *TokenizeErr
			if !errors.As(err, &terr) {
				t.Errorf("%q: error %q is not a *TokenizeErr", tst.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %q", tst.in, err)
			continue
		}
		var types []TokenType
		for i := range toks {
			types = append(types, toks[i].Type)
		}
		if diff := cmp.Diff(tst.types, types); diff != "" {
			t.Errorf("%q: token types differ (-want +got):\n%s", tst.in, diff)
		}
	}
}

func TestTokenizeAppends(t *testing.T) {
	dst := make([]Token, 0, 8)
	dst, err := Tokenize(dst, []byte("A AND"))
	if err != nil {
		t.Fatal(err)
	}
	dst, err = Tokenize(dst, []byte("B"))
	if err != nil {
		t.Fatal(err)
	}
	if len(dst) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(dst))
	}
	if dst[2].Type != TVar || dst[2].Variable() != 'B' {
		t.Errorf("unexpected appended token %s", dst[2].Info())
	}
}

func TestTokenVariable(t *testing.T) {
	toks, err := Tokenize(nil, []byte("q AND Z"))
	if err != nil {
		t.Fatal(err)
	}
	if v := toks[0].Variable(); v != 'Q' {
		t.Errorf("expected Q, got %s", v)
	}
	if v := toks[2].Variable(); v != 'Z' {
		t.Errorf("expected Z, got %s", v)
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("A AND\nNOT B"))
	if err != nil {
		t.Fatal(err)
	}
	// NOT sits at offset 6, line 1, col 0.
	not := toks[2]
	if not.Type != TNot {
		t.Fatalf("expected TNot, got %s", not.Type)
	}
	if not.Pos.I != 6 {
		t.Errorf("expected offset 6, got %d", not.Pos.I)
	}
	line, col := not.Pos.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("expected line=1 col=0, got line=%d col=%d", line, col)
	}
}

func TestTokenizeErrPos(t *testing.T) {
	_, err := Tokenize(nil, []byte("A AND ?"))
	var terr *TokenizeErr
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TokenizeErr, got %v", err)
	}
	if terr.Pos.I != 6 {
		t.Errorf("expected offset 6, got %d", terr.Pos.I)
	}
}
