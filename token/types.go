package token

import (
	"fmt"
)

// Variable is a propositional variable, one of the letters 'A'
// through 'Z'.  Lowercase letters in the input are normalized on the
// way in, so a Variable is always uppercase.
type Variable byte

func (v Variable) String() string {
	return string(byte(v))
}

type TokenType int

const (
	TVar = iota
	TTrue
	TFalse
	TNot
	TAnd
	TOr
	TXor
	TImplies
	TEquiv
	TNand
	TNor
	TLParen
	TRParen
	TComma
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TVar:     "TVar",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNot:     "TNot",
		TAnd:     "TAnd",
		TOr:      "TOr",
		TXor:     "TXor",
		TImplies: "TImplies",
		TEquiv:   "TEquiv",
		TNand:    "TNand",
		TNor:     "TNor",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TComma:   "TComma",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Variable returns the uppercased variable of a TVar token.
func (t *Token) Variable() Variable {
	return Variable(upper(t.Bytes[0]))
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}
func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
