package parse

import (
	"errors"
	"fmt"

	"github.com/truthlab/go-prop/token"
)

var (
	ErrEmpty      = errors.New("empty formula")
	ErrAtom       = errors.New("expected a variable, constant, or group")
	ErrUnbalanced = errors.New("unbalanced parentheses")
	ErrClose      = errors.New("expected ')'")
	ErrCall       = errors.New("expected '(' after NAND or NOR")
	ErrArgCount   = errors.New("expected exactly 2 arguments")
	ErrComma      = errors.New("expected ','")
	ErrTrailing   = errors.New("trailing input after formula")
)

// ParseErr is the error type for any failure to turn text into a
// formula, tokenization failures included.  Fragment holds the
// offending piece of input when one can be singled out, Pos locates
// it.
type ParseErr struct {
	Err      error
	Fragment string
	Pos      *token.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	switch {
	case e.Pos == nil:
		return e.Err.Error()
	case e.Fragment == "":
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
	default:
		return fmt.Sprintf("%s: %q at %s", e.Err.Error(), e.Fragment, e.Pos.String())
	}
}

func errAt(err error, tok *token.Token) *ParseErr {
	return &ParseErr{Err: err, Fragment: string(tok.Bytes), Pos: tok.Pos}
}
