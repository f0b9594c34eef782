package eval

import (
	"errors"
	"fmt"

	"github.com/truthlab/go-prop/token"
)

var ErrUnbound = errors.New("unbound variable")

// EvalErr reports a formula referencing a variable the assignment
// does not bind.
type EvalErr struct {
	Var token.Variable
}

func (e *EvalErr) Error() string {
	return fmt.Sprintf("%s %s", ErrUnbound.Error(), e.Var)
}

func (e *EvalErr) Unwrap() error {
	return ErrUnbound
}
