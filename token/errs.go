package token

import (
	"errors"
)

var (
	ErrUnexpected = errors.New("unexpected")
	ErrBadWord    = errors.New("unknown word")
	ErrBadUTF8    = errors.New("bad utf8")
)
