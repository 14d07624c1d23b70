package program

import (
	"errors"
	"fmt"
)

// Causes of a ParseError. Use errors.Is to test for them.
var (
	ErrFieldCount    = errors.New("wrong instruction length")
	ErrPCOrder       = errors.New("PCs are not in order")
	ErrUnknownOpcode = errors.New("undefined instruction")
	ErrArity         = errors.New("wrong operand count")
	ErrOperand       = errors.New("operand is not an integer")
	ErrCharRange     = errors.New("CHAR range is empty")
	ErrJumpTarget    = errors.New("jump target out of range")
)

// ParseError is an error encountered while parsing program text. No part of
// a program is usable after a ParseError.
type ParseError struct {
	Line int    // 1-based index of the offending line among non-empty lines
	Text string // the offending line
	Err  error  // one of the Err… causes
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid instruction #%d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
