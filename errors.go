package wbb

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrNotPage         = errors.New("document must start with page")
)

// ParseError describes where and why the document could not be parsed.
type ParseError struct {
	Pos    Position
	Err    error
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	// tokens which did not come from the tokenizer have no position
	if e.Pos.Line == 0 {
		return msg
	}

	return fmt.Sprintf("%s: %s", e.Pos, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
