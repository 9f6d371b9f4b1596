package wbb

import "io"

// cursor gives productions one token of lookahead over a token source. Once the source
// fails (io.EOF included) the error sticks and is returned by every following call.
type cursor struct {
	source func() (any, Position, error)
	token  any
	pos    Position
	err    error
	filled bool
}

func newStreamCursor(l *Tokenizer) *cursor {
	return &cursor{source: func() (any, Position, error) {
		t, err := l.Token()
		return t, l.Position(), err
	}}
}

// newSliceCursor walks already tokenized input, positions are unknown there and stay zero.
func newSliceCursor(tokens []any) *cursor {
	index := 0
	return &cursor{source: func() (any, Position, error) {
		if index >= len(tokens) {
			return nil, Position{}, io.EOF
		}

		t := tokens[index]
		index++

		return t, Position{}, nil
	}}
}

// peek returns next token without consuming it
func (c *cursor) peek() (any, Position, error) {
	if !c.filled {
		c.token, c.pos, c.err = c.source()
		c.filled = true
	}

	return c.token, c.pos, c.err
}

// next consumes and returns next token
func (c *cursor) next() (any, Position, error) {
	t, pos, err := c.peek()
	if err == nil {
		c.filled = false
	}

	return t, pos, err
}
