package wbb

import (
	"errors"
	"io"
	"strings"
)

// Tokenizer reads the source byte by byte: all delimiters and whitespaces are ASCII, so any
// other byte, including ones which are not valid UTF-8, goes into the token unchanged.
type Tokenizer struct {
	r     io.ByteScanner
	pos   Position // position of the next byte
	prev  Position // position before the last read byte, restored by unread
	start Position // position of the last returned token
}

func NewTokenizer(r io.ByteScanner) *Tokenizer {
	return &Tokenizer{r: r, pos: Position{Line: 1, Column: 1}}
}

// Tokenize reads all tokens from the source.
func Tokenize(source string) ([]any, error) {
	l := NewTokenizer(strings.NewReader(source))

	var tokens []any
	for {
		t, err := l.Token()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}

		if err != nil {
			return nil, err
		}

		tokens = append(tokens, t)
	}
}

// Position returns position where the last returned token starts.
func (l *Tokenizer) Position() Position {
	return l.start
}

// Token reads next token, it returns io.EOF when the source is exhausted.
func (l *Tokenizer) Token() (any, error) {
	if err := l.whitespaces(); err != nil {
		return nil, err
	}

	l.start = l.pos

	char, err := l.read()
	if err != nil {
		return nil, err
	}

	switch char {
	case '{':
		return BlockStart{}, nil
	case '}':
		return BlockEnd{}, nil
	case '<':
		return TagStart{}, nil
	case '>':
		return TagEnd{}, nil
	case '"':
		data, err := l.readQuoted([]byte{char})
		if err != nil {
			return nil, err
		}

		return String(data), nil
	default:
		return l.readWord(char)
	}
}

// readWord reads bare word starting with the given byte, a quote inside the word does not
// end it: the quoted run, including whitespaces and delimiters, becomes part of the word.
func (l *Tokenizer) readWord(first byte) (any, error) {
	data := []byte{first}
	for {
		read, err := l.read()
		if err == io.EOF {
			return Word(data), nil
		}

		if err != nil {
			return nil, err
		}

		if read == '"' {
			data, err = l.readQuoted(append(data, read))
			if err != nil {
				return nil, err
			}

			return Word(data), nil
		}

		if isDelimiter(read) || isWhitespace(read) {
			return Word(data), l.unread()
		}

		data = append(data, read)
	}
}

// readQuoted reads until closing quote (inclusive) or the end of input, the opening quote
// must already be in data.
func (l *Tokenizer) readQuoted(data []byte) ([]byte, error) {
	for {
		read, err := l.read()
		if err == io.EOF {
			return data, nil
		}

		if err != nil {
			return nil, err
		}

		data = append(data, read)

		if read == '"' {
			return data, nil
		}
	}
}

// whitespaces skips until next non-whitespace symbol
func (l *Tokenizer) whitespaces() error {
	for {
		b, err := l.read()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if !isWhitespace(b) {
			return l.unread()
		}
	}
}

func (l *Tokenizer) read() (byte, error) {
	b, err := l.r.ReadByte()
	if err != nil {
		return 0, err
	}

	l.prev = l.pos
	switch {
	case b == '\n':
		l.pos = Position{Line: l.pos.Line + 1, Column: 1}
	case b&0xC0 != 0x80:
		// columns count characters, UTF-8 continuation bytes do not start a new one
		l.pos.Column++
	}

	return b, nil
}

func (l *Tokenizer) unread() error {
	if err := l.r.UnreadByte(); err != nil {
		return err
	}

	l.pos = l.prev
	return nil
}

// isDelimiter returns true for structural symbols which are tokens on their own
func isDelimiter(b byte) bool {
	switch b {
	case '{', '}', '<', '>':
		return true
	default:
		return false
	}
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\n', '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
