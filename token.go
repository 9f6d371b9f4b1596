package wbb

import "fmt"

// String is a quoted string literal, the value keeps both surrounding quotes.
type String string

// Word is a bare word: a keyword or a tag name.
type Word string

type BlockStart struct {
}

type BlockEnd struct {
}

// TagStart and TagEnd are reserved, the grammar does not consume them.
type TagStart struct {
}

type TagEnd struct {
}

// Position of a token in the source, both line and column start at 1.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Describe returns human-readable representation of a token as used in error messages.
func Describe(token any) string {
	switch t := token.(type) {
	case String:
		return "string " + string(t)
	case Word:
		return "word " + fmt.Sprintf("%q", string(t))
	case BlockStart:
		return "\"{\""
	case BlockEnd:
		return "\"}\""
	case TagStart:
		return "\"<\""
	case TagEnd:
		return "\">\""
	default:
		return fmt.Sprintf("%T", token)
	}
}
