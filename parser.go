package wbb

import (
	"errors"
	"fmt"
	"io"
)

type Parser struct {
	tokens *cursor
}

// Parse reads .wbb document and returns its page node. Parsing stops once the page block is
// closed, anything after it is not read.
func Parse(r io.ByteScanner) (*Node, error) {
	return NewParser(r).Parse()
}

// ParseTokens builds document tree out of tokens produced by Tokenize.
func ParseTokens(tokens []any) (*Node, error) {
	return (&Parser{tokens: newSliceCursor(tokens)}).Parse()
}

func NewParser(r io.ByteScanner) *Parser {
	return &Parser{tokens: newStreamCursor(NewTokenizer(r))}
}

func (p *Parser) Parse() (*Node, error) {
	t, pos, err := p.next("page")
	if err != nil {
		return nil, err
	}

	if w, ok := t.(Word); !ok || w != "page" {
		return nil, &ParseError{Pos: pos, Err: ErrNotPage, Detail: "document starts with " + Describe(t)}
	}

	return p.page()
}

// page reads title and body of the page, "page" keyword must already be consumed
func (p *Parser) page() (*Node, error) {
	t, pos, err := p.next("page title")
	if err != nil {
		return nil, err
	}

	title, ok := t.(String)
	if !ok {
		return nil, &ParseError{Pos: pos, Err: ErrUnexpectedToken, Detail: fmt.Sprintf("expected page title, got %s", Describe(t))}
	}

	children, err := p.block("page")
	if err != nil {
		return nil, err
	}

	return &Node{Kind: PageKind, Name: "page", Text: unquote(title), Children: children}, nil
}

// section reads header or footer, these have a mandatory block and no text
func (p *Parser) section(kind Kind) (*Node, error) {
	children, err := p.block(kind.String())
	if err != nil {
		return nil, err
	}

	return &Node{Kind: kind, Name: kind.String(), Children: children}, nil
}

// tag reads generic element with optional text and optional block of children
func (p *Parser) tag(name string) (*Node, error) {
	node := &Node{Kind: TagKind, Name: name}

	t, _, err := p.tokens.peek()
	if errors.Is(err, io.EOF) {
		return node, nil
	}

	if err != nil {
		return nil, err
	}

	if text, ok := t.(String); ok {
		node.Text = unquote(text)
		if _, _, err := p.tokens.next(); err != nil {
			return nil, err
		}

		t, _, err = p.tokens.peek()
		if errors.Is(err, io.EOF) {
			return node, nil
		}

		if err != nil {
			return nil, err
		}
	}

	if _, ok := t.(BlockStart); !ok {
		return node, nil
	}

	children, err := p.block(name)
	if err != nil {
		return nil, err
	}

	node.Children = children
	return node, nil
}

// block reads "{", child elements and the closing "}"
func (p *Parser) block(owner string) ([]*Node, error) {
	t, pos, err := p.next(fmt.Sprintf("\"{\" to open %s", owner))
	if err != nil {
		return nil, err
	}

	if _, ok := t.(BlockStart); !ok {
		return nil, &ParseError{Pos: pos, Err: ErrUnexpectedToken, Detail: fmt.Sprintf("expected \"{\" to open %s, got %s", owner, Describe(t))}
	}

	var children []*Node
	for {
		t, pos, err := p.next(fmt.Sprintf("\"}\" to close %s", owner))
		if err != nil {
			return nil, err
		}

		if _, ok := t.(BlockEnd); ok {
			return children, nil
		}

		child, err := p.child(t, pos)
		if err != nil {
			return nil, err
		}

		children = append(children, child)
	}
}

// child parses element which starts with the given (already consumed) token
func (p *Parser) child(t any, pos Position) (*Node, error) {
	word, ok := t.(Word)
	if !ok {
		return nil, &ParseError{Pos: pos, Err: ErrUnexpectedToken, Detail: fmt.Sprintf("expected element name, got %s", Describe(t))}
	}

	switch word {
	case "page":
		return p.page()
	case "header":
		return p.section(HeaderKind)
	case "footer":
		return p.section(FooterKind)
	default:
		return p.tag(string(word))
	}
}

// next consumes next token, exhausted input is reported as ErrUnexpectedEOF
func (p *Parser) next(expected string) (any, Position, error) {
	t, pos, err := p.tokens.next()
	if errors.Is(err, io.EOF) {
		return nil, pos, &ParseError{Pos: pos, Err: ErrUnexpectedEOF, Detail: "expected " + expected}
	}

	return t, pos, err
}
