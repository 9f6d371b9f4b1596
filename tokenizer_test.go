package wbb_test

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/eolymp/go-wbb"
)

func TestTokenizer(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output []any
	}{
		{
			name:   "empty",
			input:  "",
			output: nil,
		},
		{
			name:   "whitespaces only",
			input:  " \n\t\r ",
			output: nil,
		},
		{
			name:  "page",
			input: "page \"Hello\" { h1 \"Hi\" { } }",
			output: []any{
				wbb.Word("page"),
				wbb.String("\"Hello\""),
				wbb.BlockStart{},
				wbb.Word("h1"),
				wbb.String("\"Hi\""),
				wbb.BlockStart{},
				wbb.BlockEnd{},
				wbb.BlockEnd{},
			},
		},
		{
			name:  "delimiters break words",
			input: "a{b}c<d>e",
			output: []any{
				wbb.Word("a"),
				wbb.BlockStart{},
				wbb.Word("b"),
				wbb.BlockEnd{},
				wbb.Word("c"),
				wbb.TagStart{},
				wbb.Word("d"),
				wbb.TagEnd{},
				wbb.Word("e"),
			},
		},
		{
			name:  "string keeps whitespaces and delimiters",
			input: "p \"a  { b } <c>\n d\"",
			output: []any{
				wbb.Word("p"),
				wbb.String("\"a  { b } <c>\n d\""),
			},
		},
		{
			name:  "empty string",
			input: "page \"\" {}",
			output: []any{
				wbb.Word("page"),
				wbb.String("\"\""),
				wbb.BlockStart{},
				wbb.BlockEnd{},
			},
		},
		{
			name:  "string right after delimiter",
			input: "{\"x\"}",
			output: []any{
				wbb.BlockStart{},
				wbb.String("\"x\""),
				wbb.BlockEnd{},
			},
		},
		{
			name:  "adjacent strings",
			input: "\"a\"\"b\"",
			output: []any{
				wbb.String("\"a\""),
				wbb.String("\"b\""),
			},
		},
		{
			name:  "quote inside word continues the word",
			input: "ab\"c d\"e",
			output: []any{
				wbb.Word("ab\"c d\""),
				wbb.Word("e"),
			},
		},
		{
			name:  "unterminated string consumes the rest",
			input: "p \"open { b }\n c",
			output: []any{
				wbb.Word("p"),
				wbb.String("\"open { b }\n c"),
			},
		},
		{
			name:  "word at the end of input",
			input: "{ br",
			output: []any{
				wbb.BlockStart{},
				wbb.Word("br"),
			},
		},
		{
			name:  "bytes which are not utf-8 are kept",
			input: "p \"a\xffb\xe9\" w\xfe{",
			output: []any{
				wbb.Word("p"),
				wbb.String("\"a\xffb\xe9\""),
				wbb.Word("w\xfe"),
				wbb.BlockStart{},
			},
		},
		{
			name:  "unicode",
			input: "p \"Привіт 👋\"",
			output: []any{
				wbb.Word("p"),
				wbb.String("\"Привіт 👋\""),
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			lexer := wbb.NewTokenizer(strings.NewReader(tc.input))

			var got []any

			for {
				token, err := lexer.Token()
				if err == io.EOF {
					break
				}

				if err != nil {
					t.Fatalf("Unable to read token: %v", err)
				}

				got = append(got, token)
			}

			want := tc.output

			if !reflect.DeepEqual(want, got) {
				t.Errorf("Tokens do not match:\n want %#v\n  got %#v\n", want, got)
			}

			all, err := wbb.Tokenize(tc.input)
			if err != nil {
				t.Fatalf("Unable to tokenize: %v", err)
			}

			if !reflect.DeepEqual(want, all) {
				t.Errorf("Tokenize does not match:\n want %#v\n  got %#v\n", want, all)
			}
		})
	}
}

func TestTokenizerPosition(t *testing.T) {
	lexer := wbb.NewTokenizer(strings.NewReader("page \"T\" {\n  h1 \"x\"\n}\"ü\" x\n"))

	want := []wbb.Position{
		{Line: 1, Column: 1},
		{Line: 1, Column: 6},
		{Line: 1, Column: 10},
		{Line: 2, Column: 3},
		{Line: 2, Column: 6},
		{Line: 3, Column: 1},
		{Line: 3, Column: 2},
		{Line: 3, Column: 6},
	}

	var got []wbb.Position
	for {
		_, err := lexer.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("Unable to read token: %v", err)
		}

		got = append(got, lexer.Position())
	}

	if !reflect.DeepEqual(want, got) {
		t.Errorf("Positions do not match:\n want %v\n  got %v\n", want, got)
	}
}
