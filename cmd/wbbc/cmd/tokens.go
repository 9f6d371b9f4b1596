package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eolymp/go-wbb"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <input.wbb>",
		Short: "Prints tokens of a .wbb document with their positions",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w, got %d", errUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := commandLogger(cmd, opts)
			if err != nil {
				return err
			}

			src, err := readFile(args[0])
			if err != nil {
				return err
			}

			lexer := wbb.NewTokenizer(strings.NewReader(src))
			out := cmd.OutOrStdout()

			count := 0
			for {
				token, err := lexer.Token()
				if errors.Is(err, io.EOF) {
					break
				}

				if err != nil {
					return err
				}

				count++
				if _, err := fmt.Fprintf(out, "%s %s %s\n", positionStyle.Render(lexer.Position().String()), tokenKindStyle.Render(tokenKind(token)), tokenValue(token)); err != nil {
					return err
				}
			}

			logger.Debug("tokenized document", "path", args[0], "tokens", count)
			return nil
		},
	}
}

func tokenKind(token any) string {
	switch token.(type) {
	case wbb.String:
		return "string"
	case wbb.Word:
		return "word"
	case wbb.BlockStart, wbb.BlockEnd:
		return "block"
	case wbb.TagStart, wbb.TagEnd:
		return "tag"
	default:
		return "unknown"
	}
}

func tokenValue(token any) string {
	switch t := token.(type) {
	case wbb.String:
		return string(t)
	case wbb.Word:
		return string(t)
	case wbb.BlockStart:
		return "{"
	case wbb.BlockEnd:
		return "}"
	case wbb.TagStart:
		return "<"
	case wbb.TagEnd:
		return ">"
	default:
		return fmt.Sprintf("%v", token)
	}
}
