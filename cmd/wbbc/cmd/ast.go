package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eolymp/go-wbb"
	"github.com/eolymp/go-wbb/internal/dump"
)

func newASTCmd(opts *options) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "ast <input.wbb>",
		Short: "Prints document tree of a .wbb document",
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

			page, err := parseFile(args[0])
			if err != nil {
				return err
			}

			logger.Debug("parsed document", "path", args[0], "nodes", wbb.CountNodes(page), "text", len(wbb.Text(page)))

			return dump.Write(cmd.OutOrStdout(), page, dump.Format(format))
		},
	}

	c.Flags().StringVarP(&format, "format", "f", string(dump.FormatYAML), "output format: yaml or json")

	return c
}
