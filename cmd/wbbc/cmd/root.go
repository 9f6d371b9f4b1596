package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eolymp/go-wbb"
	"github.com/eolymp/go-wbb/internal/config"
	"github.com/eolymp/go-wbb/internal/outfile"
)

var errUsage = errors.New("expected exactly one input file")

type options struct {
	cfgFile string
	verbose bool
	output  string
}

// Execute runs the wbbc command line with process arguments
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	c, err := root.ExecuteC()
	if err == nil {
		return nil
	}

	if errors.Is(err, errUsage) {
		_, _ = fmt.Fprint(stderr, c.UsageString())
	}

	printError(stderr, err)
	return err
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wbbc <input.wbb>",
		Short: "Compiles .wbb page description into HTML",
		Long: `wbbc reads a .wbb document and writes an indented HTML document next to it,
the extension of the input file is replaced with .html.

Example:
  page "Hello" {
    header { h1 "Hi" }
    p "Text & more"
  }`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w, got %d", errUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(cmd, opts, args[0])
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $WBB_CONFIG or ./wbb.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input path with .html extension)")

	root.AddCommand(newTokensCmd(opts))
	root.AddCommand(newASTCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func build(cmd *cobra.Command, opts *options, input string) error {
	cfg, err := config.Resolve(opts.cfgFile)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg, opts.verbose)

	src, err := readFile(input)
	if err != nil {
		return err
	}

	buffer := bytes.NewBuffer(nil)
	if err := wbb.Compile(strings.NewReader(src), buffer); err != nil {
		return fmt.Errorf("%s:%w", input, err)
	}

	out := opts.output
	if out == "" {
		out = outfile.Path(input, cfg.Output.Extension, cfg.Output.Dir)
	}

	if err := outfile.Write(out, buffer.Bytes()); err != nil {
		return err
	}

	logger.Debug("generated html", "source", input, "path", out, "bytes", buffer.Len())

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Generated HTML file:", out)
	return err
}

// readFile loads the whole source file into memory
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not open file %s: %w", path, err)
	}

	return string(data), nil
}

func parseFile(path string) (*wbb.Node, error) {
	src, err := readFile(path)
	if err != nil {
		return nil, err
	}

	page, err := wbb.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%s:%w", path, err)
	}

	return page, nil
}

// commandLogger builds logger for subcommands which need configuration only for logging
func commandLogger(cmd *cobra.Command, opts *options) (*slog.Logger, error) {
	cfg, err := config.Resolve(opts.cfgFile)
	if err != nil {
		return nil, err
	}

	return newLogger(cmd.ErrOrStderr(), cfg, opts.verbose), nil
}

func newLogger(w io.Writer, cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
