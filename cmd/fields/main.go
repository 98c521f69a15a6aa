// Package main provides the CLI entry point for fields.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fields-go/pkg/fields"
	"github.com/ukaji3/fields-go/pkg/fields/parser"
)

var version = "dev"

type cliFlags struct {
	strict  bool
	verbose bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	rootCmd := &cobra.Command{
		Use:   "fields SPEC",
		Short: "Print selected whitespace-separated fields of each input line",
		Long: `fields reads lines from standard input, splits each line on whitespace
and prints the fields selected by SPEC, joined by tabs.

SPEC is a comma-separated list of 0-based indices and inclusive ranges,
for example "0,2-4". Fields are always printed in ascending index order.`,
		Example:       "  ps aux | fields 0,10",
		Version:       version,
		Args:          exactlyOneSpec,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], flags)
		},
	}

	rootCmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail when a line has fewer fields than requested (default: skip missing fields)")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log run details to standard error")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withContext("invalid usage", err)
	})

	return rootCmd
}

func exactlyOneSpec(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return withContext("invalid usage", err)
	}
	return nil
}

func run(cmd *cobra.Command, rawSpec string, flags cliFlags) error {
	logger := newLogger(logConfig{Verbose: flags.verbose, Output: cmd.ErrOrStderr()})

	// Parse the specification before touching the input
	spec, err := parser.ParseSpec(rawSpec)
	if err != nil {
		return withContext("failed to parse fields", err)
	}
	logger.Debug("parsed field specification", "input", rawSpec, "normalized", spec.String())

	opts := fields.DefaultOptions()
	if flags.strict {
		opts.Policy = fields.PolicyFail
	}
	opts.Logger = logger

	_, err = fields.Process(cmd.InOrStdin(), cmd.OutOrStdout(), spec, opts)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fields.ErrWrite):
		return withContext("failed to write output", err)
	case errors.Is(err, fields.ErrFieldOutOfRange):
		return withContext("failed to select fields", err)
	default:
		var readErr *fields.ReadError
		if errors.As(err, &readErr) {
			return withContext("failed to read from standard input", err)
		}
		return fmt.Errorf("processing failed: %w", err)
	}
}
