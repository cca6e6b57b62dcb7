package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modmap/internal/diagfmt"
	"modmap/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.modulemap",
	Short: "Tokenize a module map file",
	Long:  `Tokenize breaks a module map file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, s)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if !s.quiet && (result.Bag.HasErrors() || result.Bag.HasWarnings()) {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   s.colorStderr,
			Context: 2,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
