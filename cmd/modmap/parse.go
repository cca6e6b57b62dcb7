package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modmap/internal/diagfmt"
	"modmap/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.modulemap|directory>",
	Short: "Parse a module map file or directory and print the declaration tree",
	Long:  `Parse analyzes a module map file, or every *.modulemap under a directory, and prints the declarations it found`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, s)
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		return parseOne(path, format, s)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	return parseTree(cmd, path, format, jobs, s)
}

func parseOne(path, format string, s settings) error {
	result, err := driver.Parse(path, s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if !s.quiet && (result.Bag.HasErrors() || result.Bag.HasWarnings()) {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     s.colorStderr,
			Context:   2,
			ShowNotes: true,
		})
	}
	if result.Err != nil {
		return result.Err
	}

	switch format {
	case "json":
		return diagfmt.FormatDeclsJSON(os.Stdout, result.Decls)
	default:
		return diagfmt.FormatDeclsPretty(os.Stdout, result.Decls, s.colorStdout)
	}
}

func parseTree(cmd *cobra.Command, dir, format string, jobs int, s settings) error {
	results, err := driver.ParseDir(cmd.Context(), dir, s.maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if len(results) == 0 {
		if !s.quiet {
			fmt.Fprintf(os.Stderr, "no module maps under %s\n", dir)
		}
		return nil
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		if res.Bag.HasErrors() {
			failed++
		}

		if !s.quiet {
			fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		}
		if res.Bag != nil && (res.Bag.HasErrors() || res.Bag.HasWarnings()) {
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:   s.colorStderr,
				Context: 2,
			})
		}
		if res.Decls == nil {
			continue
		}
		switch format {
		case "json":
			if err := diagfmt.FormatDeclsJSON(os.Stdout, res.Decls); err != nil {
				return err
			}
		default:
			if err := diagfmt.FormatDeclsPretty(os.Stdout, res.Decls, s.colorStdout); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d module maps failed to parse", failed, len(results))
	}
	return nil
}
