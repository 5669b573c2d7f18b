package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mica/internal/diagfmt"
	"mica/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.mi|directory>",
	Short: "Parse a mica source file or directory and output AST",
	Long:  `Parse analyzes a mica source file or all *.mi files in a directory and outputs their abstract syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return runParseDir(cmd, filePath, format, maxDiagnostics)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if result.Err != nil {
		return fmt.Errorf("parsing failed: %w", result.Err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.Program, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.Program)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runParseDir(cmd *cobra.Command, dir, format string, maxDiagnostics int) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fileSet, results, err := driver.ParseDir(cmd.Context(), dir, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	colorize := useColor(cmd, os.Stderr)
	var firstErr error
	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:     colorize,
				ShowNotes: true,
			})
		}
		if res.Err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", res.Path, res.Err)
			}
			continue
		}

		fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		switch format {
		case "pretty":
			if err := diagfmt.FormatASTPretty(os.Stdout, res.Builder, res.Program, fileSet); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatASTJSON(os.Stdout, res.Builder, res.Program); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return firstErr
}
