package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mica/internal/diagfmt"
	"mica/internal/driver"
	"mica/internal/ui"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.mi|directory>",
	Short: "Tokenize a mica source file",
	Long:  `Tokenize breaks down a mica source file (or every *.mi file in a directory) into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().BoolP("interactive", "i", false, "browse tokens in an interactive viewer")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached token streams for unchanged files")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("failed to get interactive flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
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
		return runTokenizeDir(cmd, filePath, format, maxDiagnostics)
	}

	var result *driver.TokenizeResult
	if useCache {
		cache, cacheErr := driver.OpenDiskCache("mica")
		if cacheErr != nil {
			return fmt.Errorf("failed to open token cache: %w", cacheErr)
		}
		result, _, err = driver.TokenizeCached(filePath, cache, maxDiagnostics)
	} else {
		result, err = driver.Tokenize(filePath, maxDiagnostics)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, если есть
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	if interactive {
		return ui.RunInspect(filePath, result.FileSet, result.Tokens)
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

func runTokenizeDir(cmd *cobra.Command, dir, format string, maxDiagnostics int) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fileSet, results, err := driver.TokenizeDir(cmd.Context(), dir, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	colorize := useColor(cmd, os.Stderr)
	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:     colorize,
				ShowNotes: true,
			})
		}

		fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		switch format {
		case "pretty":
			if err := diagfmt.FormatTokensPretty(os.Stdout, res.Tokens, fileSet); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatTokensJSON(os.Stdout, res.Tokens); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return nil
}
