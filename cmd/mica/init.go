package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mica/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new mica project",
	Long: `Initialize a new mica project by creating a project manifest (mica.toml)
and a starter source file (src/main.mi). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if filepath.IsAbs(arg) {
			target = arg
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		}
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat %q: %w", target, err)
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, "mica.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%q already exists", manifestPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %q: %w", manifestPath, err)
	}

	name := projectName(filepath.Base(target))
	if err := os.WriteFile(manifestPath, []byte(project.DefaultManifest(name)), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", manifestPath, err)
	}

	srcDir := filepath.Join(target, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %q: %w", srcDir, err)
	}
	mainPath := filepath.Join(srcDir, "main.mi")
	if err := os.WriteFile(mainPath, []byte(defaultMainMI()), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", mainPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created %s\n", manifestPath)
	fmt.Fprintf(out, "created %s\n", mainPath)
	return nil
}

// projectName санирует имя каталога до валидного имени пакета.
func projectName(base string) string {
	name := strings.TrimSpace(base)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
	name = strings.Trim(name, "-")
	if name == "" {
		return "mica-project"
	}
	return name
}

// defaultMainMI returns the starter program written by `mica init`.
func defaultMainMI() string {
	return `# mica starter file
let answer: int32 = 42;
let mut counter: int32 = 0;

fn next() -> int32;

answer + 1;
`
}
