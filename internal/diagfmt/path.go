package diagfmt

import (
	"path/filepath"

	"mica/internal/source"
)

// displayPath приводит путь файла к требуемому режиму отображения.
// Виртуальные файлы (тесты, stdin) отдаются как есть.
func displayPath(fs *source.FileSet, file *source.File, mode PathMode) string {
	if file == nil {
		return "<unknown>"
	}
	if file.Flags&source.FileVirtual != 0 {
		return file.Path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(file.Path); err == nil {
			return abs
		}
		return file.Path
	case PathModeBasename:
		return filepath.Base(file.Path)
	case PathModeRelative, PathModeAuto:
		base := fs.BaseDir()
		if base == "" {
			return file.Path
		}
		if rel, err := filepath.Rel(base, file.Path); err == nil {
			return rel
		}
		return file.Path
	}
	return file.Path
}
