package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config — содержимое mica.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Source  SourceConfig  `toml:"source"`
}

type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type SourceConfig struct {
	// Dir — каталог с *.mi файлами относительно корня проекта.
	Dir string `toml:"dir"`
}

// Manifest — найденный и разобранный mica.toml.
type Manifest struct {
	Path   string // путь к mica.toml
	Root   string // каталог проекта
	Config Config
}

// SourceDir возвращает абсолютный путь к каталогу исходников.
func (m *Manifest) SourceDir() string {
	dir := strings.TrimSpace(m.Config.Source.Dir)
	if dir == "" {
		dir = "src"
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}

// FindManifest walks up from startDir to locate mica.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "mica.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest ищет mica.toml вверх от startDir и разбирает его.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}

// DefaultManifest возвращает содержимое стартового mica.toml для `mica init`.
func DefaultManifest(name string) string {
	return fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\n\n[source]\ndir = \"src\"\n", name)
}
