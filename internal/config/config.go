// Package config loads the msgc.toml project file.
package config

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/roach88/msgc/internal/emitter"
)

// FileName is the project file looked up in the working directory.
const FileName = "msgc.toml"

// Config holds generator settings. Command-line flags override it.
type Config struct {
	Package       string
	Output        string
	RuntimeImport string
	Reserved      []string
	CollectErrors bool
	Store         StoreConfig
}

// StoreConfig locates the generation history database.
type StoreConfig struct {
	Path     string
	Disabled bool
}

// msgc.toml key mapping.
type fileConfig struct {
	Package       string   `toml:"package"`
	Output        string   `toml:"output"`
	RuntimeImport string   `toml:"runtime_import"`
	Reserved      []string `toml:"reserved"`
	CollectErrors bool     `toml:"collect_errors"`
	Store         struct {
		Path     string `toml:"path"`
		Disabled bool   `toml:"disabled"`
	} `toml:"store"`
}

// Default returns the settings used when no project file exists.
func Default() Config {
	return Config{
		Package:       "messages",
		Output:        "messages_gen.go",
		RuntimeImport: emitter.DefaultRuntimeImport,
		Store:         StoreConfig{Path: filepath.Join(".msgc", "history.db")},
	}
}

// Load reads path and overlays it on Default. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config load failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("package") {
		cfg.Package = strings.TrimSpace(raw.Package)
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("runtime_import") {
		cfg.RuntimeImport = strings.TrimSpace(raw.RuntimeImport)
	}
	if meta.IsDefined("reserved") {
		cfg.Reserved = raw.Reserved
	}
	if meta.IsDefined("collect_errors") {
		cfg.CollectErrors = raw.CollectErrors
	}
	if meta.IsDefined("store", "path") {
		cfg.Store.Path = strings.TrimSpace(raw.Store.Path)
	}
	if meta.IsDefined("store", "disabled") {
		cfg.Store.Disabled = raw.Store.Disabled
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// Resolve loads path when given. Otherwise it loads FileName from dir if
// present and falls back to Default.
func Resolve(path, dir string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	local := filepath.Join(dir, FileName)
	if _, err := os.Stat(local); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(local)
}

// Validate checks settings after flags have been applied.
func Validate(cfg Config) error {
	if !token.IsIdentifier(cfg.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", cfg.Package)
	}
	if cfg.Output == "" {
		return fmt.Errorf("output is required")
	}
	if cfg.RuntimeImport == "" {
		return fmt.Errorf("runtime_import is required")
	}
	for _, name := range cfg.Reserved {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("reserved name %q is not an identifier", name)
		}
	}
	if !cfg.Store.Disabled && cfg.Store.Path == "" {
		return fmt.Errorf("store path is required unless the store is disabled")
	}
	return nil
}
