package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/msgc/internal/emitter"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
package = "proto"
reserved = ["Kind", "Range"]
collect_errors = true

[store]
path = "build/history.db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "proto", cfg.Package)
	assert.Equal(t, "messages_gen.go", cfg.Output)
	assert.Equal(t, emitter.DefaultRuntimeImport, cfg.RuntimeImport)
	assert.Equal(t, []string{"Kind", "Range"}, cfg.Reserved)
	assert.True(t, cfg.CollectErrors)
	assert.Equal(t, "build/history.db", cfg.Store.Path)
	assert.False(t, cfg.Store.Disabled)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "packge = \"typo\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "packge")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad package":   "package = \"my-pkg\"\n",
		"empty import":  "runtime_import = \"\"\n",
		"bad reserved":  "reserved = [\"not valid\"]\n",
		"no store path": "[store]\npath = \"\"\n",
		"syntax":        "package = \n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), content))
			assert.Error(t, err)
		})
	}
}

func TestLoadStoreDisabled(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), "[store]\npath = \"\"\ndisabled = true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Store.Disabled)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	writeConfig(t, dir, "package = \"local\"\n")
	cfg, err = Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Package)

	other := filepath.Join(t.TempDir(), "other.toml")
	require.NoError(t, os.WriteFile(other, []byte("package = \"explicit\"\n"), 0o644))
	cfg, err = Resolve(other, dir)
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Package)

	_, err = Resolve(filepath.Join(dir, "missing.toml"), dir)
	assert.Error(t, err)
}
