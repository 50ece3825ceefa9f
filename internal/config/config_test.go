package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Chapter, cfg.Chapter)
	assert.NotEmpty(t, cfg.SkipLiterals)
	assert.NotEmpty(t, cfg.Probes)
	assert.Equal(t, "func main()", cfg.EntryGuard)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".snipvet.yaml")
	content := `chapter: book/03-goroutines.qmd
skip_literals:
  - "spawnWorkers("
probes:
  - symbol: Double
    call: Double(5)
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "book/03-goroutines.qmd", cfg.Chapter)
	assert.Equal(t, []string{"spawnWorkers("}, cfg.SkipLiterals)
	require.Len(t, cfg.Probes, 1)
	assert.Equal(t, "Double", cfg.Probes[0].Symbol)
	assert.Equal(t, "Double(5)", cfg.Probes[0].Call)
	// Unset keys keep their defaults.
	assert.Equal(t, "func main()", cfg.EntryGuard)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvChapter, "book/99-override.qmd")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "book/99-override.qmd", cfg.Chapter)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".snipvet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chapter: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
