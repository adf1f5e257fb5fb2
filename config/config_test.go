package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 150*time.Millisecond, cfg.WatchDebounce())
	assert.Len(t, cfg.ParserOptions(nil), 2)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
log:
  verbosity: 2
parser:
  maxRecoveryAttempts: 64
highlight:
  formatter: html
watch:
  debounce: 1s
`))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, 64, cfg.Parser.MaxRecoveryAttempts)
	assert.Equal(t, 8, cfg.Parser.MaxRecoveryPerPosition)
	assert.Equal(t, "html", cfg.Highlight.Formatter)
	assert.Equal(t, "monokai", cfg.Highlight.Style)
	assert.Equal(t, time.Second, cfg.WatchDebounce())
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown section", "colors: {}\n"},
		{"unknown key", "lsp:\n  port: 3\n"},
		{"wrong type", "log:\n  verbosity: loud\n"},
		{"out of range", "parser:\n  maxRecoveryPerPosition: 0\n"},
		{"unknown formatter", "highlight:\n  formatter: svg\n"},
		{"bad duration", "watch:\n  debounce: soon\n"},
		{"malformed yaml", "log: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadAndFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	assert.Empty(t, Find(nested))

	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("lsp:\n  name: shell-ls\n"), 0o644))
	assert.Equal(t, path, Find(nested))

	cfg, err := Load(Find(nested))
	require.NoError(t, err)
	assert.Equal(t, "shell-ls", cfg.LSP.Name)

	require.NoError(t, os.WriteFile(path, []byte("lsp:\n  name: \"\"\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, path)

	_, err = Load(filepath.Join(root, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchDebounceFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Watch.Debounce = "-5s"
	assert.Equal(t, 150*time.Millisecond, cfg.WatchDebounce())
	cfg.Watch.Debounce = "0s"
	assert.Equal(t, time.Duration(0), cfg.WatchDebounce())
}
