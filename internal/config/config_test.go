package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "table", cfg.Output.Format)
	assert.True(t, cfg.Output.Romaji)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 50, cfg.History.Limit)
	assert.True(t, cfg.Reading.Tokenizer)
	assert.NotEmpty(t, cfg.Share.BaseURL)
	assert.Equal(t, "Verb", cfg.Anki.Field)
	assert.NotEmpty(t, cfg.Anki.Forms)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	data := []byte(`
output:
  format: markdown
  romaji: false
history:
  limit: 10
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.False(t, cfg.Output.Romaji)
	assert.Equal(t, 10, cfg.History.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched keys keep their defaults.
	assert.True(t, cfg.Output.Color)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, Default().Anki.Forms, cfg.Anki.Forms)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output: [unclosed"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	saved := Default()
	saved.Share.BaseURL = "https://example.com/"
	saved.History.Enabled = false
	require.NoError(t, Save(filepath.Join(dir, FileName), saved))

	cfg, err = LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, saved, cfg)
}

func TestHistoryPath(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, filepath.Join("/cfg", "history.db"), cfg.HistoryPath("/cfg"))

	cfg.History.Path = "/tmp/h.db"
	assert.Equal(t, "/tmp/h.db", cfg.HistoryPath("/cfg"))
}

func TestEnsureConfigDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureConfigDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
