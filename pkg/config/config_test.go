package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelab/dtab/pkg/config"
	"github.com/routelab/dtab/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
files = ["routes/*.dtab", "overrides.dtab"]
strict = true
allow_empty = true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"routes/*.dtab", "overrides.dtab"}, cfg.Files)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.AllowEmpty)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Files)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.AllowEmpty)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestLoadBadToml(t *testing.T) {
	_, err := config.Load(writeConfig(t, "files = [unterminated"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
