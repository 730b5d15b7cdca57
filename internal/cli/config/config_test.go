package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dictionary.yaml", cfg.Dictionary)
	assert.Equal(t, "yaml", cfg.Templates.Driver)
	assert.Equal(t, "templates", cfg.Templates.Dir)
	assert.Equal(t, "postgres", cfg.SQL.Dialect)
	assert.Equal(t, "data_dictionary", cfg.SQL.Table)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`dictionary: project.yaml
templates:
  driver: sqlite
  path: library.db
sql:
  dialect: sqlite
  table: customer_schema
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dictforge.yml"), content, 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "project.yaml", cfg.Dictionary)
	assert.Equal(t, "sqlite", cfg.Templates.Driver)
	assert.Equal(t, "library.db", cfg.Templates.Path)
	assert.Equal(t, "sqlite", cfg.SQL.Dialect)
	assert.Equal(t, "customer_schema", cfg.SQL.Table)
}

func TestLoad_InvalidDriver(t *testing.T) {
	dir := t.TempDir()
	content := []byte("templates:\n  driver: redis\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dictforge.yml"), content, 0o644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "templates.driver")
}

func TestLoad_InvalidDialect(t *testing.T) {
	dir := t.TempDir()
	content := []byte("sql:\n  dialect: oracle\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dictforge.yml"), content, 0o644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sql.dialect")
}
