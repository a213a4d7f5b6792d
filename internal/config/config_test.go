package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 3, cfg.Formatting.Indent)
	assert.False(t, cfg.Formatting.EnsureASCII)
	assert.False(t, cfg.Formatting.Compact)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
formatting:
  indent: 2
  ensure_ascii: true
  compact: true
`
	path := filepath.Join(t.TempDir(), ".jsonpp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Formatting.Indent)
	assert.True(t, cfg.Formatting.EnsureASCII)
	assert.True(t, cfg.Formatting.Compact)
}

func TestConfig_LoadPartialYAMLKeepsDefaults(t *testing.T) {
	yamlContent := `
formatting:
  ensure_ascii: true
`
	path := filepath.Join(t.TempDir(), ".jsonpp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Formatting.Indent, "omitted keys keep defaults")
	assert.True(t, cfg.Formatting.EnsureASCII)
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jsonpp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("formatting: ["), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_ValidateRejectsNegativeIndent(t *testing.T) {
	yamlContent := `
formatting:
  indent: -1
`
	path := filepath.Join(t.TempDir(), ".jsonpp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent")
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))

	configPath := filepath.Join(dir, ".jsonpp.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("formatting:\n  indent: 4\n"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()

	// Discovery walks up from the working directory.
	require.NoError(t, os.Chdir(sub))
	found := FindConfigFile()
	require.NotEmpty(t, found)
	resolved, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
}
