package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".rigc"), paths.HomeDir)
	assert.Equal(t, filepath.Join(homeDir, ".rigc", "config.yaml"), paths.ConfigFile)
	assert.Equal(t, filepath.Join(homeDir, ".rigc", "catalog"), paths.CatalogDir)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env var takes precedence", func(t *testing.T) {
		t.Setenv("RIGC_CONFIG", "/env/config.yaml")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", path)
	})

	t.Run("defaults to home config", func(t *testing.T) {
		t.Setenv("RIGC_CONFIG", "")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Contains(t, path, ".rigc")
		assert.Contains(t, path, "config.yaml")
	})
}

func TestGetCatalogDir(t *testing.T) {
	t.Run("env var takes precedence", func(t *testing.T) {
		t.Setenv("RIGC_CATALOG_DIR", "/env/catalog")

		path, err := GetCatalogDir()
		require.NoError(t, err)
		assert.Equal(t, "/env/catalog", path)
	})

	t.Run("defaults to home catalog", func(t *testing.T) {
		t.Setenv("RIGC_CATALOG_DIR", "")

		path, err := GetCatalogDir()
		require.NoError(t, err)
		assert.Contains(t, path, ".rigc")
		assert.Contains(t, path, "catalog")
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no tilde",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path without tilde",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "tilde with slash",
			input:    "~/.rigc/config.yaml",
			expected: filepath.Join(homeDir, ".rigc", "config.yaml"),
		},
		{
			name:     "tilde username pattern (not expanded)",
			input:    "~username/file",
			expected: "~username/file",
		},
		{
			name:     "tilde in middle (not expanded)",
			input:    "/path/~/file",
			expected: "/path/~/file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
