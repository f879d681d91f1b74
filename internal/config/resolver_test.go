package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBlueprint_FlagPrecedence(t *testing.T) {
	t.Setenv("RIGC_BLUEPRINT", "env.blueprint.yaml")

	result := ResolveBlueprint("flag.blueprint.yaml", "config.blueprint.yaml")

	assert.Equal(t, "flag.blueprint.yaml", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "env.blueprint.yaml", result.Shadowed[SourceEnv])
	assert.Equal(t, "config.blueprint.yaml", result.Shadowed[SourceConfig])
}

func TestResolveBlueprint_EnvPrecedence(t *testing.T) {
	t.Setenv("RIGC_BLUEPRINT", "env.blueprint.yaml")

	result := ResolveBlueprint("", "config.blueprint.yaml")

	assert.Equal(t, "env.blueprint.yaml", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "config.blueprint.yaml", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveBlueprint_ConfigFallback(t *testing.T) {
	t.Setenv("RIGC_BLUEPRINT", "")

	result := ResolveBlueprint("", "config.blueprint.yaml")

	assert.Equal(t, "config.blueprint.yaml", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
}

func TestResolveBlueprint_Default(t *testing.T) {
	t.Setenv("RIGC_BLUEPRINT", "")

	result := ResolveBlueprint("", "")

	assert.Equal(t, DefaultBlueprintFile, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveCatalogDir(t *testing.T) {
	t.Run("flag precedence", func(t *testing.T) {
		t.Setenv("RIGC_CATALOG_DIR", "/env/catalog")

		result, err := ResolveCatalogDir("/flag/catalog", "/config/catalog")
		require.NoError(t, err)

		assert.Equal(t, "/flag/catalog", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/catalog", result.Shadowed[SourceEnv])
		assert.NotEmpty(t, result.Shadowed[SourceDefault])
	})

	t.Run("default fallback", func(t *testing.T) {
		t.Setenv("RIGC_CATALOG_DIR", "")

		result, err := ResolveCatalogDir("", "")
		require.NoError(t, err)

		assert.Equal(t, SourceDefault, result.Source)
		assert.Contains(t, result.Value, "catalog")
	})
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag precedence", func(t *testing.T) {
		t.Setenv("RIGC_CONFIG", "/env/config.yaml")

		result, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)

		assert.Equal(t, "/flag/config.yaml", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
		assert.NotEmpty(t, result.Shadowed[SourceDefault])
	})

	t.Run("env precedence", func(t *testing.T) {
		t.Setenv("RIGC_CONFIG", "/env/config.yaml")

		result, err := ResolveConfigPath("")
		require.NoError(t, err)

		assert.Equal(t, "/env/config.yaml", result.Value)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("default fallback", func(t *testing.T) {
		t.Setenv("RIGC_CONFIG", "")

		result, err := ResolveConfigPath("")
		require.NoError(t, err)

		assert.Equal(t, SourceDefault, result.Source)
		assert.Contains(t, result.Value, "config.yaml")
	})
}

func TestResolveScene(t *testing.T) {
	t.Setenv("RIGC_SCENE", "")

	result := ResolveScene("", "")
	assert.Equal(t, DefaultSceneDir, result.Value)
	assert.Equal(t, SourceDefault, result.Source)

	result = ResolveScene("out", "")
	assert.Equal(t, "out", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
}
