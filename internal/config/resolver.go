package config

import (
	"os"

	"github.com/rigforge/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue describes one resolved configuration value.
type ResolvedValue struct {
	// Key is the configuration key name.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolve applies the flag > env > config > default precedence for one key.
func resolve(key, flagValue, envName, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := ""
	if envName != "" {
		envValue = os.Getenv(envName)
	}

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = defaultValue
		result.Source = SourceDefault
	}

	if result.Source != SourceDefault && defaultValue != "" {
		result.Shadowed[SourceDefault] = defaultValue
	}

	return result
}

// ResolveBlueprint resolves the blueprint file path using precedence:
// (1) --file flag, (2) RIGC_BLUEPRINT env, (3) config.blueprint, (4) default.
func ResolveBlueprint(flagValue, configValue string) ResolvedValue {
	return resolve("blueprint", flagValue, "RIGC_BLUEPRINT", configValue, DefaultBlueprintFile)
}

// ResolveCatalogDir resolves the user catalog directory using precedence:
// (1) --catalog flag, (2) RIGC_CATALOG_DIR env, (3) config.catalogDir,
// (4) ~/.rigc/catalog default.
func ResolveCatalogDir(flagValue, configValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return resolve("catalogDir", flagValue, "RIGC_CATALOG_DIR", configValue, paths.CatalogDir), nil
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RIGC_CONFIG env, (3) ~/.rigc/config.yaml default.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return resolve("configPath", flagValue, "RIGC_CONFIG", "", paths.ConfigFile), nil
}

// ResolveScene resolves the scene output directory using precedence:
// (1) --out flag, (2) RIGC_SCENE env, (3) config.scene, (4) default.
func ResolveScene(flagValue, configValue string) ResolvedValue {
	return resolve("scene", flagValue, "RIGC_SCENE", configValue, DefaultSceneDir)
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
