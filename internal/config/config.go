// Package config provides configuration loading and management.
package config

// Default values applied when neither flags, environment, nor the config
// file provide one.
const (
	// DefaultBlueprintFile is the blueprint file used when none is configured.
	DefaultBlueprintFile = "rig.blueprint.yaml"

	// DefaultSceneDir is the output directory for built scene manifests.
	DefaultSceneDir = "scene"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the rigc configuration.
// Loaded from ~/.rigc/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// CatalogDir is the directory holding user module manifests.
	// Env: RIGC_CATALOG_DIR, Default: ~/.rigc/catalog
	CatalogDir string `json:"catalogDir,omitempty"`

	// Blueprint is the default blueprint file path.
	// Env: RIGC_BLUEPRINT, Default: rig.blueprint.yaml
	Blueprint string `json:"blueprint,omitempty"`

	// Scene is the default output directory for built scene manifests.
	// Env: RIGC_SCENE, Default: scene
	Scene string `json:"scene,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `rigc config init` to generate the initial config file.
func DefaultConfig() *Config {
	catalogDir := "~/.rigc/catalog"
	if paths, err := DefaultPaths(); err == nil {
		catalogDir = paths.CatalogDir
	}

	return &Config{
		CatalogDir: catalogDir,
		Blueprint:  DefaultBlueprintFile,
		Scene:      DefaultSceneDir,
	}
}

// WithDefaults returns a copy of the config with empty fields replaced by
// their default values.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Blueprint == "" {
		out.Blueprint = DefaultBlueprintFile
	}
	if out.Scene == "" {
		out.Scene = DefaultSceneDir
	}
	if out.CatalogDir == "" {
		if paths, err := DefaultPaths(); err == nil {
			out.CatalogDir = paths.CatalogDir
		}
	}

	return &out
}

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor instead of package-level mutable globals.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Blueprint is the resolved blueprint file path.
	Blueprint string

	// CatalogDir is the resolved catalog directory.
	CatalogDir string

	// Output is the requested output format string.
	Output string

	// Verbose reports whether --verbose was set.
	Verbose bool
}
