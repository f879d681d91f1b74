package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for rigc.
type Paths struct {
	// ConfigFile is the path to the config file (~/.rigc/config.yaml).
	ConfigFile string

	// CatalogDir is the path to the user module catalog (~/.rigc/catalog).
	CatalogDir string

	// HomeDir is the rigc home directory (~/.rigc).
	HomeDir string
}

// DefaultPaths returns the default paths for rigc.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rigcHome := filepath.Join(homeDir, ".rigc")

	return &Paths{
		ConfigFile: filepath.Join(rigcHome, "config.yaml"),
		CatalogDir: filepath.Join(rigcHome, "catalog"),
		HomeDir:    rigcHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If RIGC_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("RIGC_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetCatalogDir returns the user catalog directory path.
// If RIGC_CATALOG_DIR is set, it takes precedence.
func GetCatalogDir() (string, error) {
	if envPath := os.Getenv("RIGC_CATALOG_DIR"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.CatalogDir, nil
}

// GetHomeDir returns the rigc home directory path.
func GetHomeDir() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.HomeDir, nil
}

// EnsureHomeDir creates the rigc home directory if it doesn't exist.
func EnsureHomeDir() error {
	homeDir, err := GetHomeDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(homeDir, 0o755)
}

// EnsureCatalogDir creates the user catalog directory if it doesn't exist.
func EnsureCatalogDir() error {
	catalogDir, err := GetCatalogDir()
	if err != nil {
		return err
	}

	expanded, err := ExpandPath(catalogDir)
	if err != nil {
		return err
	}

	return os.MkdirAll(expanded, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
