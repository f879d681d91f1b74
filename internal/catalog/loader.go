package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rigforge/cli/internal/output"
	"github.com/rigforge/cli/internal/rig"
)

// BuilderFunc maps a parsed manifest to the builder backing its instances.
// User manifests are all guide-chain modules; built-in registration picks
// per type.
type BuilderFunc func(Manifest) rig.Builder

// LoadDir registers every .cue manifest found in dir, in filename order.
// A missing directory is not an error; a setup without user modules is
// normal.
func (c *Catalog) LoadDir(dir string, build BuilderFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			output.Debug("catalog directory not found, skipping", "dir", dir)
			return nil
		}
		return fmt.Errorf("reading catalog directory %s: %w", dir, err)
	}

	parser, err := NewManifestParser()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading manifest %s: %w", path, err)
		}

		m, err := parser.Parse(data, path)
		if err != nil {
			return err
		}

		if err := c.Register(Definition{Manifest: m, Builder: build(m)}); err != nil {
			return fmt.Errorf("registering manifest %s: %w", path, err)
		}
		output.Debug("registered user module",
			"type", m.Metadata.Type, "version", m.Metadata.Version, "file", entry.Name())
	}

	return nil
}
