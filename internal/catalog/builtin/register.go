// Package builtin ships the module manifests every catalog starts from and
// the backing implementations behind them. User catalogs loaded from disk
// layer on top of these.
package builtin

import (
	"embed"
	"fmt"
	"sort"

	"github.com/rigforge/cli/internal/catalog"
	"github.com/rigforge/cli/internal/rig"
)

//go:embed manifests/*.cue
var manifestFS embed.FS

// Register adds every built-in module manifest to the catalog.
func Register(c *catalog.Catalog) error {
	parser, err := catalog.NewManifestParser()
	if err != nil {
		return err
	}

	entries, err := manifestFS.ReadDir("manifests")
	if err != nil {
		return fmt.Errorf("reading built-in manifests: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		data, err := manifestFS.ReadFile("manifests/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading built-in manifest %s: %w", entry.Name(), err)
		}
		manifest, err := parser.Parse(data, entry.Name())
		if err != nil {
			return err
		}
		def := catalog.Definition{Manifest: manifest, Builder: builderFor(manifest)}
		if err := c.Register(def); err != nil {
			return fmt.Errorf("registering built-in manifest %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Load builds the full catalog a session runs against: every built-in
// module plus the user manifests in dir. User modules use the guide-chain
// backing. An empty dir skips user loading.
func Load(dir string) (*catalog.Catalog, error) {
	c := catalog.New()
	if err := Register(c); err != nil {
		return nil, err
	}
	if dir != "" {
		if err := c.LoadDir(dir, Chain); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// builderFor picks the backing family for a built-in manifest.
func builderFor(m catalog.Manifest) rig.Builder {
	if m.Metadata.Type == "PreBuild" {
		return PreBuild(m)
	}
	return Chain(m)
}
