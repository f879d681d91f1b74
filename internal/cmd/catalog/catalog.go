// Package catalog provides CLI command implementations for the catalog
// command group.
package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogpkg "github.com/rigforge/cli/internal/catalog"
	"github.com/rigforge/cli/internal/catalog/builtin"
	"github.com/rigforge/cli/internal/config"
)

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "catalog",
		Short: "Module catalog operations",
		Long: `Commands for browsing and extending the module catalog.

The catalog holds every module type rigc can add to a blueprint: the
built-in set plus user manifests from the catalog directory.`,
	}

	c.AddCommand(NewCatalogListCmd(cfg))
	c.AddCommand(NewCatalogShowCmd(cfg))
	c.AddCommand(NewCatalogInitCmd(cfg))

	return c
}

// openCatalog loads the built-in modules plus the configured user catalog
// directory.
func openCatalog(cfg *config.GlobalConfig) (*catalogpkg.Catalog, error) {
	dir, err := config.ExpandPath(cfg.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("expanding catalog directory: %w", err)
	}
	return builtin.Load(dir)
}
