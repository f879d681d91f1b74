// Package bp provides CLI command implementations for the blueprint
// command group.
package bp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/blueprint"
	"github.com/rigforge/cli/internal/catalog"
	"github.com/rigforge/cli/internal/catalog/builtin"
	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/host/memscene"
	"github.com/rigforge/cli/internal/rig"
)

// NewBlueprintCmd creates the blueprint command group.
func NewBlueprintCmd(cfg *config.GlobalConfig) *cobra.Command {
	var fileFlag string

	c := &cobra.Command{
		Use:     "blueprint",
		Aliases: []string{"bp"},
		Short:   "Blueprint operations",
		Long: `Commands for editing, building, and inspecting rig blueprints.

A blueprint is an ordered list of module instances with their published
attributes. Mutating commands load the blueprint, apply one change, and
save it back; 'build' replays the whole blueprint into a scene.`,
	}

	c.PersistentFlags().StringVarP(&fileFlag, "file", "f", "",
		"Blueprint file (env: RIGC_BLUEPRINT, default: rig.blueprint.yaml)")

	c.AddCommand(NewInitCmd(cfg, &fileFlag))
	c.AddCommand(NewAddCmd(cfg, &fileFlag))
	c.AddCommand(NewRemoveCmd(cfg, &fileFlag))
	c.AddCommand(NewRenameCmd(cfg, &fileFlag))
	c.AddCommand(NewSetCmd(cfg, &fileFlag))
	c.AddCommand(NewListCmd(cfg, &fileFlag))
	c.AddCommand(NewShowCmd(cfg, &fileFlag))
	c.AddCommand(NewBuildCmd(cfg, &fileFlag))
	c.AddCommand(NewVetCmd(cfg, &fileFlag))
	c.AddCommand(NewDiffCmd(cfg))

	return c
}

// editContext is the state every blueprint command works against: the
// resolved blueprint path, the catalog, and a session over a fresh
// in-memory scene.
type editContext struct {
	path string
	cat  *catalog.Catalog
	sess *rig.Session
	doc  *blueprint.Document
}

// newEditContext resolves the blueprint path and opens a session. Nothing
// is loaded yet.
func newEditContext(cfg *config.GlobalConfig, fileFlag string) (*editContext, error) {
	path := config.ResolveBlueprint(fileFlag, cfg.Config.Blueprint).Value

	dir, err := config.ExpandPath(cfg.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("expanding catalog directory: %w", err)
	}
	cat, err := builtin.Load(dir)
	if err != nil {
		return nil, err
	}

	return &editContext{
		path: path,
		cat:  cat,
		sess: rig.NewSession(cat, memscene.New()),
	}, nil
}

// load restores the blueprint into the session, activating every module at
// its saved guide positions. Used by interactive-style commands that need
// live guides for renames and position reads.
func (ec *editContext) load() error {
	doc, err := blueprint.Load(ec.path, ec.sess)
	if err != nil {
		return err
	}
	ec.doc = doc
	return nil
}

// stage registers the blueprint's modules without touching the scene.
// build starts from a staged session so the whole scene is constructed in
// one tracked pass.
func (ec *editContext) stage() error {
	doc, err := blueprint.Stage(ec.path, ec.sess)
	if err != nil {
		return err
	}
	ec.doc = doc
	return nil
}

// save writes the session back to the blueprint file, keeping the loaded
// document's metadata.
func (ec *editContext) save() error {
	var meta blueprint.Metadata
	if ec.doc != nil {
		meta = ec.doc.Metadata
	}
	return blueprint.Save(ec.path, ec.sess, meta)
}
