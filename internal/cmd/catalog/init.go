package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/output"
	"github.com/rigforge/cli/internal/templates"
)

// NewCatalogInitCmd creates the catalog init command.
func NewCatalogInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var (
		versionFlag     string
		dirFlag         string
		descriptionFlag string
	)

	c := &cobra.Command{
		Use:   "init <type>",
		Short: "Scaffold a new module manifest",
		Long: `Create a module manifest scaffold in the user catalog directory.

The manifest declares a new module type backed by the generic guide-chain
builder. Edit the default attributes and guide layout, then verify the
catalog picks it up with 'rigc catalog list'.

Examples:
  # Scaffold a Tail module at version 0000
  rigc catalog init Tail

  # Scaffold a new version of an existing type
  rigc catalog init Tail --version 0001

  # Scaffold into a specific directory
  rigc catalog init Tail --dir ./manifests`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCatalogInit(c, cfg, args[0], versionFlag, dirFlag, descriptionFlag)
		},
	}

	c.Flags().StringVar(&versionFlag, "version", "0000", "Manifest version ordinal")
	c.Flags().StringVarP(&dirFlag, "dir", "d", "", "Target directory (default: configured catalog directory)")
	c.Flags().StringVar(&descriptionFlag, "description", "", "Manifest description")

	return c
}

func runCatalogInit(c *cobra.Command, cfg *config.GlobalConfig, typeName, version, dir, description string) error {
	targetDir := dir
	if targetDir == "" {
		expanded, err := config.ExpandPath(cfg.CatalogDir)
		if err != nil {
			return fmt.Errorf("expanding catalog directory: %w", err)
		}
		targetDir = expanded
	}

	if description == "" {
		description = fmt.Sprintf("%s module.", typeName)
	}

	path, err := templates.ScaffoldManifest(targetDir, templates.ManifestData{
		TypeName:    typeName,
		Version:     version,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf("Manifest created: %s", path)))
	return nil
}
