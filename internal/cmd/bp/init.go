package bp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/output"
	"github.com/rigforge/cli/internal/templates"
)

// NewInitCmd creates the blueprint init command.
func NewInitCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	var (
		forceFlag       bool
		descriptionFlag string
	)

	c := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a starter blueprint",
		Long: `Create a starter blueprint with an empty module list.

The rig name defaults to "rig" when omitted.

Examples:
  # Create rig.blueprint.yaml in the current directory
  rigc blueprint init biped

  # Create a blueprint at a specific path
  rigc blueprint init biped -f rigs/biped.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := "rig"
			if len(args) > 0 {
				name = args[0]
			}
			return runInit(c, cfg, *file, name, descriptionFlag, forceFlag)
		},
	}

	c.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing blueprint")
	c.Flags().StringVar(&descriptionFlag, "description", "", "Rig description")

	return c
}

func runInit(c *cobra.Command, cfg *config.GlobalConfig, fileFlag, name, description string, force bool) error {
	path := config.ResolveBlueprint(fileFlag, cfg.Config.Blueprint).Value

	// Scaffold errors carry their own sentinels: already-exists maps to the
	// state exit code, everything else to the general one.
	err := templates.ScaffoldBlueprint(path, templates.BlueprintData{
		Name:        name,
		Description: description,
	}, force)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf("Blueprint created: %s", path)))
	return nil
}
