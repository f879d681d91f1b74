package bp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/output"
)

// NewAddCmd creates the blueprint add command.
func NewAddCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	var versionFlag string

	c := &cobra.Command{
		Use:   "add <type>",
		Short: "Add a module to the blueprint",
		Long: `Add a module instance to the blueprint.

The instance is named "<type>_<n>" where n is the current count of
instances of that type. The module's guides are activated and their
positions saved into the blueprint.

Examples:
  # Add the latest Arm module
  rigc blueprint add Arm

  # Add a specific version
  rigc blueprint add Singleton --version 0000`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAdd(c, cfg, *file, args[0], versionFlag)
		},
	}

	c.Flags().StringVar(&versionFlag, "version", "", "Module version (default: latest)")

	return c
}

func runAdd(c *cobra.Command, cfg *config.GlobalConfig, fileFlag, typeName, version string) error {
	ec, err := newEditContext(cfg, fileFlag)
	if err != nil {
		return err
	}
	if err := ec.load(); err != nil {
		return err
	}

	inst, err := ec.sess.AddModule(typeName, version)
	if err != nil {
		return err
	}

	if err := ec.save(); err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
		"Added module %s (%s %s)",
		output.StyleNoun.Render(inst.Name()), inst.TypeName(), inst.Version())))
	return nil
}
