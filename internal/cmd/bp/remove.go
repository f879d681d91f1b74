package bp

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/output"
)

// NewRemoveCmd creates the blueprint remove command.
func NewRemoveCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "remove <name|index>",
		Short: "Remove a module from the blueprint",
		Long: `Remove a module instance from the blueprint.

The module's scene nodes are deleted before the registry entry is
dropped. The argument is an instance name or a zero-based registry index.

Examples:
  # Remove by instance name
  rigc blueprint remove Arm_0

  # Remove by registry index
  rigc blueprint remove 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRemove(c, cfg, *file, args[0])
		},
	}

	return c
}

func runRemove(c *cobra.Command, cfg *config.GlobalConfig, fileFlag, target string) error {
	ec, err := newEditContext(cfg, fileFlag)
	if err != nil {
		return err
	}
	if err := ec.load(); err != nil {
		return err
	}

	if index, convErr := strconv.Atoi(target); convErr == nil {
		inst, err := ec.sess.Registry().At(index)
		if err != nil {
			return err
		}
		target = inst.Name()
		if err := ec.sess.RemoveModule(index); err != nil {
			return err
		}
	} else if err := ec.sess.RemoveModuleNamed(target); err != nil {
		return err
	}

	if err := ec.save(); err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
		"Removed module %s", output.StyleNoun.Render(target))))
	return nil
}
