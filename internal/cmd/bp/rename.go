package bp

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/output"
)

// NewRenameCmd creates the blueprint rename command.
func NewRenameCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "rename <name|index> <new-name>",
		Short: "Rename a module instance",
		Long: `Rename a module instance.

The scene nodes are renamed first; the blueprint entry is updated only
when that succeeds. The new name must not collide with another instance.
The first argument is an instance name or a zero-based registry index.

Examples:
  rigc blueprint rename Arm_0 Arm_left
  rigc blueprint rename 0 Arm_left`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runRename(c, cfg, *file, args[0], args[1])
		},
	}

	return c
}

func runRename(c *cobra.Command, cfg *config.GlobalConfig, fileFlag, name, newName string) error {
	ec, err := newEditContext(cfg, fileFlag)
	if err != nil {
		return err
	}
	if err := ec.load(); err != nil {
		return err
	}

	if index, convErr := strconv.Atoi(name); convErr == nil {
		inst, err := ec.sess.Registry().At(index)
		if err != nil {
			return err
		}
		name = inst.Name()
	}

	if err := ec.sess.RenameModule(name, newName); err != nil {
		return err
	}

	if err := ec.save(); err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
		"Renamed %s to %s",
		output.StyleNoun.Render(name), output.StyleNoun.Render(newName))))
	return nil
}
