package bp

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
)

// NewShowCmd creates the blueprint show command.
func NewShowCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	var positionsFlag bool

	c := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a module's published attributes",
		Long: `Show one module instance: identity, published attributes, and
optionally its current guide positions.

Examples:
  # Show the Arm_0 instance
  rigc blueprint show Arm_0

  # Include live guide positions
  rigc blueprint show Arm_0 --positions`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runShow(c, cfg, *file, args[0], positionsFlag)
		},
	}

	c.Flags().BoolVar(&positionsFlag, "positions", false, "Include current guide positions")

	return c
}

func runShow(c *cobra.Command, cfg *config.GlobalConfig, fileFlag, name string, positions bool) error {
	ec, err := newEditContext(cfg, fileFlag)
	if err != nil {
		return err
	}
	if err := ec.load(); err != nil {
		return err
	}

	inst, ok := ec.sess.Registry().Find(name)
	if !ok {
		return errors.NewNotFoundError(
			fmt.Sprintf("unknown module instance %q", name),
			ec.path,
			"run 'rigc blueprint list' to see registered instances")
	}

	fmt.Fprintf(c.OutOrStdout(), "Module:  %s\n", output.StyleNoun.Render(inst.Name()))
	fmt.Fprintf(c.OutOrStdout(), "Type:    %s\n", inst.TypeName())
	fmt.Fprintf(c.OutOrStdout(), "Version: %s\n", inst.Version())
	fmt.Fprintf(c.OutOrStdout(), "Status:  %s\n",
		output.StatusStyle(inst.Status().String()).Render(inst.Status().String()))

	attrs, err := yaml.Marshal(inst.Attributes())
	if err != nil {
		return fmt.Errorf("marshaling attributes: %w", err)
	}
	fmt.Fprintf(c.OutOrStdout(), "\nAttributes:\n%s", string(attrs))

	if positions {
		guides, err := ec.sess.GuidePositions(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), "\nGuide positions:")
		for i, p := range guides {
			fmt.Fprintf(c.OutOrStdout(), "  %d: [%g, %g, %g]\n", i, p[0], p[1], p[2])
		}
	}

	return nil
}
