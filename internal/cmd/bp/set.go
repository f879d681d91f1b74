package bp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
)

// NewSetCmd creates the blueprint set command.
func NewSetCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "set <name> <key=value>...",
		Short: "Set published attributes on a module",
		Long: `Set published attributes on a module instance.

Attribute writes are schemaless: any key is accepted and new keys are
added. Values are parsed as YAML scalars, so numbers and booleans keep
their types.

The instance name itself cannot be set this way; use 'rename'.

Examples:
  # Point the arm at the spine
  rigc blueprint set Arm_0 parentTo=Spine_0_chest constrainTo=Spine_0_chest

  # Mixed value types
  rigc blueprint set Singleton_0 controlShape=sphere scale=1.5 mirror=true`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runSet(c, cfg, *file, args[0], args[1:])
		},
	}

	return c
}

func runSet(c *cobra.Command, cfg *config.GlobalConfig, fileFlag, name string, pairs []string) error {
	attrs, err := parseAttributePairs(pairs)
	if err != nil {
		return err
	}

	ec, err := newEditContext(cfg, fileFlag)
	if err != nil {
		return err
	}
	if err := ec.load(); err != nil {
		return err
	}

	if err := ec.sess.SetAttributes(name, attrs); err != nil {
		return err
	}

	if err := ec.save(); err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
		"Updated %d attribute(s) on %s", len(attrs), output.StyleNoun.Render(name))))
	return nil
}

// parseAttributePairs parses key=value arguments. Values go through the
// YAML scalar parser so "1.5" becomes a float and "true" a bool; anything
// unparsable stays a string.
func parseAttributePairs(pairs []string) (map[string]any, error) {
	attrs := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Wrap(errors.ErrValidation,
				fmt.Sprintf("invalid attribute %q, want key=value", pair))
		}
		if key == "name" {
			return nil, errors.Wrap(errors.ErrValidation,
				"attribute \"name\" cannot be set directly, use 'rigc blueprint rename'")
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		attrs[key] = value
	}
	return attrs, nil
}
