package bp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/blueprint"
	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
)

// NewVetCmd creates the blueprint vet command.
func NewVetCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate a blueprint file",
		Long: `Validate a blueprint file.

The document is checked against the blueprint schema, then every module
entry is cross-checked against the catalog: the type must be registered,
the version must exist, and instance names must be unique.

Examples:
  rigc blueprint vet
  rigc blueprint vet -f rigs/biped.yaml`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg, *file)
		},
	}
}

func runVet(c *cobra.Command, cfg *config.GlobalConfig, fileFlag string) error {
	ec, err := newEditContext(cfg, fileFlag)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(ec.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrNotFound,
				fmt.Sprintf("blueprint %s not found", ec.path))
		}
		return fmt.Errorf("reading blueprint %s: %w", ec.path, err)
	}

	if err := blueprint.Vet(data, ec.path, ec.cat); err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("Blueprint is valid: %s", ec.path)))
	return nil
}
