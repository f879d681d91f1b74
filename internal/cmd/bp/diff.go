package bp

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/blueprint"
	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
)

// NewDiffCmd creates the blueprint diff command.
func NewDiffCmd(_ *config.GlobalConfig) *cobra.Command {
	var noColorFlag bool

	c := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Show differences between two blueprints",
		Long: `Compare two blueprint files module by module.

Shows added and removed modules, attribute-level diffs for modules
present in both, and whether shared modules were reordered (module order
is build order, so reordering is a real change).

Exit codes:
  0 - Blueprints match
  1 - Blueprints differ

Examples:
  rigc blueprint diff rig.blueprint.yaml rig.blueprint.v2.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, args[0], args[1], noColorFlag)
		},
	}

	c.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	return c
}

func runDiff(c *cobra.Command, oldPath, newPath string, noColor bool) error {
	oldDoc, err := readBlueprint(oldPath)
	if err != nil {
		return err
	}
	newDoc, err := readBlueprint(newPath)
	if err != nil {
		return err
	}

	result, err := blueprint.Diff(oldDoc, newDoc, !noColor)
	if err != nil {
		return err
	}

	modified := make([]output.ModifiedItem, 0, len(result.Modified))
	for _, m := range result.Modified {
		modified = append(modified, output.ModifiedItem{Name: m.Name, Diff: m.Diff})
	}
	if result.IsEmpty() {
		fmt.Fprintln(c.OutOrStdout(), output.RenderDiff(nil, nil, nil))
		return nil
	}

	if len(result.Added)+len(result.Removed)+len(modified) > 0 {
		fmt.Fprint(c.OutOrStdout(), output.RenderDiff(result.Added, result.Removed, modified))
	}
	if result.Reordered {
		fmt.Fprintln(c.OutOrStdout(), output.StyleWarning.Render("Module order changed."))
	}

	return errors.NewExitError(
		fmt.Errorf("blueprints %s and %s differ", oldPath, newPath),
		errors.ExitGeneralError,
	)
}

// readBlueprint reads and decodes one blueprint file.
func readBlueprint(path string) (*blueprint.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrNotFound,
				fmt.Sprintf("blueprint %s not found", path))
		}
		return nil, fmt.Errorf("reading blueprint %s: %w", path, err)
	}

	doc, err := blueprint.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading blueprint %s: %w", path, err)
	}
	return doc, nil
}
