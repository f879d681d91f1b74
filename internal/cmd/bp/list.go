package bp

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
)

// moduleListing is one registry entry in list output.
type moduleListing struct {
	Index   int    `json:"index"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// NewListCmd creates the blueprint list command.
func NewListCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the blueprint's modules",
		Long: `List the blueprint's module instances in registry order.

Examples:
  # List modules as a table
  rigc blueprint list

  # List modules as JSON
  rigc blueprint list -o json`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runList(c, cfg, *file, outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "table", "Output format: table, yaml, json")

	return c
}

func runList(c *cobra.Command, cfg *config.GlobalConfig, fileFlag, format string) error {
	ec, err := newEditContext(cfg, fileFlag)
	if err != nil {
		return err
	}
	if err := ec.load(); err != nil {
		return err
	}

	instances := ec.sess.Registry().Instances()
	listings := make([]moduleListing, 0, len(instances))
	for i, inst := range instances {
		listings = append(listings, moduleListing{
			Index:   i,
			Type:    inst.TypeName(),
			Name:    inst.Name(),
			Version: inst.Version(),
			Status:  inst.Status().String(),
		})
	}

	switch format {
	case "table":
		rows := make([]output.ModuleRow, 0, len(listings))
		for _, l := range listings {
			rows = append(rows, output.ModuleRow{
				Index:    l.Index,
				TypeName: l.Type,
				Name:     l.Name,
				Version:  l.Version,
				Status:   l.Status,
			})
		}
		fmt.Fprintln(c.OutOrStdout(), output.RenderModuleTable(rows))
	case "yaml":
		data, err := yaml.Marshal(listings)
		if err != nil {
			return fmt.Errorf("marshaling module listing: %w", err)
		}
		fmt.Fprint(c.OutOrStdout(), string(data))
	case "json":
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling module listing: %w", err)
		}
		fmt.Fprintln(c.OutOrStdout(), string(data))
	default:
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("invalid output format %q (valid: table, yaml, json)", format))
	}

	return nil
}
