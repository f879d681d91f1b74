package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
)

// typeListing is one catalog type in list output.
type typeListing struct {
	Type        string   `json:"type"`
	Versions    []string `json:"versions"`
	Latest      string   `json:"latest"`
	Description string   `json:"description,omitempty"`
}

// NewCatalogListCmd creates the catalog list command.
func NewCatalogListCmd(cfg *config.GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "list",
		Short: "List available module types",
		Long: `List every module type in the catalog with its available versions.

Examples:
  # List module types as a table
  rigc catalog list

  # List module types as YAML
  rigc catalog list -o yaml`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runCatalogList(c, cfg, outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "table", "Output format: table, yaml, json")

	return c
}

func runCatalogList(c *cobra.Command, cfg *config.GlobalConfig, format string) error {
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	listings := make([]typeListing, 0, len(cat.Types()))
	for _, typeName := range cat.Types() {
		versions, err := cat.Versions(typeName)
		if err != nil {
			return err
		}
		latest := versions[len(versions)-1]

		def, err := cat.Lookup(typeName, latest)
		if err != nil {
			return err
		}

		listings = append(listings, typeListing{
			Type:        typeName,
			Versions:    versions,
			Latest:      latest,
			Description: def.Manifest.Metadata.Description,
		})
	}

	switch format {
	case "table":
		t := output.NewTable("TYPE", "VERSIONS", "LATEST", "DESCRIPTION")
		for _, l := range listings {
			t.Row(l.Type, strings.Join(l.Versions, ", "), l.Latest, l.Description)
		}
		fmt.Fprintln(c.OutOrStdout(), t.String())
	case "yaml":
		data, err := yaml.Marshal(listings)
		if err != nil {
			return fmt.Errorf("marshaling catalog listing: %w", err)
		}
		fmt.Fprint(c.OutOrStdout(), string(data))
	case "json":
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling catalog listing: %w", err)
		}
		fmt.Fprintln(c.OutOrStdout(), string(data))
	default:
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("invalid output format %q (valid: table, yaml, json)", format))
	}

	return nil
}
