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

// NewCatalogShowCmd creates the catalog show command.
func NewCatalogShowCmd(cfg *config.GlobalConfig) *cobra.Command {
	var (
		versionFlag string
		outputFlag  string
	)

	c := &cobra.Command{
		Use:   "show <type>",
		Short: "Show a module type's manifest",
		Long: `Show the manifest of one module type: identity, default published
attributes, and the ordered guide layout.

Examples:
  # Show the latest version of the Arm module
  rigc catalog show Arm

  # Show a specific version as YAML
  rigc catalog show Singleton --version 0000 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCatalogShow(c, cfg, args[0], versionFlag, outputFlag)
		},
	}

	c.Flags().StringVar(&versionFlag, "version", "", "Module version (default: latest)")
	c.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text, yaml, json")

	return c
}

func runCatalogShow(c *cobra.Command, cfg *config.GlobalConfig, typeName, version, format string) error {
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	if version == "" {
		version, err = cat.Latest(typeName)
		if err != nil {
			return err
		}
	}

	def, err := cat.Lookup(typeName, version)
	if err != nil {
		return err
	}
	manifest := def.Manifest

	switch format {
	case "text":
		fmt.Fprintf(c.OutOrStdout(), "Type:        %s\n", output.StyleNoun.Render(manifest.Metadata.Type))
		fmt.Fprintf(c.OutOrStdout(), "Version:     %s\n", manifest.Metadata.Version)
		if manifest.Metadata.Description != "" {
			fmt.Fprintf(c.OutOrStdout(), "Description: %s\n", manifest.Metadata.Description)
		}

		if len(manifest.Spec.Attributes) > 0 {
			attrs, err := yaml.Marshal(manifest.Spec.Attributes)
			if err != nil {
				return fmt.Errorf("marshaling attributes: %w", err)
			}
			fmt.Fprintf(c.OutOrStdout(), "\nDefault attributes:\n%s", indent(string(attrs)))
		}

		if len(manifest.Spec.Guides) > 0 {
			fmt.Fprintln(c.OutOrStdout(), "\nGuides:")
			for _, g := range manifest.Spec.Guides {
				fmt.Fprintf(c.OutOrStdout(), "  %-12s [%g, %g, %g]\n",
					g.Name, g.Position[0], g.Position[1], g.Position[2])
			}
		}
	case "yaml":
		data, err := yaml.Marshal(manifest)
		if err != nil {
			return fmt.Errorf("marshaling manifest: %w", err)
		}
		fmt.Fprint(c.OutOrStdout(), string(data))
	case "json":
		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling manifest: %w", err)
		}
		fmt.Fprintln(c.OutOrStdout(), string(data))
	default:
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("invalid output format %q (valid: text, yaml, json)", format))
	}

	return nil
}

func indent(s string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}
