package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		Long: `Display version information for the rigc CLI.

Shows the CLI version, git commit, build date, and Go version.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVersion(c, outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text, yaml, json")

	return c
}

func runVersion(c *cobra.Command, format string) error {
	info := version.GetInfo()

	switch format {
	case "text":
		fmt.Fprintln(c.OutOrStdout(), info.String())
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprint(c.OutOrStdout(), string(data))
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprintln(c.OutOrStdout(), string(data))
	default:
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("invalid output format %q (valid: text, yaml, json)", format))
	}

	return nil
}
