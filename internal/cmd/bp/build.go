package bp

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
	"github.com/rigforge/cli/internal/rig"
)

// buildOptions holds the flags for the build command.
type buildOptions struct {
	output     string
	split      bool
	outDir     string
	reportJSON bool
}

// NewBuildCmd creates the blueprint build command.
func NewBuildCmd(cfg *config.GlobalConfig, file *string) *cobra.Command {
	opts := &buildOptions{}

	c := &cobra.Command{
		Use:   "build",
		Short: "Build the blueprint into a scene manifest",
		Long: `Build the blueprint: replay every module into a fresh scene and
render the result as an ordered node manifest.

Modules build in blueprint order at their saved guide positions. Nodes
are sorted by kind (groups, joints, controls, constraints) and written
to stdout, or one file per node with --split. The build report goes to
stderr.

Exit codes:
  0 - All modules built
  3 - One or more modules failed against the scene
  4 - The blueprint has no modules

Examples:
  # Build to stdout as YAML
  rigc blueprint build

  # Build as JSON
  rigc blueprint build -o json

  # Write one file per node
  rigc blueprint build --split --out-dir ./scene

  # Machine-readable build report
  rigc blueprint build --report-json`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runBuild(c, cfg, *file, opts)
		},
	}

	c.Flags().StringVarP(&opts.output, "output", "o", "yaml", "Output format: yaml, json")
	c.Flags().BoolVar(&opts.split, "split", false, "Write separate files per node")
	c.Flags().StringVar(&opts.outDir, "out-dir", "", "Directory for split output (default: configured scene directory)")
	c.Flags().BoolVar(&opts.reportJSON, "report-json", false, "Write the build report as JSON")

	return c
}

func runBuild(c *cobra.Command, cfg *config.GlobalConfig, fileFlag string, opts *buildOptions) error {
	format := output.ParseOutputFormat(opts.output)
	if format != output.FormatYAML && format != output.FormatJSON {
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("invalid output format %q (valid: yaml, json)", opts.output))
	}

	ec, err := newEditContext(cfg, fileFlag)
	if err != nil {
		return err
	}
	if err := ec.stage(); err != nil {
		return err
	}

	var result *rig.BuildResult
	var buildErr error
	spinErr := output.RunWithSpinner(context.Background(), func() error {
		result, buildErr = ec.sess.BuildAll()
		return nil
	}, output.WithTitle(fmt.Sprintf("Building %s...", ec.path)))
	if spinErr != nil {
		return spinErr
	}
	if result == nil {
		// Empty blueprint: nothing staged, nothing to render.
		return buildErr
	}

	if err := writeBuildReport(c, ec.path, result, opts.reportJSON); err != nil {
		return err
	}

	nodes := make([]output.NodeInfo, 0, len(result.Nodes))
	for i := range result.Nodes {
		nodes = append(nodes, &result.Nodes[i])
	}

	if opts.split {
		outDir := opts.outDir
		if outDir == "" {
			outDir = config.ResolveScene("", cfg.Config.Scene).Value
		}
		written, err := output.WriteSplitManifests(nodes, output.SplitOptions{
			OutDir: outDir,
			Format: format,
		})
		if err != nil {
			return err
		}
		printSplitTree(c, outDir, written)
	} else if err := output.WriteManifests(nodes, output.ManifestOptions{
		Format: format,
		Writer: c.OutOrStdout(),
	}); err != nil {
		return err
	}

	if buildErr != nil {
		return errors.NewExitError(buildErr, errors.ExitCodeFromError(buildErr))
	}
	return nil
}

// writeBuildReport renders the per-module outcome report to stderr.
func writeBuildReport(c *cobra.Command, path string, result *rig.BuildResult, asJSON bool) error {
	report := &output.BuildReport{
		Blueprint: path,
		NodeCount: len(result.Nodes),
	}
	for _, o := range result.Outcomes {
		report.Modules = append(report.Modules, output.ModuleOutcome{
			TypeName: o.TypeName,
			Name:     o.Name,
			Version:  o.Version,
			Status:   o.Status.String(),
			Nodes:    o.Nodes,
		})
		if o.Err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", o.Name, o.Err))
		}
	}

	return output.WriteBuildReport(report, output.ReportOptions{
		JSON:   asJSON,
		Writer: c.ErrOrStderr(),
	})
}

// printSplitTree shows the written files as a tree, one entry per node,
// described by the owning module.
func printSplitTree(c *cobra.Command, outDir string, written map[string]string) {
	files := make(map[string]string, len(written))
	for filename, module := range written {
		desc := ""
		if module != "" {
			desc = "from " + module
		}
		files[filename] = desc
	}
	fmt.Fprint(c.OutOrStdout(), output.RenderFileTree(outDir, files))
}
