package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReportOptions controls build report output.
type ReportOptions struct {
	// JSON outputs structured JSON instead of human-readable text
	JSON bool
	// Writer is the output destination
	Writer io.Writer
}

// BuildReport summarizes a blueprint build for terminal output.
type BuildReport struct {
	// Blueprint is the source blueprint path or name.
	Blueprint string `json:"blueprint"`

	// Modules lists per-module outcomes in build order.
	Modules []ModuleOutcome `json:"modules"`

	// NodeCount is the total number of scene nodes after the build.
	NodeCount int `json:"nodeCount"`

	// Warnings lists non-fatal problems encountered during the build.
	Warnings []string `json:"warnings,omitempty"`

	// Errors lists build failures.
	Errors []string `json:"errors,omitempty"`
}

// ModuleOutcome is one module's build result.
type ModuleOutcome struct {
	TypeName string `json:"type"`
	Name     string `json:"name"`
	Version  string `json:"version"`
	Status   string `json:"status"`
	Nodes    int    `json:"nodes"`
}

// WriteBuildReport writes a build report in human or JSON form.
func WriteBuildReport(report *BuildReport, opts ReportOptions) error {
	if opts.JSON {
		encoder := json.NewEncoder(opts.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
	return writeReportHuman(report, opts.Writer)
}

// writeReportHuman writes the report in human-readable format.
func writeReportHuman(report *BuildReport, w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("Blueprint: ")
	sb.WriteString(StyleNoun.Render(report.Blueprint))
	sb.WriteString("\n\n")

	sb.WriteString("Modules:\n")
	for _, m := range report.Modules {
		line := FormatModuleLine(m.TypeName, m.Name, m.Status)
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(StyleSummary.Render(fmt.Sprintf("Scene nodes: %d", report.NodeCount)))
	sb.WriteString("\n")

	if len(report.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warning := range report.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", warning))
		}
	}

	if len(report.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, e := range report.Errors {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", e))
		}
	}

	_, err := w.Write([]byte(sb.String()))
	return err
}
