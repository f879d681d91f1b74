package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rigforge/cli/pkg/weights"
)

// ManifestOptions controls manifest output formatting.
type ManifestOptions struct {
	// Format specifies output format: "yaml" or "json"
	Format OutputFormat
	// Writer is the output destination
	Writer io.Writer
}

// NodeInfo provides information about a scene node for output formatting.
// This interface allows the output package to work with nodes without
// importing the host package.
type NodeInfo interface {
	GetKind() string
	GetName() string
	GetModule() string
	GetObject() map[string]any
}

// WriteManifests writes scene nodes to the writer in the specified format.
// Nodes are sorted by kind weight for consistent output.
func WriteManifests(nodes []NodeInfo, opts ManifestOptions) error {
	if len(nodes) == 0 {
		return nil
	}

	// Sort nodes by weight then by name for deterministic output
	sortNodeInfos(nodes)

	switch opts.Format {
	case FormatJSON:
		return writeJSON(nodes, opts.Writer)
	case FormatYAML:
		return writeYAML(nodes, opts.Writer)
	case FormatTable, FormatDir:
		return fmt.Errorf("format %s not supported for manifest output", opts.Format)
	}
	return writeYAML(nodes, opts.Writer) // Default to YAML
}

// sortNodeInfos sorts nodes by kind weight, then by module, then by name.
func sortNodeInfos(nodes []NodeInfo) {
	sort.SliceStable(nodes, func(i, j int) bool {
		// Primary: sort by weight
		wi := weights.GetWeight(nodes[i].GetKind())
		wj := weights.GetWeight(nodes[j].GetKind())
		if wi != wj {
			return wi < wj
		}

		// Secondary: sort by owning module
		mi := nodes[i].GetModule()
		mj := nodes[j].GetModule()
		if mi != mj {
			return mi < mj
		}

		// Tertiary: sort by name
		return nodes[i].GetName() < nodes[j].GetName()
	})
}

// writeYAML writes nodes as YAML documents separated by ---.
// The yaml.v3 encoder automatically adds document separators between documents.
func writeYAML(nodes []NodeInfo, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	for _, n := range nodes {
		if err := encoder.Encode(n.GetObject()); err != nil {
			return fmt.Errorf("encoding node %s/%s: %w",
				n.GetKind(), n.GetName(), err)
		}
	}

	return encoder.Close()
}

// writeJSON writes nodes as a JSON array.
func writeJSON(nodes []NodeInfo, w io.Writer) error {
	objects := make([]map[string]any, len(nodes))
	for i, n := range nodes {
		objects[i] = n.GetObject()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(objects); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// writeNode writes a single node manifest to the writer.
func writeNode(obj map[string]any, format OutputFormat, w io.Writer) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(obj)
	case FormatTable, FormatDir:
		return fmt.Errorf("format %s not supported for single node output", format)
	}
	// Default to YAML
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(obj)
	if closeErr := encoder.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
