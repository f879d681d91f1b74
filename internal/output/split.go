package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SplitOptions controls split file output.
type SplitOptions struct {
	// OutDir is the directory for split output
	OutDir string
	// Format specifies output format: "yaml" or "json"
	Format OutputFormat
}

// WriteSplitManifests writes each scene node to a separate file and
// returns the written filenames, relative to OutDir, paired with the
// owning module name. Files are named <kind>-<node-name>.<ext>
func WriteSplitManifests(nodes []NodeInfo, opts SplitOptions) (map[string]string, error) {
	if len(nodes) == 0 {
		return nil, nil
	}

	// Ensure output directory exists
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	sortNodeInfos(nodes)

	// Track filenames to handle collisions
	usedNames := make(map[string]int)
	written := make(map[string]string, len(nodes))

	for _, n := range nodes {
		filename := buildFilenameFromInfo(n, opts.Format, usedNames)
		path := filepath.Join(opts.OutDir, filename)

		if err := writeNodeFile(n, path, opts.Format); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		written[filename] = n.GetModule()

		Debug("wrote node file",
			"kind", n.GetKind(),
			"name", n.GetName(),
			"file", path,
		)
	}

	return written, nil
}

// buildFilenameFromInfo creates a filename for a scene node.
func buildFilenameFromInfo(n NodeInfo, format OutputFormat, usedNames map[string]int) string {
	ext := ".yaml"
	if format == FormatJSON {
		ext = ".json"
	}

	kind := strings.ToLower(n.GetKind())
	name := sanitizeName(n.GetName())
	baseName := kind + "-" + name

	count, exists := usedNames[baseName]
	if exists {
		usedNames[baseName] = count + 1
		return fmt.Sprintf("%s-%d%s", baseName, count+1, ext)
	}

	usedNames[baseName] = 1
	return baseName + ext
}

// sanitizeName makes a name safe for use in filenames.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "",
		"<", "",
		">", "",
		"|", "-",
	)
	return replacer.Replace(name)
}

// writeNodeFile writes a single node manifest to a file.
func writeNodeFile(n NodeInfo, destPath string, format OutputFormat) error {
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeNode(n.GetObject(), format, f)
}
