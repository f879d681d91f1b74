package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
)

// ManifestFilename returns the catalog filename for a type/version pair,
// following the built-in naming convention (arm_v0000.cue).
func ManifestFilename(typeName, version string) string {
	return fmt.Sprintf("%s_v%s.cue", strings.ToLower(typeName), version)
}

// ScaffoldManifest renders the manifest scaffold into dir. The target file
// must not exist yet; an existing manifest is never overwritten.
func ScaffoldManifest(dir string, data ManifestData) (string, error) {
	if err := ValidateTypeName(data.TypeName); err != nil {
		return "", err
	}
	if err := ValidateVersion(data.Version); err != nil {
		return "", err
	}

	content, err := RenderManifest(data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating catalog directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ManifestFilename(data.TypeName, data.Version))
	if _, err := os.Stat(path); err == nil {
		return "", errors.Wrap(errors.ErrState, fmt.Sprintf("manifest already exists: %s", path))
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing manifest %s: %w", path, err)
	}

	output.Debug("scaffolded manifest", "type", data.TypeName, "version", data.Version, "file", path)
	return path, nil
}

// ScaffoldBlueprint renders the starter blueprint to path. The target file
// must not exist unless force is set.
func ScaffoldBlueprint(path string, data BlueprintData, force bool) error {
	if data.Name == "" {
		return errors.Wrap(errors.ErrValidation, "blueprint name cannot be empty")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.Wrap(errors.ErrState,
			fmt.Sprintf("blueprint already exists: %s (use --force to overwrite)", path))
	}

	content, err := RenderBlueprint(data)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing blueprint %s: %w", path, err)
	}

	output.Debug("scaffolded blueprint", "name", data.Name, "file", path)
	return nil
}
