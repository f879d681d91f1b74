package catalog

import (
	"fmt"
	"sort"

	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/rig"
)

// Definition is one registered module type/version: its manifest plus the
// builder for its backing objects.
type Definition struct {
	Manifest Manifest
	Builder  rig.Builder
}

// Catalog maps module type names to their versioned definitions.
type Catalog struct {
	types map[string]map[string]Definition
}

// Compile-time assertion: *Catalog satisfies the session's lookup surface.
var _ rig.Catalog = (*Catalog)(nil)

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{types: make(map[string]map[string]Definition)}
}

// Register adds a definition. The manifest's type/version pair must not be
// registered yet.
func (c *Catalog) Register(def Definition) error {
	typeName := def.Manifest.Metadata.Type
	version := def.Manifest.Metadata.Version
	if typeName == "" || version == "" {
		return errors.Wrap(errors.ErrValidation,
			"manifest metadata.type and metadata.version must be set")
	}
	if def.Builder == nil {
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("module type %q version %q has no builder", typeName, version))
	}

	versions, ok := c.types[typeName]
	if !ok {
		versions = make(map[string]Definition)
		c.types[typeName] = versions
	}
	if _, exists := versions[version]; exists {
		return errors.Wrap(errors.ErrState,
			fmt.Sprintf("module type %q version %q is already registered", typeName, version))
	}

	versions[version] = def
	return nil
}

// Types returns the registered module type names, sorted.
func (c *Catalog) Types() []string {
	out := make([]string, 0, len(c.types))
	for t := range c.types {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Versions returns a type's versions in ascending order.
func (c *Catalog) Versions(typeName string) ([]string, error) {
	versions, ok := c.types[typeName]
	if !ok {
		return nil, errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown module type %q", typeName))
	}

	out := make([]string, 0, len(versions))
	for v := range versions {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// Latest returns the highest version of a type.
func (c *Catalog) Latest(typeName string) (string, error) {
	versions, err := c.Versions(typeName)
	if err != nil {
		return "", err
	}
	return versions[len(versions)-1], nil
}

// Lookup returns the definition for a type/version pair.
func (c *Catalog) Lookup(typeName, version string) (Definition, error) {
	versions, ok := c.types[typeName]
	if !ok {
		return Definition{}, errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown module type %q", typeName))
	}
	def, ok := versions[version]
	if !ok {
		return Definition{}, errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown version %q for module type %q", version, typeName))
	}
	return def, nil
}

// Resolve implements rig.Catalog. An empty version selects the latest.
// Returned defaults are deep copies; instances never alias the catalog.
func (c *Catalog) Resolve(typeName, version string) (rig.Module, error) {
	if version == "" {
		latest, err := c.Latest(typeName)
		if err != nil {
			return rig.Module{}, err
		}
		version = latest
	}

	def, err := c.Lookup(typeName, version)
	if err != nil {
		return rig.Module{}, err
	}

	return rig.Module{
		TypeName: def.Manifest.Metadata.Type,
		Version:  def.Manifest.Metadata.Version,
		Defaults: rig.Attributes(def.Manifest.Spec.Attributes).DeepCopy(),
		Builder:  def.Builder,
	}, nil
}
