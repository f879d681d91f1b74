// Package blueprint serializes a module registry to an ordered YAML document
// and replays one back into a session. The document is the only state shared
// between rigc invocations.
package blueprint

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/rig"
)

const (
	// APIVersion is the blueprint document schema version.
	APIVersion = "rigforge.dev/v1"

	// Kind identifies blueprint documents.
	Kind = "Blueprint"
)

// Document is one serialized rig: identity metadata plus the ordered module
// list. Module order is build order.
type Document struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Modules    []Entry  `yaml:"modules"`
}

// Metadata identifies the rig a blueprint describes.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Entry is one module of the blueprint. It serializes as a single-key
// mapping of type name to attributes, so the YAML reads as a typed list:
//
//	modules:
//	  - Arm:
//	      name: Arm_0
//	      version: "0000"
type Entry struct {
	Type       string
	Attributes rig.Attributes
}

// Name returns the entry's instance name attribute.
func (e Entry) Name() string {
	name, _ := e.Attributes["name"].(string)
	return name
}

// Version returns the entry's version attribute, empty when unset.
func (e Entry) Version() string {
	version, _ := e.Attributes["version"].(string)
	return version
}

// MarshalYAML emits the single-key mapping form.
func (e Entry) MarshalYAML() (any, error) {
	return map[string]rig.Attributes{e.Type: e.Attributes}, nil
}

// UnmarshalYAML accepts only the single-key mapping form.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return errors.Wrap(errors.ErrValidation, fmt.Sprintf(
			"line %d: module entry must be a single-key mapping of type name to attributes", value.Line))
	}

	if err := value.Content[0].Decode(&e.Type); err != nil {
		return errors.WrapValidation(err, "decoding module type name")
	}
	if err := value.Content[1].Decode(&e.Attributes); err != nil {
		return errors.WrapValidation(err, fmt.Sprintf("decoding attributes of module %q", e.Type))
	}
	return nil
}
