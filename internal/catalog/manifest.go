// Package catalog maps module type names to versioned definitions: a CUE
// manifest describing the module plus the builder constructing its backing
// object. Version identifiers are four-digit zero-padded ordinals ("0000",
// "0001"), so lexicographic order is numeric order.
package catalog

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/rigforge/cli/internal/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// Manifest describes one module type/version: identity metadata plus the
// default attributes and guide layout its backing is built from.
type Manifest struct {
	APIVersion string       `json:"apiVersion"`
	Kind       string       `json:"kind"`
	Metadata   Metadata     `json:"metadata"`
	Spec       ManifestSpec `json:"spec"`
}

// Metadata identifies a module manifest.
type Metadata struct {
	// Type is the module type name instances are created from.
	Type string `json:"type"`

	// Version is a four-digit zero-padded ordinal.
	Version string `json:"version"`

	// Description is shown in catalog listings.
	Description string `json:"description,omitempty"`
}

// ManifestSpec carries the module's default published attributes and its
// ordered guide layout.
type ManifestSpec struct {
	Attributes map[string]any `json:"attributes,omitempty"`
	Guides     []Guide        `json:"guides,omitempty"`
}

// Guide is one entry of a module's ordered guide layout.
type Guide struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
}

// ManifestParser compiles and validates module manifests against the
// embedded #Manifest schema.
type ManifestParser struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewManifestParser compiles the embedded schema.
func NewManifestParser() (*ManifestParser, error) {
	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded manifest schema: %w", err)
	}

	ctx := cuecontext.New()
	compiled := ctx.CompileBytes(schemaData, cue.Filename("schema.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling manifest schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Manifest"))
	if !schema.Exists() {
		return nil, fmt.Errorf("manifest schema does not define #Manifest")
	}

	return &ManifestParser{ctx: ctx, schema: schema}, nil
}

// Parse compiles manifest source, unifies it with #Manifest, validates
// concreteness, and decodes the result. The filename is carried into CUE
// error positions.
func (p *ManifestParser) Parse(data []byte, filename string) (Manifest, error) {
	doc := p.ctx.CompileBytes(data, cue.Filename(filename))
	if doc.Err() != nil {
		return Manifest{}, errors.WrapValidation(doc.Err(),
			fmt.Sprintf("compiling manifest %s", filename))
	}

	unified := p.schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Manifest{}, errors.WrapValidation(err,
			fmt.Sprintf("validating manifest %s", filename))
	}

	var m Manifest
	if err := unified.Decode(&m); err != nil {
		return Manifest{}, errors.WrapValidation(err,
			fmt.Sprintf("decoding manifest %s", filename))
	}
	return m, nil
}
