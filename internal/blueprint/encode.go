package blueprint

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rigforge/cli/internal/errors"
)

// Encode writes the document as YAML. Entry order follows the module list
// and map keys are emitted sorted, so encoding the same document twice
// produces identical bytes.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding blueprint: %w", err)
	}
	return enc.Close()
}

// Decode parses a blueprint document. Unknown top-level fields, a foreign
// apiVersion or kind, and module entries that are not single-key mappings
// are all rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WrapValidation(err, "decoding blueprint")
	}

	if doc.APIVersion != APIVersion {
		return nil, errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("unsupported apiVersion %q, want %q", doc.APIVersion, APIVersion))
	}
	if doc.Kind != Kind {
		return nil, errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("unsupported kind %q, want %q", doc.Kind, Kind))
	}

	return &doc, nil
}
