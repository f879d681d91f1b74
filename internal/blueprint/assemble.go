package blueprint

import (
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/rig"
)

// Assemble snapshots the registry into a fresh document, one entry per
// registered module in registry order. Attribute snapshots are deep copies;
// editing a live instance after assembly does not change the document. The
// module version is folded into the attributes so a document rebuilds
// against the exact catalog entries it was saved from.
func Assemble(reg *rig.Registry) (*Document, error) {
	if reg.Len() == 0 {
		return nil, errors.Wrap(errors.ErrState, "nothing to build: blueprint registry is empty")
	}

	doc := &Document{
		APIVersion: APIVersion,
		Kind:       Kind,
		Modules:    make([]Entry, 0, reg.Len()),
	}

	for _, inst := range reg.Instances() {
		attrs := inst.Attributes()
		attrs["version"] = inst.Version()
		doc.Modules = append(doc.Modules, Entry{Type: inst.TypeName(), Attributes: attrs})
	}

	return doc, nil
}
