package blueprint

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/output"
	"github.com/rigforge/cli/internal/rig"
)

// Load reads a blueprint file and restores every entry into the session in
// document order, activating each module at its saved guide positions.
func Load(path string, sess *rig.Session) (*Document, error) {
	return replay(path, func(entry Entry, name string) error {
		_, err := sess.Restore(entry.Type, entry.Version(), name, entry.Attributes)
		return err
	})
}

// Stage reads a blueprint file and registers every entry without touching
// the host scene. A staged session is what blueprint build starts from: the
// whole scene is constructed in one BuildAll pass, so every node is
// attributed to the module that created it.
func Stage(path string, sess *rig.Session) (*Document, error) {
	return replay(path, func(entry Entry, name string) error {
		_, err := sess.Stage(entry.Type, entry.Version(), name, entry.Attributes)
		return err
	})
}

func replay(path string, apply func(Entry, string) error) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrNotFound, fmt.Sprintf("blueprint %s not found", path))
		}
		return nil, fmt.Errorf("reading blueprint %s: %w", path, err)
	}

	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading blueprint %s: %w", path, err)
	}

	for i, entry := range doc.Modules {
		name := entry.Name()
		if name == "" {
			return nil, errors.Wrap(errors.ErrValidation, fmt.Sprintf(
				"blueprint %s: modules[%d] (%s): attribute \"name\" is required", path, i, entry.Type))
		}
		if err := apply(entry, name); err != nil {
			return nil, fmt.Errorf("blueprint %s: modules[%d] (%s): %w", path, i, entry.Type, err)
		}
	}

	output.Debug("blueprint loaded", "path", path, "modules", len(doc.Modules))
	return doc, nil
}

// Save refreshes guide positions from the scene, assembles the registry,
// and writes the document. An empty registry writes an empty module list:
// removing the last module must still persist.
func Save(path string, sess *rig.Session, meta Metadata) error {
	if err := sess.RefreshPositions(); err != nil {
		return err
	}

	doc := &Document{APIVersion: APIVersion, Kind: Kind, Modules: []Entry{}}
	if sess.Registry().Len() > 0 {
		assembled, err := Assemble(sess.Registry())
		if err != nil {
			return err
		}
		doc = assembled
	}
	doc.Metadata = meta

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing blueprint %s: %w", path, err)
	}

	output.Debug("blueprint saved", "path", path, "modules", len(doc.Modules))
	return nil
}
