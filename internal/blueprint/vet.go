package blueprint

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"sigs.k8s.io/yaml"

	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/rig"
)

//go:embed schema.cue
var schemaFS embed.FS

// Vet validates blueprint source against the embedded #Blueprint schema,
// then cross-checks every entry against the catalog: the type must be
// registered, the version (when set) must exist, and instance names must be
// unique. Problems are reported per entry with the module index.
func Vet(data []byte, filename string, cat rig.Catalog) error {
	if err := vetSchema(data, filename); err != nil {
		return err
	}

	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	var problems []string
	seen := make(map[string]int)
	for i, entry := range doc.Modules {
		if _, err := cat.Resolve(entry.Type, entry.Version()); err != nil {
			problems = append(problems, fmt.Sprintf("modules[%d]: %v", i, err))
			continue
		}

		name := entry.Name()
		if prev, dup := seen[name]; dup {
			problems = append(problems,
				fmt.Sprintf("modules[%d]: module name %q already used by modules[%d]", i, name, prev))
			continue
		}
		seen[name] = i
	}

	if len(problems) > 0 {
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("blueprint %s: %s", filename, strings.Join(problems, "; ")))
	}
	return nil
}

// vetSchema unifies the document with #Blueprint. YAML is converted to JSON
// first; JSON is valid CUE, so the document compiles directly.
func vetSchema(data []byte, filename string) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return errors.WrapValidation(err, fmt.Sprintf("parsing blueprint %s", filename))
	}

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return fmt.Errorf("reading embedded blueprint schema: %w", err)
	}

	ctx := cuecontext.New()
	compiled := ctx.CompileBytes(schemaData, cue.Filename("schema.cue"))
	if compiled.Err() != nil {
		return fmt.Errorf("compiling blueprint schema: %w", compiled.Err())
	}
	schema := compiled.LookupPath(cue.ParsePath("#Blueprint"))
	if !schema.Exists() {
		return fmt.Errorf("blueprint schema does not define #Blueprint")
	}

	doc := ctx.CompileBytes(jsonData, cue.Filename(filename))
	if doc.Err() != nil {
		return errors.WrapValidation(doc.Err(), fmt.Sprintf("compiling blueprint %s", filename))
	}

	if err := schema.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return errors.WrapValidation(err, fmt.Sprintf("validating blueprint %s", filename))
	}
	return nil
}
