package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed scaffolds/*.tmpl
var scaffoldFS embed.FS

// render parses an embedded scaffold and executes it with the given data.
func render(name string, data any) ([]byte, error) {
	content, err := scaffoldFS.ReadFile("scaffolds/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading scaffold %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing scaffold %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing scaffold %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// RenderManifest renders the module manifest scaffold.
func RenderManifest(data ManifestData) ([]byte, error) {
	return render("manifest.cue.tmpl", data)
}

// RenderBlueprint renders the starter blueprint scaffold.
func RenderBlueprint(data BlueprintData) ([]byte, error) {
	return render("blueprint.yaml.tmpl", data)
}
