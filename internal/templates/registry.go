package templates

import "fmt"

// scaffolds is the internal registry of available scaffolds.
var scaffolds = map[string]Template{
	"manifest": {
		Name:        "manifest",
		Description: "Module manifest for the user catalog directory",
		Filename:    "<type>_v<version>.cue",
	},
	"blueprint": {
		Name:        "blueprint",
		Description: "Starter blueprint with an empty module list",
		Filename:    "rig.blueprint.yaml",
	},
}

// Get returns a scaffold by name.
func Get(name string) (Template, error) {
	t, ok := scaffolds[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown scaffold %q; valid scaffolds: manifest, blueprint", name)
	}
	return t, nil
}

// Names returns all scaffold names.
func Names() []string {
	return []string{"manifest", "blueprint"}
}
