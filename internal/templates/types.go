// Package templates provides the embedded scaffolds behind `rigc catalog
// init` and `rigc blueprint init`.
package templates

// Template describes one available scaffold.
type Template struct {
	// Name is the scaffold identifier (manifest, blueprint).
	Name string

	// Description explains what the scaffold produces.
	Description string

	// Filename is the rendered output filename pattern.
	Filename string
}

// ManifestData holds the data for rendering a module manifest scaffold.
type ManifestData struct {
	// TypeName is the module type the manifest declares.
	TypeName string

	// Version is the four-digit zero-padded version ordinal.
	Version string

	// Description is the manifest description shown in catalog listings.
	Description string
}

// BlueprintData holds the data for rendering a starter blueprint.
type BlueprintData struct {
	// Name is the rig name written into the blueprint metadata.
	Name string

	// Description is the optional rig description.
	Description string
}
