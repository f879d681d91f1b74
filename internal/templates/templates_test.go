package templates_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigforge/cli/internal/blueprint"
	"github.com/rigforge/cli/internal/catalog"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/templates"
)

func TestRenderManifest(t *testing.T) {
	t.Run("rendered manifest validates against the catalog schema", func(t *testing.T) {
		content, err := templates.RenderManifest(templates.ManifestData{
			TypeName:    "Tail",
			Version:     "0000",
			Description: "Tail chain.",
		})
		require.NoError(t, err)

		parser, err := catalog.NewManifestParser()
		require.NoError(t, err)

		m, err := parser.Parse(content, "tail_v0000.cue")
		require.NoError(t, err)
		assert.Equal(t, "Tail", m.Metadata.Type)
		assert.Equal(t, "0000", m.Metadata.Version)
		assert.Equal(t, "Tail chain.", m.Metadata.Description)
		require.Len(t, m.Spec.Guides, 1)
		assert.Equal(t, "root", m.Spec.Guides[0].Name)
	})
}

func TestScaffoldManifest(t *testing.T) {
	data := templates.ManifestData{TypeName: "Tail", Version: "0001", Description: "Tail chain."}

	t.Run("writes the manifest using the catalog filename convention", func(t *testing.T) {
		dir := t.TempDir()

		path, err := templates.ScaffoldManifest(dir, data)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "tail_v0001.cue"), path)
		assert.FileExists(t, path)
	})

	t.Run("refuses to overwrite an existing manifest", func(t *testing.T) {
		dir := t.TempDir()

		_, err := templates.ScaffoldManifest(dir, data)
		require.NoError(t, err)

		_, err = templates.ScaffoldManifest(dir, data)
		assert.ErrorContains(t, err, "already exists")
		assert.ErrorIs(t, err, errors.ErrState)
	})

	t.Run("rejects invalid type names and versions", func(t *testing.T) {
		dir := t.TempDir()

		_, err := templates.ScaffoldManifest(dir, templates.ManifestData{TypeName: "2Tail", Version: "0000"})
		assert.ErrorContains(t, err, "invalid module type name")
		assert.ErrorIs(t, err, errors.ErrValidation)

		_, err = templates.ScaffoldManifest(dir, templates.ManifestData{TypeName: "Tail", Version: "1"})
		assert.ErrorContains(t, err, "invalid version")
		assert.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestScaffoldBlueprint(t *testing.T) {
	t.Run("starter blueprint decodes with an empty module list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rig.blueprint.yaml")

		err := templates.ScaffoldBlueprint(path, templates.BlueprintData{Name: "biped", Description: "Test rig"}, false)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		doc, err := blueprint.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "biped", doc.Metadata.Name)
		assert.Equal(t, "Test rig", doc.Metadata.Description)
		assert.Empty(t, doc.Modules)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rig.blueprint.yaml")

		require.NoError(t, templates.ScaffoldBlueprint(path, templates.BlueprintData{Name: "biped"}, false))

		err := templates.ScaffoldBlueprint(path, templates.BlueprintData{Name: "biped"}, false)
		assert.ErrorContains(t, err, "already exists")
		assert.ErrorIs(t, err, errors.ErrState)

		assert.NoError(t, templates.ScaffoldBlueprint(path, templates.BlueprintData{Name: "biped"}, true))
	})
}

func TestGet(t *testing.T) {
	t.Run("known scaffolds are listed", func(t *testing.T) {
		for _, name := range templates.Names() {
			tmpl, err := templates.Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, tmpl.Name)
			assert.NotEmpty(t, tmpl.Description)
		}
	})

	t.Run("unknown scaffold errors", func(t *testing.T) {
		_, err := templates.Get("widget")
		assert.ErrorContains(t, err, "unknown scaffold")
	})
}
