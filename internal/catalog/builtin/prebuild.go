package builtin

import (
	"github.com/rigforge/cli/internal/catalog"
	"github.com/rigforge/cli/internal/host"
	"github.com/rigforge/cli/internal/output"
	"github.com/rigforge/cli/internal/rig"
)

// PreBuild returns the builder for the scene-reset module. Creating it
// clears the host scene, so it is registered first in a rig that wants to
// build into a fresh scene.
func PreBuild(catalog.Manifest) rig.Builder {
	return func(scene host.Scene, name string, _ rig.Attributes) (rig.Backing, error) {
		return &preBuildBacking{scene: scene, name: name}, nil
	}
}

type preBuildBacking struct {
	scene host.Scene
	name  string
}

func (b *preBuildBacking) Create() error {
	return b.scene.Clear()
}

func (b *preBuildBacking) Finish(rig.Attributes) error {
	output.Debug("new scene opened", "module", b.name)
	return nil
}

func (b *preBuildBacking) Build(attrs rig.Attributes) error {
	if err := b.Create(); err != nil {
		return err
	}
	return b.Finish(attrs)
}

// Remove is a no-op: the backing owns no scene nodes.
func (b *preBuildBacking) Remove() error {
	return nil
}

func (b *preBuildBacking) GuidePositions() ([]host.Vec3, error) {
	return nil, nil
}

func (b *preBuildBacking) Rename(newName string) error {
	b.name = newName
	return nil
}
