package builtin

import (
	"fmt"

	"github.com/rigforge/cli/internal/catalog"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/host"
	"github.com/rigforge/cli/internal/rig"
)

// defaultControlShape is used when neither the manifest defaults nor the
// instance attributes set controlShape.
const defaultControlShape = "cube"

// Chain returns the builder for guide-chain modules: an ordered joint chain
// parented under a module group, finished into per-joint controls with
// parent constraints. Singleton, Arm, Leg, Spine, and all user manifests
// are chain modules; they differ only in their manifests.
func Chain(m catalog.Manifest) rig.Builder {
	return func(scene host.Scene, name string, attrs rig.Attributes) (rig.Backing, error) {
		seen := make(map[string]bool, len(m.Spec.Guides))
		for _, g := range m.Spec.Guides {
			if seen[g.Name] {
				return nil, errors.Wrap(errors.ErrValidation,
					fmt.Sprintf("module type %q: duplicate guide name %q", m.Metadata.Type, g.Name))
			}
			seen[g.Name] = true
		}

		positions := restPositions(m)
		saved, ok, err := savedPositions(attrs)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", name, err)
		}
		if ok {
			if len(saved) != len(m.Spec.Guides) {
				return nil, errors.Wrap(errors.ErrValidation,
					fmt.Sprintf("module %q has %d saved positions for %d guides", name, len(saved), len(m.Spec.Guides)))
			}
			positions = saved
		}

		return &chainBacking{scene: scene, name: name, manifest: m, positions: positions}, nil
	}
}

// chainBacking owns one instance's scene nodes: a module group, the guide
// joint chain under it, and after finish the control chain driving it.
type chainBacking struct {
	scene     host.Scene
	name      string
	manifest  catalog.Manifest
	positions []host.Vec3

	// external lists constraint nodes created outside the module group
	// (constrainTo targets); they are deleted with the module.
	external []string
}

func (b *chainBacking) group() string {
	return b.name + "_grp"
}

func (b *chainBacking) guide(guideName string) string {
	return fmt.Sprintf("%s_%s_guide_jnt", b.name, guideName)
}

func (b *chainBacking) control(guideName string) string {
	return fmt.Sprintf("%s_%s_ctrl", b.name, guideName)
}

// Create places the module group and the guide joint chain.
func (b *chainBacking) Create() error {
	if err := b.create(); err != nil {
		// Tear down partial guides so a failed create leaves no trace.
		if b.scene.Exists(b.group()) {
			_ = b.scene.Delete(b.group())
		}
		return err
	}
	return nil
}

func (b *chainBacking) create() error {
	if err := b.scene.CreateGroup(b.group()); err != nil {
		return err
	}

	parent := b.group()
	for i, g := range b.manifest.Spec.Guides {
		jnt := b.guide(g.Name)
		if err := b.scene.CreateJoint(jnt, b.positions[i]); err != nil {
			return err
		}
		if err := b.scene.Parent(jnt, parent); err != nil {
			return err
		}
		parent = jnt
	}
	return nil
}

// Finish builds the control chain at the current guide positions and
// constrains each joint to its control. A retried finish resumes past
// controls that already exist. parentTo and constrainTo published
// attributes hook the module up to the rest of the rig.
func (b *chainBacking) Finish(attrs rig.Attributes) error {
	shape := stringAttr(attrs, "controlShape", defaultControlShape)

	parent := b.group()
	for _, g := range b.manifest.Spec.Guides {
		jnt := b.guide(g.Name)
		ctrl := b.control(g.Name)

		if !b.scene.Exists(ctrl) {
			pos, err := b.scene.Position(jnt)
			if err != nil {
				return err
			}
			if err := b.scene.CreateControl(ctrl, shape, pos); err != nil {
				return err
			}
			if err := b.scene.Parent(ctrl, parent); err != nil {
				return err
			}
			if err := b.scene.CreateConstraint(ctrl, jnt); err != nil {
				return err
			}
		}
		parent = ctrl
	}

	if target := stringAttr(attrs, "parentTo", ""); target != "" {
		if err := b.scene.Parent(b.group(), target); err != nil {
			return err
		}
	}
	if target := stringAttr(attrs, "constrainTo", ""); target != "" && len(b.manifest.Spec.Guides) > 0 {
		root := b.control(b.manifest.Spec.Guides[0].Name)
		if err := b.scene.CreateConstraint(root, target); err != nil {
			return err
		}
		b.external = append(b.external, target+"_parentConstraint")
	}

	return nil
}

// Build constructs guides and controls in one step from a saved snapshot.
func (b *chainBacking) Build(attrs rig.Attributes) error {
	if err := b.Create(); err != nil {
		return err
	}
	return b.Finish(attrs)
}

// Remove deletes everything the backing created. Deleting the module group
// cascades to the joint and control chains underneath it.
func (b *chainBacking) Remove() error {
	for _, node := range b.external {
		if !b.scene.Exists(node) {
			continue
		}
		if err := b.scene.Delete(node); err != nil {
			return err
		}
	}
	b.external = nil

	if !b.scene.Exists(b.group()) {
		return nil
	}
	return b.scene.Delete(b.group())
}

// GuidePositions reads live guide positions, falling back to the
// construction-time positions for guides not yet in the scene.
func (b *chainBacking) GuidePositions() ([]host.Vec3, error) {
	out := make([]host.Vec3, len(b.manifest.Spec.Guides))
	for i, g := range b.manifest.Spec.Guides {
		jnt := b.guide(g.Name)
		if !b.scene.Exists(jnt) {
			out[i] = b.positions[i]
			continue
		}
		pos, err := b.scene.Position(jnt)
		if err != nil {
			return nil, err
		}
		out[i] = pos
	}
	return out, nil
}

// Rename moves every node the backing owns to the new instance name. All
// renames are validated up front so the scene walk cannot fail halfway.
func (b *chainBacking) Rename(newName string) error {
	renames := make([][2]string, 0, 3*len(b.manifest.Spec.Guides)+1)
	add := func(old, updated string) {
		if b.scene.Exists(old) {
			renames = append(renames, [2]string{old, updated})
		}
	}

	add(b.group(), newName+"_grp")
	for _, g := range b.manifest.Spec.Guides {
		oldGuide := b.guide(g.Name)
		newGuide := fmt.Sprintf("%s_%s_guide_jnt", newName, g.Name)
		add(oldGuide, newGuide)
		add(oldGuide+"_parentConstraint", newGuide+"_parentConstraint")
		add(b.control(g.Name), fmt.Sprintf("%s_%s_ctrl", newName, g.Name))
	}

	for _, r := range renames {
		if b.scene.Exists(r[1]) {
			return errors.Wrap(errors.ErrHostScene,
				fmt.Sprintf("cannot rename %q to %q: node already exists", r[0], r[1]))
		}
	}
	for _, r := range renames {
		if err := b.scene.Rename(r[0], r[1]); err != nil {
			return err
		}
	}

	b.name = newName
	return nil
}

// restPositions returns the manifest's guide rest positions.
func restPositions(m catalog.Manifest) []host.Vec3 {
	out := make([]host.Vec3, len(m.Spec.Guides))
	for i, g := range m.Spec.Guides {
		out[i] = host.Vec3(g.Position)
	}
	return out
}

// savedPositions decodes attrs["positions"]. It handles both the in-memory
// shape written by position refreshes ([][]float64) and the generic shape a
// decoded blueprint carries ([]any of []any).
func savedPositions(attrs rig.Attributes) ([]host.Vec3, bool, error) {
	raw, present := attrs["positions"]
	if !present {
		return nil, false, nil
	}

	switch t := raw.(type) {
	case [][]float64:
		out := make([]host.Vec3, len(t))
		for i, p := range t {
			if len(p) != 3 {
				return nil, false, errors.Wrap(errors.ErrValidation,
					fmt.Sprintf("saved position %d has %d components, want 3", i, len(p)))
			}
			out[i] = host.Vec3{p[0], p[1], p[2]}
		}
		return out, true, nil
	case []any:
		out := make([]host.Vec3, len(t))
		for i, e := range t {
			p, ok := e.([]any)
			if !ok || len(p) != 3 {
				return nil, false, errors.Wrap(errors.ErrValidation,
					fmt.Sprintf("saved position %d is not a 3-component list", i))
			}
			for j := 0; j < 3; j++ {
				f, ok := toFloat(p[j])
				if !ok {
					return nil, false, errors.Wrap(errors.ErrValidation,
						fmt.Sprintf("saved position %d component %d is not a number", i, j))
				}
				out[i][j] = f
			}
		}
		return out, true, nil
	default:
		return nil, false, errors.Wrap(errors.ErrValidation,
			"attribute \"positions\" is not a list of positions")
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// stringAttr reads a string attribute, falling back when the key is absent,
// empty, or not a string.
func stringAttr(attrs rig.Attributes, key, fallback string) string {
	if v, ok := attrs[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
