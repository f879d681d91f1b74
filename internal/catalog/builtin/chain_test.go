package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigforge/cli/internal/catalog"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/host"
	"github.com/rigforge/cli/internal/host/memscene"
	"github.com/rigforge/cli/internal/rig"
)

func armManifest() catalog.Manifest {
	return catalog.Manifest{
		APIVersion: "rigforge.dev/v1",
		Kind:       "ModuleManifest",
		Metadata:   catalog.Metadata{Type: "Arm", Version: "0000"},
		Spec: catalog.ManifestSpec{
			Attributes: map[string]any{
				"controlShape": "cube",
				"parentTo":     "",
				"constrainTo":  "",
			},
			Guides: []catalog.Guide{
				{Name: "shoulder", Position: [3]float64{2, 15, 0}},
				{Name: "elbow", Position: [3]float64{5, 15, -1}},
				{Name: "wrist", Position: [3]float64{8, 15, 0}},
			},
		},
	}
}

func newArmBacking(t *testing.T, scene host.Scene, name string, attrs rig.Attributes) rig.Backing {
	t.Helper()
	if attrs == nil {
		attrs = rig.Attributes{}
	}
	backing, err := Chain(armManifest())(scene, name, attrs)
	require.NoError(t, err)
	return backing
}

func nodeByName(t *testing.T, scene *memscene.Scene, name string) host.Node {
	t.Helper()
	for _, n := range scene.Nodes() {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("node %q not in scene", name)
	return host.Node{}
}

func TestChainConstruction(t *testing.T) {
	t.Run("construction touches nothing in the scene", func(t *testing.T) {
		scene := memscene.New()
		newArmBacking(t, scene, "Arm_0", nil)
		assert.Empty(t, scene.Nodes())
	})

	t.Run("duplicate guide names are rejected", func(t *testing.T) {
		m := armManifest()
		m.Spec.Guides[1].Name = "shoulder"

		_, err := Chain(m)(memscene.New(), "Arm_0", rig.Attributes{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrValidation)
		assert.Contains(t, err.Error(), `duplicate guide name "shoulder"`)
	})

	t.Run("saved position count must match the guide count", func(t *testing.T) {
		attrs := rig.Attributes{"positions": [][]float64{{0, 0, 0}, {1, 1, 1}}}
		_, err := Chain(armManifest())(memscene.New(), "Arm_0", attrs)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrValidation)
		assert.Contains(t, err.Error(), `module "Arm_0" has 2 saved positions for 3 guides`)
	})

	t.Run("malformed saved positions are rejected", func(t *testing.T) {
		attrs := rig.Attributes{"positions": "not a list"}
		_, err := Chain(armManifest())(memscene.New(), "Arm_0", attrs)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestChainCreate(t *testing.T) {
	t.Run("builds the group and the parented guide chain", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())

		grp := nodeByName(t, scene, "Arm_0_grp")
		assert.Equal(t, host.KindGroup, grp.Kind)

		shoulder := nodeByName(t, scene, "Arm_0_shoulder_guide_jnt")
		assert.Equal(t, host.KindJoint, shoulder.Kind)
		assert.Equal(t, "Arm_0_grp", shoulder.Parent)
		assert.Equal(t, host.Vec3{2, 15, 0}, shoulder.Position)

		elbow := nodeByName(t, scene, "Arm_0_elbow_guide_jnt")
		assert.Equal(t, "Arm_0_shoulder_guide_jnt", elbow.Parent)
		assert.Equal(t, host.Vec3{5, 15, -1}, elbow.Position)

		wrist := nodeByName(t, scene, "Arm_0_wrist_guide_jnt")
		assert.Equal(t, "Arm_0_elbow_guide_jnt", wrist.Parent)
		assert.Equal(t, host.Vec3{8, 15, 0}, wrist.Position)
	})

	t.Run("saved positions override manifest rest positions", func(t *testing.T) {
		scene := memscene.New()
		attrs := rig.Attributes{"positions": [][]float64{{2, 16, 0}, {5, 16, -2}, {9, 16, 0}}}
		backing := newArmBacking(t, scene, "Arm_0", attrs)
		require.NoError(t, backing.Create())

		assert.Equal(t, host.Vec3{5, 16, -2}, nodeByName(t, scene, "Arm_0_elbow_guide_jnt").Position)
	})

	t.Run("saved positions survive a decode round trip", func(t *testing.T) {
		scene := memscene.New()
		attrs := rig.Attributes{"positions": []any{
			[]any{2, 16, 0},
			[]any{5.5, 16, -2},
			[]any{9, 16, 0},
		}}
		backing := newArmBacking(t, scene, "Arm_0", attrs)
		require.NoError(t, backing.Create())

		assert.Equal(t, host.Vec3{5.5, 16, -2}, nodeByName(t, scene, "Arm_0_elbow_guide_jnt").Position)
	})

	t.Run("a failed create leaves no trace", func(t *testing.T) {
		scene := memscene.New()
		require.NoError(t, scene.CreateGroup("Arm_0_elbow_guide_jnt"))

		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.Error(t, backing.Create())

		assert.False(t, scene.Exists("Arm_0_grp"))
		assert.False(t, scene.Exists("Arm_0_shoulder_guide_jnt"))
		assert.True(t, scene.Exists("Arm_0_elbow_guide_jnt"), "the colliding node is not ours to delete")
	})
}

func TestChainFinish(t *testing.T) {
	t.Run("builds controls at live guide positions and constrains the joints", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())

		// The guide was moved after creation; the control must pick up
		// the live position, not the rest position.
		require.NoError(t, scene.SetPosition("Arm_0_elbow_guide_jnt", host.Vec3{6, 14, -2}))
		require.NoError(t, backing.Finish(rig.Attributes{"controlShape": "cube"}))

		shoulderCtrl := nodeByName(t, scene, "Arm_0_shoulder_ctrl")
		assert.Equal(t, host.KindControl, shoulderCtrl.Kind)
		assert.Equal(t, "cube", shoulderCtrl.Shape)
		assert.Equal(t, "Arm_0_grp", shoulderCtrl.Parent)
		assert.Equal(t, host.Vec3{2, 15, 0}, shoulderCtrl.Position)

		elbowCtrl := nodeByName(t, scene, "Arm_0_elbow_ctrl")
		assert.Equal(t, "Arm_0_shoulder_ctrl", elbowCtrl.Parent)
		assert.Equal(t, host.Vec3{6, 14, -2}, elbowCtrl.Position)

		constraint := nodeByName(t, scene, "Arm_0_elbow_guide_jnt_parentConstraint")
		assert.Equal(t, host.KindConstraint, constraint.Kind)
		assert.Equal(t, "Arm_0_elbow_ctrl", constraint.Driver)
		assert.Equal(t, "Arm_0_elbow_guide_jnt", constraint.Driven)
	})

	t.Run("falls back to the default control shape", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, backing.Finish(rig.Attributes{}))

		assert.Equal(t, "cube", nodeByName(t, scene, "Arm_0_wrist_ctrl").Shape)
	})

	t.Run("honors a controlShape override", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, backing.Finish(rig.Attributes{"controlShape": "sphere"}))

		assert.Equal(t, "sphere", nodeByName(t, scene, "Arm_0_shoulder_ctrl").Shape)
	})

	t.Run("a second finish resumes without duplicating nodes", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, backing.Finish(rig.Attributes{}))
		before := len(scene.Nodes())

		require.NoError(t, backing.Finish(rig.Attributes{}))
		assert.Len(t, scene.Nodes(), before)
	})

	t.Run("parentTo parents the module group under the target", func(t *testing.T) {
		scene := memscene.New()
		require.NoError(t, scene.CreateGroup("rig_grp"))

		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, backing.Finish(rig.Attributes{"parentTo": "rig_grp"}))

		assert.Equal(t, "rig_grp", nodeByName(t, scene, "Arm_0_grp").Parent)
	})

	t.Run("constrainTo drives the target from the root control", func(t *testing.T) {
		scene := memscene.New()
		require.NoError(t, scene.CreateControl("chest_ctrl", "cube", host.Vec3{0, 14, 0}))

		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, backing.Finish(rig.Attributes{"constrainTo": "chest_ctrl"}))

		constraint := nodeByName(t, scene, "chest_ctrl_parentConstraint")
		assert.Equal(t, "Arm_0_shoulder_ctrl", constraint.Driver)
		assert.Equal(t, "chest_ctrl", constraint.Driven)
	})

	t.Run("a missing parentTo target fails the finish", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())

		err := backing.Finish(rig.Attributes{"parentTo": "rig_grp"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrHostScene)
	})
}

func TestChainBuild(t *testing.T) {
	scene := memscene.New()
	attrs := rig.Attributes{
		"controlShape": "circle",
		"positions":    [][]float64{{2, 16, 0}, {5, 16, -2}, {9, 16, 0}},
	}
	backing := newArmBacking(t, scene, "Arm_0", attrs)
	require.NoError(t, backing.Build(attrs))

	ctrl := nodeByName(t, scene, "Arm_0_elbow_ctrl")
	assert.Equal(t, "circle", ctrl.Shape)
	assert.Equal(t, host.Vec3{5, 16, -2}, ctrl.Position)
}

func TestChainRemove(t *testing.T) {
	t.Run("deletes the whole module subtree", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Build(rig.Attributes{}))
		require.NotEmpty(t, scene.Nodes())

		require.NoError(t, backing.Remove())
		assert.Empty(t, scene.Nodes())
	})

	t.Run("deletes constraints placed on external targets", func(t *testing.T) {
		scene := memscene.New()
		require.NoError(t, scene.CreateControl("chest_ctrl", "cube", host.Vec3{0, 14, 0}))

		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Build(rig.Attributes{"constrainTo": "chest_ctrl"}))
		require.True(t, scene.Exists("chest_ctrl_parentConstraint"))

		require.NoError(t, backing.Remove())
		assert.False(t, scene.Exists("chest_ctrl_parentConstraint"))
		assert.True(t, scene.Exists("chest_ctrl"), "the external target itself stays")
	})

	t.Run("removing a never-created module is a no-op", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		assert.NoError(t, backing.Remove())
	})

	t.Run("removing twice is a no-op", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, backing.Remove())
		assert.NoError(t, backing.Remove())
	})
}

func TestChainGuidePositions(t *testing.T) {
	t.Run("reads live joint positions", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, scene.SetPosition("Arm_0_wrist_guide_jnt", host.Vec3{8, 13, 1}))

		positions, err := backing.GuidePositions()
		require.NoError(t, err)
		assert.Equal(t, []host.Vec3{{2, 15, 0}, {5, 15, -1}, {8, 13, 1}}, positions)
	})

	t.Run("falls back to construction positions before create", func(t *testing.T) {
		scene := memscene.New()
		attrs := rig.Attributes{"positions": [][]float64{{2, 16, 0}, {5, 16, -2}, {9, 16, 0}}}
		backing := newArmBacking(t, scene, "Arm_0", attrs)

		positions, err := backing.GuidePositions()
		require.NoError(t, err)
		assert.Equal(t, []host.Vec3{{2, 16, 0}, {5, 16, -2}, {9, 16, 0}}, positions)
	})
}

func TestChainRename(t *testing.T) {
	t.Run("moves every owned node to the new name", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Build(rig.Attributes{}))

		require.NoError(t, backing.Rename("Arm_7"))

		assert.True(t, scene.Exists("Arm_7_grp"))
		assert.True(t, scene.Exists("Arm_7_elbow_guide_jnt"))
		assert.True(t, scene.Exists("Arm_7_elbow_ctrl"))
		assert.True(t, scene.Exists("Arm_7_elbow_guide_jnt_parentConstraint"))
		assert.False(t, scene.Exists("Arm_0_grp"))

		elbow := nodeByName(t, scene, "Arm_7_elbow_guide_jnt")
		assert.Equal(t, "Arm_7_shoulder_guide_jnt", elbow.Parent)

		constraint := nodeByName(t, scene, "Arm_7_elbow_guide_jnt_parentConstraint")
		assert.Equal(t, "Arm_7_elbow_ctrl", constraint.Driver)
		assert.Equal(t, "Arm_7_elbow_guide_jnt", constraint.Driven)
	})

	t.Run("a colliding target name aborts before any rename", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, scene.CreateGroup("Arm_7_elbow_guide_jnt"))

		err := backing.Rename("Arm_7")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrHostScene)
		assert.True(t, scene.Exists("Arm_0_grp"), "no partial rename")
		assert.True(t, scene.Exists("Arm_0_shoulder_guide_jnt"))
	})

	t.Run("renaming a never-created module only updates the backing", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)

		require.NoError(t, backing.Rename("Arm_7"))
		require.NoError(t, backing.Create())
		assert.True(t, scene.Exists("Arm_7_grp"))
	})

	t.Run("subsequent operations use the new name", func(t *testing.T) {
		scene := memscene.New()
		backing := newArmBacking(t, scene, "Arm_0", nil)
		require.NoError(t, backing.Create())
		require.NoError(t, backing.Rename("Arm_7"))
		require.NoError(t, backing.Finish(rig.Attributes{}))

		assert.True(t, scene.Exists("Arm_7_shoulder_ctrl"))
		assert.False(t, scene.Exists("Arm_0_shoulder_ctrl"))
	})
}
