package memscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/host"
)

func TestCreateNodes(t *testing.T) {
	t.Run("creates joints controls and groups in order", func(t *testing.T) {
		s := New()

		require.NoError(t, s.CreateGroup("rig_grp"))
		require.NoError(t, s.CreateJoint("shoulder_guide_jnt", host.Vec3{0, 10, 0}))
		require.NoError(t, s.CreateControl("shoulder_ctl", "cube", host.Vec3{0, 10, 0}))

		nodes := s.Nodes()
		require.Len(t, nodes, 3)
		assert.Equal(t, host.KindGroup, nodes[0].Kind)
		assert.Equal(t, host.KindJoint, nodes[1].Kind)
		assert.Equal(t, host.Vec3{0, 10, 0}, nodes[1].Position)
		assert.Equal(t, host.KindControl, nodes[2].Kind)
		assert.Equal(t, "cube", nodes[2].Shape)
	})

	t.Run("rejects duplicate names across kinds", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateJoint("root", host.Vec3{}))

		err := s.CreateGroup("root")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrHostScene)
		assert.Contains(t, err.Error(), `node "root" already exists`)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		s := New()
		err := s.CreateGroup("")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrHostScene)
	})
}

func TestCreateConstraint(t *testing.T) {
	t.Run("names the node after the driven side", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateJoint("driver_jnt", host.Vec3{}))
		require.NoError(t, s.CreateJoint("driven_jnt", host.Vec3{}))

		require.NoError(t, s.CreateConstraint("driver_jnt", "driven_jnt"))

		require.True(t, s.Exists("driven_jnt_parentConstraint"))
		nodes := s.Nodes()
		con := nodes[len(nodes)-1]
		assert.Equal(t, host.KindConstraint, con.Kind)
		assert.Equal(t, "driver_jnt", con.Driver)
		assert.Equal(t, "driven_jnt", con.Driven)
		assert.Equal(t, "driven_jnt", con.Parent)
	})

	t.Run("requires both ends to exist", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateJoint("driver_jnt", host.Vec3{}))

		err := s.CreateConstraint("driver_jnt", "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrHostScene)

		err = s.CreateConstraint("missing", "driver_jnt")
		require.Error(t, err)
	})
}

func TestRename(t *testing.T) {
	t.Run("updates parent and constraint references", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateGroup("arm_grp"))
		require.NoError(t, s.CreateJoint("elbow_jnt", host.Vec3{5, 0, 0}))
		require.NoError(t, s.Parent("elbow_jnt", "arm_grp"))
		require.NoError(t, s.CreateJoint("target_jnt", host.Vec3{}))
		require.NoError(t, s.CreateConstraint("arm_grp", "target_jnt"))

		require.NoError(t, s.Rename("arm_grp", "l_arm_grp"))

		assert.False(t, s.Exists("arm_grp"))
		assert.True(t, s.Exists("l_arm_grp"))

		var elbow, con host.Node
		for _, n := range s.Nodes() {
			switch n.Name {
			case "elbow_jnt":
				elbow = n
			case "target_jnt_parentConstraint":
				con = n
			}
		}
		assert.Equal(t, "l_arm_grp", elbow.Parent)
		assert.Equal(t, "l_arm_grp", con.Driver)
	})

	t.Run("rejects collisions with existing nodes", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateJoint("a", host.Vec3{}))
		require.NoError(t, s.CreateJoint("b", host.Vec3{}))

		err := s.Rename("a", "b")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrHostScene)
		assert.True(t, s.Exists("a"), "failed rename must not change the scene")
	})

	t.Run("rejects unknown and empty names", func(t *testing.T) {
		s := New()
		require.Error(t, s.Rename("ghost", "solid"))
		require.NoError(t, s.CreateJoint("a", host.Vec3{}))
		require.Error(t, s.Rename("a", ""))
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateJoint("a", host.Vec3{}))
		require.NoError(t, s.Rename("a", "a"))
		assert.True(t, s.Exists("a"))
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the whole subtree", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateGroup("spine_grp"))
		require.NoError(t, s.CreateJoint("spine_01_jnt", host.Vec3{}))
		require.NoError(t, s.CreateJoint("spine_02_jnt", host.Vec3{}))
		require.NoError(t, s.Parent("spine_01_jnt", "spine_grp"))
		require.NoError(t, s.Parent("spine_02_jnt", "spine_01_jnt"))
		require.NoError(t, s.CreateJoint("pelvis_jnt", host.Vec3{}))

		require.NoError(t, s.Delete("spine_grp"))

		assert.False(t, s.Exists("spine_grp"))
		assert.False(t, s.Exists("spine_01_jnt"))
		assert.False(t, s.Exists("spine_02_jnt"))
		assert.True(t, s.Exists("pelvis_jnt"))
		require.Len(t, s.Nodes(), 1)
	})

	t.Run("unknown node is an error", func(t *testing.T) {
		s := New()
		err := s.Delete("ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrHostScene)
	})

	t.Run("keeps lookups consistent after compaction", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateJoint("a", host.Vec3{}))
		require.NoError(t, s.CreateJoint("b", host.Vec3{}))
		require.NoError(t, s.CreateJoint("c", host.Vec3{}))

		require.NoError(t, s.Delete("b"))

		require.NoError(t, s.SetPosition("c", host.Vec3{1, 2, 3}))
		pos, err := s.Position("c")
		require.NoError(t, err)
		assert.Equal(t, host.Vec3{1, 2, 3}, pos)
	})
}

func TestPositions(t *testing.T) {
	t.Run("set then get round-trips", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateJoint("wrist_jnt", host.Vec3{1, 2, 3}))

		require.NoError(t, s.SetPosition("wrist_jnt", host.Vec3{4, 5, 6}))

		pos, err := s.Position("wrist_jnt")
		require.NoError(t, err)
		assert.Equal(t, host.Vec3{4, 5, 6}, pos)
	})

	t.Run("unknown node is an error", func(t *testing.T) {
		s := New()
		_, err := s.Position("ghost")
		require.Error(t, err)
		require.Error(t, s.SetPosition("ghost", host.Vec3{}))
	})
}

func TestParent(t *testing.T) {
	t.Run("rejects cycles", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateGroup("a"))
		require.NoError(t, s.CreateGroup("b"))
		require.NoError(t, s.Parent("b", "a"))

		err := s.Parent("a", "b")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrHostScene)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("requires both nodes to exist", func(t *testing.T) {
		s := New()
		require.NoError(t, s.CreateGroup("a"))
		require.Error(t, s.Parent("a", "ghost"))
		require.Error(t, s.Parent("ghost", "a"))
	})
}

func TestNodesIsolation(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateJoint("a", host.Vec3{1, 1, 1}))

	nodes := s.Nodes()
	nodes[0].Name = "tampered"
	nodes[0].Position = host.Vec3{9, 9, 9}

	assert.True(t, s.Exists("a"), "mutating the returned slice must not affect the scene")
	pos, err := s.Position("a")
	require.NoError(t, err)
	assert.Equal(t, host.Vec3{1, 1, 1}, pos)
}

func TestClear(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateJoint("a", host.Vec3{}))
	require.NoError(t, s.CreateJoint("b", host.Vec3{}))

	require.NoError(t, s.Clear())

	assert.Empty(t, s.Nodes())
	assert.False(t, s.Exists("a"))
	require.NoError(t, s.CreateJoint("a", host.Vec3{}), "names are reusable after clear")
}
