// Package host defines the narrow interface rig modules use to manipulate
// the hosting scene. Implementations adapt a real DCC scene or, for builds
// and tests, an in-memory one.
package host

// Node kinds understood by the scene.
const (
	KindJoint      = "joint"
	KindControl    = "control"
	KindGroup      = "group"
	KindConstraint = "constraint"
)

// Vec3 is a position in scene space.
type Vec3 [3]float64

// Node is one scene object.
type Node struct {
	// Kind is the node kind: joint, control, group, or constraint.
	Kind string

	// Name is the scene-unique node name.
	Name string

	// Parent is the name of the parent node, empty for scene roots.
	Parent string

	// Position is the node's translation in scene space.
	Position Vec3

	// Shape is the control shape, set for controls only.
	Shape string

	// Driver and Driven are the constrained node names, set for
	// constraints only.
	Driver string
	Driven string
}

// Scene is the host scene surface. All names are scene-unique; operations
// on unknown names fail.
type Scene interface {
	// CreateJoint creates a joint at the given position.
	CreateJoint(name string, position Vec3) error

	// CreateControl creates a control with the given shape at the given
	// position.
	CreateControl(name, shape string, position Vec3) error

	// CreateGroup creates an empty transform group.
	CreateGroup(name string) error

	// CreateConstraint constrains driven to driver. The constraint node is
	// named <driven>_parentConstraint.
	CreateConstraint(driver, driven string) error

	// Rename renames a node. References to the old name (parents,
	// constraint targets) follow the rename.
	Rename(oldName, newName string) error

	// Delete removes a node and every node parented under it.
	Delete(name string) error

	// Position returns a node's translation.
	Position(name string) (Vec3, error)

	// SetPosition moves a node.
	SetPosition(name string, position Vec3) error

	// Parent places child under parent.
	Parent(child, parent string) error

	// Exists reports whether a node with the given name is in the scene.
	Exists(name string) bool

	// Nodes returns all scene nodes in creation order.
	Nodes() []Node

	// Clear empties the scene.
	Clear() error
}
