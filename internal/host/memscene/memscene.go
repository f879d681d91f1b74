// Package memscene provides an in-memory host.Scene. Blueprint builds and
// tests run against it; nothing in it touches a real DCC.
package memscene

import (
	"fmt"

	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/host"
)

// Scene is an in-memory host scene. Nodes keep creation order.
type Scene struct {
	nodes []host.Node
	index map[string]int
}

// Compile-time assertion: *Scene satisfies host.Scene.
var _ host.Scene = (*Scene)(nil)

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		index: make(map[string]int),
	}
}

// add appends a node, enforcing name uniqueness.
func (s *Scene) add(n host.Node) error {
	if n.Name == "" {
		return errors.Wrap(errors.ErrHostScene, "node name must not be empty")
	}
	if _, ok := s.index[n.Name]; ok {
		return errors.Wrap(errors.ErrHostScene, fmt.Sprintf("node %q already exists", n.Name))
	}

	s.index[n.Name] = len(s.nodes)
	s.nodes = append(s.nodes, n)
	return nil
}

// lookup returns a pointer to the named node.
func (s *Scene) lookup(name string) (*host.Node, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, errors.Wrap(errors.ErrHostScene, fmt.Sprintf("node %q does not exist", name))
	}
	return &s.nodes[i], nil
}

// CreateJoint creates a joint at the given position.
func (s *Scene) CreateJoint(name string, position host.Vec3) error {
	return s.add(host.Node{
		Kind:     host.KindJoint,
		Name:     name,
		Position: position,
	})
}

// CreateControl creates a control with the given shape at the given position.
func (s *Scene) CreateControl(name, shape string, position host.Vec3) error {
	return s.add(host.Node{
		Kind:     host.KindControl,
		Name:     name,
		Shape:    shape,
		Position: position,
	})
}

// CreateGroup creates an empty transform group.
func (s *Scene) CreateGroup(name string) error {
	return s.add(host.Node{
		Kind: host.KindGroup,
		Name: name,
	})
}

// CreateConstraint constrains driven to driver. The constraint node is
// parented under the driven node.
func (s *Scene) CreateConstraint(driver, driven string) error {
	if _, err := s.lookup(driver); err != nil {
		return err
	}
	if _, err := s.lookup(driven); err != nil {
		return err
	}

	return s.add(host.Node{
		Kind:   host.KindConstraint,
		Name:   driven + "_parentConstraint",
		Parent: driven,
		Driver: driver,
		Driven: driven,
	})
}

// Rename renames a node and updates every reference to the old name.
func (s *Scene) Rename(oldName, newName string) error {
	if newName == "" {
		return errors.Wrap(errors.ErrHostScene, "new node name must not be empty")
	}
	if oldName == newName {
		return nil
	}

	i, ok := s.index[oldName]
	if !ok {
		return errors.Wrap(errors.ErrHostScene, fmt.Sprintf("node %q does not exist", oldName))
	}
	if _, ok := s.index[newName]; ok {
		return errors.Wrap(errors.ErrHostScene, fmt.Sprintf("node %q already exists", newName))
	}

	s.nodes[i].Name = newName
	delete(s.index, oldName)
	s.index[newName] = i

	// References follow the rename.
	for j := range s.nodes {
		if s.nodes[j].Parent == oldName {
			s.nodes[j].Parent = newName
		}
		if s.nodes[j].Driver == oldName {
			s.nodes[j].Driver = newName
		}
		if s.nodes[j].Driven == oldName {
			s.nodes[j].Driven = newName
		}
	}

	return nil
}

// Delete removes a node and every node parented under it.
func (s *Scene) Delete(name string) error {
	if _, err := s.lookup(name); err != nil {
		return err
	}

	// Collect the subtree rooted at name.
	doomed := map[string]bool{name: true}
	for {
		grew := false
		for _, n := range s.nodes {
			if n.Parent != "" && doomed[n.Parent] && !doomed[n.Name] {
				doomed[n.Name] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	kept := s.nodes[:0]
	for _, n := range s.nodes {
		if !doomed[n.Name] {
			kept = append(kept, n)
		}
	}
	s.nodes = kept

	s.index = make(map[string]int, len(s.nodes))
	for i, n := range s.nodes {
		s.index[n.Name] = i
	}

	return nil
}

// Position returns a node's translation.
func (s *Scene) Position(name string) (host.Vec3, error) {
	n, err := s.lookup(name)
	if err != nil {
		return host.Vec3{}, err
	}
	return n.Position, nil
}

// SetPosition moves a node.
func (s *Scene) SetPosition(name string, position host.Vec3) error {
	n, err := s.lookup(name)
	if err != nil {
		return err
	}
	n.Position = position
	return nil
}

// Parent places child under parent.
func (s *Scene) Parent(child, parent string) error {
	if _, err := s.lookup(child); err != nil {
		return err
	}
	if _, err := s.lookup(parent); err != nil {
		return err
	}

	// Reject cycles: parent must not sit underneath child.
	for cur := parent; cur != ""; {
		if cur == child {
			return errors.Wrap(errors.ErrHostScene,
				fmt.Sprintf("parenting %q under %q would create a cycle", child, parent))
		}
		n, err := s.lookup(cur)
		if err != nil {
			break
		}
		cur = n.Parent
	}

	n, _ := s.lookup(child)
	n.Parent = parent
	return nil
}

// Exists reports whether a node with the given name is in the scene.
func (s *Scene) Exists(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Nodes returns a copy of all scene nodes in creation order.
func (s *Scene) Nodes() []host.Node {
	out := make([]host.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Clear empties the scene.
func (s *Scene) Clear() error {
	s.nodes = nil
	s.index = make(map[string]int)
	return nil
}
