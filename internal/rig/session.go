package rig

import (
	"fmt"

	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/host"
	"github.com/rigforge/cli/internal/output"
)

// Builder constructs the backing object for one module instance, bound to a
// scene and instance name. The attribute snapshot carries construction-time
// layout such as saved guide positions.
type Builder func(scene host.Scene, name string, attrs Attributes) (Backing, error)

// Module is a resolved catalog entry: one type/version pair with its default
// published attributes and backing builder.
type Module struct {
	TypeName string
	Version  string
	Defaults Attributes
	Builder  Builder
}

// Catalog is the narrow lookup surface a session needs from the module
// catalog. Implemented by internal/catalog.
type Catalog interface {
	// Resolve maps a module type and version to a resolved entry. An empty
	// version selects the latest available one. Unknown types and versions
	// fail with ErrNotFound-wrapped errors.
	Resolve(typeName, version string) (Module, error)
}

// Session owns one rig editing session: the registry of active modules, the
// catalog used to resolve types, and the host scene every backing works
// against. All state is explicit; there are no process-wide variables, so
// independent sessions can coexist in one process.
type Session struct {
	registry *Registry
	catalog  Catalog
	scene    host.Scene
}

// NewSession creates a session with an empty registry.
func NewSession(catalog Catalog, scene host.Scene) *Session {
	return &Session{
		registry: NewRegistry(),
		catalog:  catalog,
		scene:    scene,
	}
}

// Registry returns the session's module registry.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Scene returns the host scene the session builds against.
func (s *Session) Scene() host.Scene {
	return s.scene
}

// AddModule resolves a module type, constructs an instance named
// "{type}_{count}", activates it, and registers it. An empty version selects
// the catalog's latest. Failed activation registers nothing.
func (s *Session) AddModule(typeName, version string) (*Instance, error) {
	res, err := s.catalog.Resolve(typeName, version)
	if err != nil {
		return nil, err
	}

	name := s.nextName(typeName)
	inst, err := s.activate(res, name, res.Defaults.DeepCopy())
	if err != nil {
		return nil, err
	}

	output.Debug("registered module", "name", name, "type", res.TypeName, "version", res.Version)
	return inst, nil
}

// Restore reconstructs one saved module instance: the given name, version,
// and attribute snapshot, activated at the saved guide positions carried in
// attrs["positions"]. Used when loading a blueprint for further editing.
func (s *Session) Restore(typeName, version, name string, attrs Attributes) (*Instance, error) {
	inst, err := s.construct(typeName, version, name, attrs)
	if err != nil {
		return nil, err
	}
	if err := inst.Activate(); err != nil {
		return nil, err
	}
	s.registry.Register(inst)

	output.Debug("restored module", "name", name, "type", typeName, "version", inst.Version())
	return inst, nil
}

// Stage registers a saved module instance without activating it. A later
// BuildAll constructs it in one step from the saved snapshot; blueprint
// builds stage every entry so the whole scene is created in a single pass
// and every node is attributed to its module.
func (s *Session) Stage(typeName, version, name string, attrs Attributes) (*Instance, error) {
	inst, err := s.construct(typeName, version, name, attrs)
	if err != nil {
		return nil, err
	}
	s.registry.Register(inst)

	output.Debug("staged module", "name", name, "type", typeName, "version", inst.Version())
	return inst, nil
}

// construct validates the saved name, resolves the catalog entry, and builds
// an inert instance. Nothing is registered and the scene is not touched.
func (s *Session) construct(typeName, version, name string, attrs Attributes) (*Instance, error) {
	if name == "" {
		return nil, errors.Wrap(errors.ErrValidation, "module instance name must not be empty")
	}
	if s.registry.IndexOf(name) >= 0 {
		return nil, errors.Wrap(errors.ErrState,
			fmt.Sprintf("module name %q is already registered", name))
	}

	res, err := s.catalog.Resolve(typeName, version)
	if err != nil {
		return nil, err
	}

	backing, err := res.Builder(s.scene, name, attrs)
	if err != nil {
		return nil, fmt.Errorf("constructing backing for module %q: %w", name, err)
	}
	return NewInstance(res.TypeName, name, res.Version, backing, attrs), nil
}

// activate runs AddModule's second phase: construct the backing, activate,
// register on success.
func (s *Session) activate(res Module, name string, attrs Attributes) (*Instance, error) {
	backing, err := res.Builder(s.scene, name, attrs)
	if err != nil {
		return nil, fmt.Errorf("constructing backing for module %q: %w", name, err)
	}

	inst := NewInstance(res.TypeName, name, res.Version, backing, attrs)
	if err := inst.Activate(); err != nil {
		return nil, err
	}

	s.registry.Register(inst)
	return inst, nil
}

// nextName computes the ordinal instance name for a type. The ordinal is the
// current count of instances of that type, so names are reused after
// removals. A user rename can occupy the computed name; bump until free.
func (s *Session) nextName(typeName string) string {
	n := s.registry.CountOfType(typeName)
	name := fmt.Sprintf("%s_%d", typeName, n)
	for s.registry.IndexOf(name) >= 0 {
		n++
		name = fmt.Sprintf("%s_%d", typeName, n)
	}
	return name
}

// RemoveModule removes the instance at index i: scene nodes first, registry
// entry after. A failed scene removal leaves the registry untouched.
func (s *Session) RemoveModule(i int) error {
	inst, err := s.registry.At(i)
	if err != nil {
		return err
	}
	if err := inst.Remove(); err != nil {
		return err
	}
	if err := s.registry.Unregister(i); err != nil {
		return err
	}

	output.Debug("removed module", "name", inst.Name(), "index", i)
	return nil
}

// RemoveModuleNamed removes the instance with the given name.
func (s *Session) RemoveModuleNamed(name string) error {
	i := s.registry.IndexOf(name)
	if i < 0 {
		return errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown module instance %q", name))
	}
	return s.RemoveModule(i)
}

// RenameModule renames an instance. Empty and duplicate target names are
// rejected before the host scene is touched; the instance commits its local
// name only after the scene rename succeeds.
func (s *Session) RenameModule(name, newName string) error {
	inst, ok := s.registry.Find(name)
	if !ok {
		return errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown module instance %q", name))
	}
	if newName == "" {
		return errors.Wrap(errors.ErrValidation, "module instance name must not be empty")
	}
	if newName == name {
		return nil
	}
	if s.registry.IndexOf(newName) >= 0 {
		return errors.Wrap(errors.ErrState,
			fmt.Sprintf("module name %q is already registered", newName))
	}

	if err := inst.Rename(newName); err != nil {
		return err
	}

	output.Debug("renamed module", "from", name, "to", newName)
	return nil
}

// SetAttributes writes a batch of published attributes on a named instance.
// This is the detail panel's explicit update action; writes are schemaless.
func (s *Session) SetAttributes(name string, attrs map[string]any) error {
	inst, ok := s.registry.Find(name)
	if !ok {
		return errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown module instance %q", name))
	}
	inst.SetAttributes(attrs)
	return nil
}

// Attributes returns a deep copy of a named instance's published attributes.
func (s *Session) Attributes(name string) (Attributes, error) {
	inst, ok := s.registry.Find(name)
	if !ok {
		return nil, errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown module instance %q", name))
	}
	return inst.Attributes(), nil
}

// GuidePositions reports a named instance's current guide positions.
func (s *Session) GuidePositions(name string) ([]host.Vec3, error) {
	inst, ok := s.registry.Find(name)
	if !ok {
		return nil, errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown module instance %q", name))
	}
	return inst.GuidePositions()
}

// Finish finalizes one named instance.
func (s *Session) Finish(name string) error {
	inst, ok := s.registry.Find(name)
	if !ok {
		return errors.Wrap(errors.ErrNotFound,
			fmt.Sprintf("unknown module instance %q", name))
	}
	return inst.Finish()
}

// RefreshPositions folds current guide positions into every non-empty
// instance's attributes ahead of serialization.
func (s *Session) RefreshPositions() error {
	for _, inst := range s.registry.Instances() {
		if inst.Status() == StatusEmpty {
			continue
		}
		if err := inst.RefreshPositions(); err != nil {
			return err
		}
	}
	return nil
}

// ModuleOutcome reports one instance's result in a BuildAll pass.
type ModuleOutcome struct {
	TypeName string
	Name     string
	Version  string
	Status   Status
	Nodes    int
	Err      error
}

// BuildResult aggregates a BuildAll pass: per-module outcomes in registry
// order plus the final scene snapshot with each node attributed to the
// module that created it.
type BuildResult struct {
	Outcomes []ModuleOutcome
	Nodes    []SceneNode
}

// BuildAll finishes every registered instance in registry order: created
// instances are finished, never-activated ones are built outright, finished
// ones are skipped, and errored ones are retried. Per-module failures are
// collected into the result; the returned error is the first failure, nil
// when every module built.
func (s *Session) BuildAll() (*BuildResult, error) {
	if s.registry.Len() == 0 {
		return nil, errors.Wrap(errors.ErrState, "nothing to build: module registry is empty")
	}

	res := &BuildResult{}
	owner := make(map[string]string)
	var firstErr error

	for _, inst := range s.registry.Instances() {
		log := output.ModuleLogger(inst.Name())

		before := make(map[string]bool)
		for _, n := range s.scene.Nodes() {
			before[n.Name] = true
		}

		var err error
		switch inst.Status() {
		case StatusFinished:
			log.Debug("already finished, skipping")
		case StatusEmpty:
			log.Debug("building from saved attributes", "type", inst.TypeName(), "version", inst.Version())
			err = inst.Build()
		default:
			log.Debug("finishing", "type", inst.TypeName(), "version", inst.Version())
			err = inst.Finish()
		}

		added := 0
		for _, n := range s.scene.Nodes() {
			if !before[n.Name] {
				owner[n.Name] = inst.Name()
				added++
			}
		}

		res.Outcomes = append(res.Outcomes, ModuleOutcome{
			TypeName: inst.TypeName(),
			Name:     inst.Name(),
			Version:  inst.Version(),
			Status:   inst.Status(),
			Nodes:    added,
			Err:      err,
		})

		if err != nil {
			log.Error("module failed", "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Debug("module done", "nodes", added)
	}

	for _, n := range s.scene.Nodes() {
		res.Nodes = append(res.Nodes, SceneNode{Node: n, Module: owner[n.Name]})
	}

	return res, firstErr
}
