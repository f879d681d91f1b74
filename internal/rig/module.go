// Package rig holds the in-memory rig assembly model: module instances, the
// ordered registry they live in, and the editing session that ties registry,
// catalog, and host scene together. Everything here is single-threaded by
// contract; one session is one user editing one rig.
package rig

import (
	"fmt"

	"github.com/rigforge/cli/internal/host"
)

// Status reflects where a module instance sits in its lifecycle.
type Status int

const (
	// StatusEmpty means the instance is constructed but not activated; no
	// scene nodes exist for it yet.
	StatusEmpty Status = iota

	// StatusCreated means the placeholder guides exist in the host scene.
	StatusCreated

	// StatusFinished means the final rig geometry has been built.
	StatusFinished

	// StatusError means the last finish or build attempt failed.
	StatusError
)

// String returns the status name used in listings and build reports.
func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusCreated:
		return "created"
	case StatusFinished:
		return "finished"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Backing is the host-specific implementation object behind a module
// instance. One concrete variant exists per module type and version; the
// catalog maps (type, version) pairs to constructors. Backings are the only
// code that touches the host scene.
type Backing interface {
	// Create places the module's placeholder guides in the host scene.
	Create() error

	// Finish replaces the placeholder guides with final rig geometry.
	// The instance's live attributes are passed in so user edits made
	// after creation take effect.
	Finish(attrs Attributes) error

	// Remove deletes every scene node the backing owns.
	Remove() error

	// Build constructs the final rig in one step, guides included, from a
	// saved attribute snapshot. Used when finishing an instance that was
	// never activated in this session.
	Build(attrs Attributes) error

	// GuidePositions reports the current guide positions in guide order.
	GuidePositions() ([]host.Vec3, error)

	// Rename propagates an instance rename into the backing's scene node
	// names. The backing must not be left half-renamed on error.
	Rename(newName string) error
}

// Instance is one module in the rig: a named, versioned unit that owns a set
// of published attributes and delegates all scene work to its backing.
//
// Construction via NewInstance is inert. Nothing touches the host scene
// until Activate is called, so tests can build instances against a fake
// backing and sessions can refuse to register an instance whose activation
// failed.
type Instance struct {
	typeName string
	name     string
	version  string
	attrs    Attributes
	status   Status
	backing  Backing

	// err is the failure that drove status to StatusError, kept for
	// build reports.
	err error
}

// NewInstance constructs an inert instance. The attribute snapshot is
// deep-copied and seeded with the instance name under "name".
func NewInstance(typeName, name, version string, backing Backing, attrs Attributes) *Instance {
	a := attrs.DeepCopy()
	if a == nil {
		a = Attributes{}
	}
	a["name"] = name

	return &Instance{
		typeName: typeName,
		name:     name,
		version:  version,
		attrs:    a,
		status:   StatusEmpty,
		backing:  backing,
	}
}

// TypeName returns the module type this instance was created from.
func (i *Instance) TypeName() string { return i.typeName }

// Name returns the instance name, unique within the registry.
func (i *Instance) Name() string { return i.name }

// Version returns the catalog version backing this instance.
func (i *Instance) Version() string { return i.version }

// Status returns the lifecycle status.
func (i *Instance) Status() Status { return i.status }

// Err returns the failure behind StatusError, nil otherwise.
func (i *Instance) Err() error {
	if i.status != StatusError {
		return nil
	}
	return i.err
}

// Activate invokes the backing's Create capability, placing the module's
// guides in the host scene. On failure the instance stays StatusEmpty so
// the caller can discard it without cleanup.
func (i *Instance) Activate() error {
	if i.status != StatusEmpty {
		return fmt.Errorf("activating module %q: already activated", i.name)
	}
	if err := i.backing.Create(); err != nil {
		return fmt.Errorf("activating module %q: %w", i.name, err)
	}
	i.status = StatusCreated
	return nil
}

// Rename renames the instance. The host scene is updated first and the
// local name and attrs["name"] are committed only when that succeeds, so a
// scene failure leaves the instance unchanged. Uniqueness against the
// registry is the session's responsibility.
func (i *Instance) Rename(newName string) error {
	if newName == i.name {
		return nil
	}
	if err := i.backing.Rename(newName); err != nil {
		return fmt.Errorf("renaming module %q: %w", i.name, err)
	}
	i.name = newName
	i.attrs["name"] = newName
	return nil
}

// Finish finalizes the placeholder guides into real rig geometry. Success
// moves the instance to StatusFinished; failure to StatusError with the
// error retained.
func (i *Instance) Finish() error {
	if err := i.backing.Finish(i.attrs); err != nil {
		i.status = StatusError
		i.err = err
		return fmt.Errorf("finishing module %q: %w", i.name, err)
	}
	i.status = StatusFinished
	i.err = nil
	return nil
}

// Build constructs the final rig in one step from the current attribute
// snapshot. Used for instances that were never activated in this session.
func (i *Instance) Build() error {
	if err := i.backing.Build(i.attrs); err != nil {
		i.status = StatusError
		i.err = err
		return fmt.Errorf("building module %q: %w", i.name, err)
	}
	i.status = StatusFinished
	i.err = nil
	return nil
}

// Remove deletes the instance's scene nodes. Callers unregister the
// instance only after Remove succeeds; the reverse order could leave a
// registry entry pointing at destroyed scene state.
func (i *Instance) Remove() error {
	if err := i.backing.Remove(); err != nil {
		return fmt.Errorf("removing module %q: %w", i.name, err)
	}
	i.status = StatusEmpty
	return nil
}

// SetAttribute writes one published attribute. No schema validation is
// performed; unknown keys are added.
func (i *Instance) SetAttribute(key string, value any) {
	i.attrs[key] = copyValue(value)
}

// SetAttributes writes a batch of published attributes.
func (i *Instance) SetAttributes(attrs map[string]any) {
	for k, v := range attrs {
		i.attrs[k] = copyValue(v)
	}
}

// Attributes returns a deep copy of the published attributes.
func (i *Instance) Attributes() Attributes {
	return i.attrs.DeepCopy()
}

// GuidePositions reports the backing's current guide positions.
func (i *Instance) GuidePositions() ([]host.Vec3, error) {
	positions, err := i.backing.GuidePositions()
	if err != nil {
		return nil, fmt.Errorf("reading guide positions of %q: %w", i.name, err)
	}
	return positions, nil
}

// RefreshPositions folds the current guide positions into the published
// attributes under "positions" as a [][x y z] list, enriching the snapshot
// ahead of serialization.
func (i *Instance) RefreshPositions() error {
	positions, err := i.GuidePositions()
	if err != nil {
		return err
	}
	folded := make([][]float64, len(positions))
	for n, p := range positions {
		folded[n] = []float64{p[0], p[1], p[2]}
	}
	i.attrs["positions"] = folded
	return nil
}
