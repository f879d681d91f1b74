package rig

import (
	"fmt"

	"github.com/rigforge/cli/internal/errors"
)

// Registry is the ordered collection of active module instances. A parallel
// type-name sequence is kept index-aligned with the instances; both always
// have equal length and index i refers to the same module in both.
//
// Mutation is restricted to append-at-end and remove-by-index. There is no
// reordering operation. The registry is single-threaded by contract: one
// editing session, no background work, ordering is call order.
type Registry struct {
	instances []*Instance
	typeNames []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends an instance to both parallel sequences. Uniqueness
// beyond the ordinal naming scheme is the session's concern.
func (r *Registry) Register(inst *Instance) {
	r.instances = append(r.instances, inst)
	r.typeNames = append(r.typeNames, inst.TypeName())
}

// Unregister removes the entry at index i from both sequences. Out-of-range
// indexes are refused rather than panicking.
func (r *Registry) Unregister(i int) error {
	if i < 0 || i >= len(r.instances) {
		return errors.Wrap(errors.ErrState,
			fmt.Sprintf("index %d out of range in registry of %d modules", i, len(r.instances)))
	}
	r.instances = append(r.instances[:i], r.instances[i+1:]...)
	r.typeNames = append(r.typeNames[:i], r.typeNames[i+1:]...)
	return nil
}

// CountOfType returns the number of registered instances of the given type.
// O(n) scan; rigs rarely exceed tens of modules.
func (r *Registry) CountOfType(typeName string) int {
	count := 0
	for _, t := range r.typeNames {
		if t == typeName {
			count++
		}
	}
	return count
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	return len(r.instances)
}

// At returns the instance at index i.
func (r *Registry) At(i int) (*Instance, error) {
	if i < 0 || i >= len(r.instances) {
		return nil, errors.Wrap(errors.ErrState,
			fmt.Sprintf("index %d out of range in registry of %d modules", i, len(r.instances)))
	}
	return r.instances[i], nil
}

// IndexOf returns the index of the instance with the given name, -1 when no
// instance has it.
func (r *Registry) IndexOf(name string) int {
	for i, inst := range r.instances {
		if inst.Name() == name {
			return i
		}
	}
	return -1
}

// Find returns the instance with the given name.
func (r *Registry) Find(name string) (*Instance, bool) {
	i := r.IndexOf(name)
	if i < 0 {
		return nil, false
	}
	return r.instances[i], true
}

// Instances returns the instances in registry order. The slice is a copy;
// the instances are shared.
func (r *Registry) Instances() []*Instance {
	out := make([]*Instance, len(r.instances))
	copy(out, r.instances)
	return out
}

// TypeNames returns the parallel type-name sequence in registry order.
func (r *Registry) TypeNames() []string {
	out := make([]string, len(r.typeNames))
	copy(out, r.typeNames)
	return out
}
