package rig

import (
	"github.com/rigforge/cli/internal/host"
	"github.com/rigforge/cli/internal/output"
)

// SceneNode is a host scene node annotated with the module instance that
// created it. Build output renders these as ordered node manifests.
type SceneNode struct {
	host.Node

	// Module is the instance name the node is attributed to, empty for
	// nodes created outside a tracked build step.
	Module string
}

// Compile-time assertion: *SceneNode satisfies output.NodeInfo.
var _ output.NodeInfo = (*SceneNode)(nil)

// GetKind returns the node kind.
func (n *SceneNode) GetKind() string { return n.Kind }

// GetName returns the node name.
func (n *SceneNode) GetName() string { return n.Name }

// GetModule returns the owning module instance name.
func (n *SceneNode) GetModule() string { return n.Module }

// GetObject returns the manifest representation of the node. Map keys are
// emitted alphabetically by the YAML and JSON encoders, so output is
// deterministic without an ordered container.
func (n *SceneNode) GetObject() map[string]any {
	obj := map[string]any{
		"kind": n.Kind,
		"name": n.Name,
	}
	if n.Module != "" {
		obj["module"] = n.Module
	}
	if n.Parent != "" {
		obj["parent"] = n.Parent
	}
	switch n.Kind {
	case host.KindJoint, host.KindControl:
		obj["position"] = []float64{n.Position[0], n.Position[1], n.Position[2]}
	}
	if n.Shape != "" {
		obj["shape"] = n.Shape
	}
	if n.Driver != "" {
		obj["driver"] = n.Driver
	}
	if n.Driven != "" {
		obj["driven"] = n.Driven
	}
	return obj
}
