// Package weights provides ordering weights for scene node kinds.
// Nodes with lower weights are written first.
package weights

// Default weights for scene node kinds.
// Lower weights are written first. Groups come before the nodes parented
// under them, and constraints come last because they reference other nodes.
const (
	WeightGroup      = 0
	WeightJoint      = 10
	WeightControl    = 20
	WeightConstraint = 50
	WeightDefault    = 1000
)

// kindWeights maps node kind to weight.
var kindWeights = map[string]int{
	"group":      WeightGroup,
	"joint":      WeightJoint,
	"control":    WeightControl,
	"constraint": WeightConstraint,
}

// GetWeight returns the weight for a node kind.
// Lower weights should be written first.
func GetWeight(kind string) int {
	if weight, ok := kindWeights[kind]; ok {
		return weight
	}

	// Default weight for unknown kinds
	return WeightDefault
}
