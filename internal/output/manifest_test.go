package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode implements NodeInfo for tests.
type fakeNode struct {
	kind   string
	name   string
	module string
}

func (f fakeNode) GetKind() string   { return f.kind }
func (f fakeNode) GetName() string   { return f.name }
func (f fakeNode) GetModule() string { return f.module }
func (f fakeNode) GetObject() map[string]any {
	return map[string]any{
		"kind":   f.kind,
		"name":   f.name,
		"module": f.module,
	}
}

func TestWriteManifests_YAMLOrdering(t *testing.T) {
	nodes := []NodeInfo{
		fakeNode{kind: "constraint", name: "Arm_0_parentConstraint", module: "Arm_0"},
		fakeNode{kind: "joint", name: "Arm_0_upper_guide_jnt", module: "Arm_0"},
		fakeNode{kind: "group", name: "Arm_0_grp", module: "Arm_0"},
		fakeNode{kind: "control", name: "Arm_0_ctl", module: "Arm_0"},
	}

	var buf bytes.Buffer
	err := WriteManifests(nodes, ManifestOptions{Format: FormatYAML, Writer: &buf})
	require.NoError(t, err)

	out := buf.String()

	// Groups first, then joints, controls, constraints.
	grpIdx := strings.Index(out, "Arm_0_grp")
	jntIdx := strings.Index(out, "Arm_0_upper_guide_jnt")
	ctlIdx := strings.Index(out, "Arm_0_ctl")
	conIdx := strings.Index(out, "Arm_0_parentConstraint")

	assert.Less(t, grpIdx, jntIdx, "group should come before joint")
	assert.Less(t, jntIdx, ctlIdx, "joint should come before control")
	assert.Less(t, ctlIdx, conIdx, "control should come before constraint")

	// Multiple documents are separated by ---.
	assert.Contains(t, out, "---")
}

func TestWriteManifests_JSON(t *testing.T) {
	nodes := []NodeInfo{
		fakeNode{kind: "joint", name: "b_jnt", module: "Arm_0"},
		fakeNode{kind: "joint", name: "a_jnt", module: "Arm_0"},
	}

	var buf bytes.Buffer
	err := WriteManifests(nodes, ManifestOptions{Format: FormatJSON, Writer: &buf})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	// Same weight sorts by name.
	assert.Equal(t, "a_jnt", decoded[0]["name"])
	assert.Equal(t, "b_jnt", decoded[1]["name"])
}

func TestWriteManifests_EmptyAndBadFormat(t *testing.T) {
	var buf bytes.Buffer

	err := WriteManifests(nil, ManifestOptions{Format: FormatYAML, Writer: &buf})
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	err = WriteManifests([]NodeInfo{fakeNode{kind: "joint", name: "x"}},
		ManifestOptions{Format: FormatTable, Writer: &buf})
	assert.Error(t, err)
}

func TestWriteSplitManifests(t *testing.T) {
	dir := t.TempDir()

	nodes := []NodeInfo{
		fakeNode{kind: "joint", name: "root_guide_jnt", module: "Singleton_0"},
		fakeNode{kind: "control", name: "root_ctl", module: "Singleton_0"},
	}

	written, err := WriteSplitManifests(nodes, SplitOptions{OutDir: dir, Format: FormatYAML})
	require.NoError(t, err)

	assert.FileExists(t, dir+"/joint-root_guide_jnt.yaml")
	assert.FileExists(t, dir+"/control-root_ctl.yaml")
	assert.Equal(t, map[string]string{
		"joint-root_guide_jnt.yaml": "Singleton_0",
		"control-root_ctl.yaml":     "Singleton_0",
	}, written)
}

func TestBuildFilenameCollisions(t *testing.T) {
	used := make(map[string]int)

	first := buildFilenameFromInfo(fakeNode{kind: "joint", name: "dup"}, FormatYAML, used)
	second := buildFilenameFromInfo(fakeNode{kind: "joint", name: "dup"}, FormatYAML, used)

	assert.Equal(t, "joint-dup.yaml", first)
	assert.Equal(t, "joint-dup-2.yaml", second)
}
