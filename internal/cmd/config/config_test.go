package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigforge/cli/internal/config"
	"github.com/rigforge/cli/internal/errors"
	"github.com/rigforge/cli/internal/testutil"
)

// testGlobals returns a GlobalConfig the way the root command would have
// resolved it, pointing at a config file inside a temp directory.
func testGlobals(t *testing.T) (*config.GlobalConfig, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	return &config.GlobalConfig{
		Config:     (&config.Config{}).WithDefaults(),
		ConfigPath: path,
	}, path
}

func TestNewConfigCmd(t *testing.T) {
	cmd := NewConfigCmd(&config.GlobalConfig{})

	assert.Equal(t, "config", cmd.Use)
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "vet")
}

func TestConfigInit_CreatesFile(t *testing.T) {
	testutil.IsolateHome(t)
	cfg, path := testGlobals(t)

	cmd := NewConfigInitCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Config file created")

	content := testutil.ReadFile(t, path)
	assert.Contains(t, content, "# rigc configuration")
	assert.Contains(t, content, "blueprint: rig.blueprint.yaml")
}

func TestConfigInit_ExistingFile(t *testing.T) {
	testutil.IsolateHome(t)
	cfg, path := testGlobals(t)
	testutil.WriteFile(t, filepath.Dir(path), "config.yaml", "blueprint: other.yaml\n")

	cmd := NewConfigInitCmd(cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The existing file is untouched.
	assert.Contains(t, testutil.ReadFile(t, path), "other.yaml")
}

func TestConfigInit_Force(t *testing.T) {
	testutil.IsolateHome(t)
	cfg, path := testGlobals(t)
	testutil.WriteFile(t, filepath.Dir(path), "config.yaml", "blueprint: other.yaml\n")

	cmd := NewConfigInitCmd(cfg)
	cmd.SetArgs([]string{"--force"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, testutil.ReadFile(t, path), "rig.blueprint.yaml")
}

func TestConfigVet_ValidFile(t *testing.T) {
	testutil.IsolateHome(t)
	cfg, path := testGlobals(t)
	testutil.WriteFile(t, filepath.Dir(path), "config.yaml",
		"blueprint: rigs/biped.yaml\nscene: out\nlog:\n  timestamps: false\n")

	cmd := NewConfigVetCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Config file is valid")
}

func TestConfigVet_InvalidFile(t *testing.T) {
	testutil.IsolateHome(t)
	cfg, path := testGlobals(t)
	testutil.WriteFile(t, filepath.Dir(path), "config.yaml", "blueprint: rig.txt\n")

	cmd := NewConfigVetCmd(cfg)
	cmd.SetOut(&bytes.Buffer{})
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, errors.ExitValidationError, errors.ExitCodeFromError(err))
	assert.Contains(t, errOut.String(), "config validation failed")
}

func TestConfigVet_MissingFile(t *testing.T) {
	testutil.IsolateHome(t)
	cfg, _ := testGlobals(t)

	cmd := NewConfigVetCmd(cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, errors.ExitNotFound, errors.ExitCodeFromError(err))
}
