package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFlag(t *testing.T, cmd *cobra.Command, name, shorthand, def string) {
	t.Helper()
	flag := cmd.Flags().Lookup(name)
	require.NotNil(t, flag, "%s flag should exist", name)
	assert.Equal(t, shorthand, flag.Shorthand, name)
	assert.Equal(t, def, flag.DefValue, name)
}

func TestSynth(t *testing.T) {
	cmd := Synth()

	require.NotNil(t, cmd)
	assert.Equal(t, "synth", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	requireFlag(t, cmd, "config", "c", "")
	requireFlag(t, cmd, "output-dir", "o", "")
	requireFlag(t, cmd, "metrics-file", "", "")
	requireFlag(t, cmd, "tui", "", "false")
}

func TestSynth_RejectsArgs(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"synth", "extra"})

	require.Error(t, root.Execute())
}

func TestShow(t *testing.T) {
	cmd := Show()

	require.NotNil(t, cmd)
	assert.Equal(t, "show", cmd.Use)
	requireFlag(t, cmd, "config", "c", "")
	requireFlag(t, cmd, "output", "o", "table")
	requireFlag(t, cmd, "template", "", "false")
}

func TestShow_UnknownFormat(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"show", "-o", "xml"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestPublish(t *testing.T) {
	cmd := Publish()

	require.NotNil(t, cmd)
	assert.Equal(t, "publish", cmd.Use)
	requireFlag(t, cmd, "config", "c", "")
	requireFlag(t, cmd, "output-dir", "o", "")
	for _, name := range []string{"bucket", "prefix", "region", "endpoint"} {
		requireFlag(t, cmd, name, "", "")
	}
}

func TestInit(t *testing.T) {
	cmd := Init()

	require.NotNil(t, cmd)
	assert.Equal(t, "init", cmd.Use)
	assert.Equal(t, "Interactively create a stack configuration", cmd.Short)
	requireFlag(t, cmd, "output", "o", "cloudbase.yaml")
	requireFlag(t, cmd, "full", "f", "false")
}
