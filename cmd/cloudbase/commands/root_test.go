package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "cloudbase", cmd.Use)
	assert.Equal(t, "Synthesize the shared AWS base stack", cmd.Short)
	assert.True(t, cmd.SilenceUsage)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"init",
		"synth",
		"show",
		"publish",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
	assert.Len(t, cmd.Commands(), len(expectedSubcommands))
}

func TestRoot_VerboseFlag(t *testing.T) {
	cmd := Root()

	flag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)

	require.NoError(t, cmd.ParseFlags([]string{"-vv"}))
	assert.Equal(t, "2", flag.Value.String())
}

func TestRoot_UnknownCommand(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"deploy"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "deploy"`)
}
