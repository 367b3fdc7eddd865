package wizard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcbcafe/cloud-base/internal/config"
)

func TestWriteConfig_MinimalOutput(t *testing.T) {
	t.Parallel()
	outputPath := filepath.Join(t.TempDir(), config.DefaultConfigFilename)

	cfg := config.Default()
	cfg.Logging.Retention = config.RetentionOneMonth

	require.NoError(t, WriteConfig(cfg, outputPath, false))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "# cloudbase stack configuration")
	assert.Contains(t, text, "Output mode: minimal")
	assert.Contains(t, text, "name: General")
	assert.Contains(t, text, "retention: one_month")
	assert.NotContains(t, text, "file_share:")
	assert.NotContains(t, text, "cluster:")

	loaded, err := config.Load(outputPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteConfig_FullOutput(t *testing.T) {
	t.Parallel()
	outputPath := filepath.Join(t.TempDir(), config.DefaultConfigFilename)

	require.NoError(t, WriteConfig(config.Default(), outputPath, true))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "Output mode: full")
	assert.NotContains(t, text, "Note:")
	assert.Contains(t, text, "file_share:")
	assert.Contains(t, text, "security_group_id: efsSg")
	assert.Contains(t, text, "fargate_capacity_providers: true")

	loaded, err := config.Load(outputPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestWriteConfig_BadPath(t *testing.T) {
	t.Parallel()
	err := WriteConfig(config.Default(), filepath.Join(t.TempDir(), "missing", "x.yaml"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}

func TestBuildMinimalConfig(t *testing.T) {
	t.Parallel()
	minCfg := buildMinimalConfig(config.Default())
	assert.Nil(t, minCfg.Network)
	assert.Nil(t, minCfg.Logging)
	assert.Nil(t, minCfg.FileShare)
	assert.Nil(t, minCfg.Role)
	assert.Nil(t, minCfg.Cluster)
	assert.Nil(t, minCfg.Output)
	assert.Nil(t, minCfg.Publish)

	cfg := config.Default()
	cfg.Publish.Bucket = "assemblies"
	cfg.Cluster.FargateCapacityProviders = false
	minCfg = buildMinimalConfig(cfg)
	require.NotNil(t, minCfg.Publish)
	require.NotNil(t, minCfg.Cluster)
	assert.Equal(t, "assemblies", minCfg.Publish.Bucket)
}

func TestFileExists(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "x")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, nil, 0600))
	assert.True(t, FileExists(path))
}

func TestConfirmOverwrite_UsesInjectedPrompt(t *testing.T) {
	orig := confirmOverwrite
	t.Cleanup(func() { confirmOverwrite = orig })

	confirmOverwrite = func(string) (bool, error) { return true, nil }
	ok, err := ConfirmOverwrite("x")
	require.NoError(t, err)
	assert.True(t, ok)

	confirmOverwrite = func(string) (bool, error) { return false, errors.New("eof") }
	_, err = ConfirmOverwrite("x")
	require.Error(t, err)
}
