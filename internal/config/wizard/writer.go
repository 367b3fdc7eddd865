package wizard

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abcbcafe/cloud-base/internal/config"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// WriteConfig writes the config to a YAML file with a descriptive header.
// If fullOutput is false, only sections that differ from the reference
// configuration are written; omitted sections keep their defaults on load.
func WriteConfig(cfg *config.Config, outputPath string, fullOutput bool) error {
	var yamlBytes []byte
	var err error

	if fullOutput {
		yamlBytes, err = yaml.Marshal(cfg)
	} else {
		yamlBytes, err = yaml.Marshal(buildMinimalConfig(cfg))
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath, fullOutput))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// MinimalConfig holds the sections of a Config that differ from the
// reference configuration. The stack section is always present.
type MinimalConfig struct {
	Stack     config.StackConfig      `yaml:"stack"`
	Network   *config.NetworkConfig   `yaml:"network,omitempty"`
	Logging   *config.LoggingConfig   `yaml:"logging,omitempty"`
	FileShare *config.FileShareConfig `yaml:"file_share,omitempty"`
	Role      *config.RoleConfig      `yaml:"role,omitempty"`
	Cluster   *config.ClusterConfig   `yaml:"cluster,omitempty"`
	Output    *config.OutputConfig    `yaml:"output,omitempty"`
	Publish   *config.PublishConfig   `yaml:"publish,omitempty"`
}

// buildMinimalConfig creates a minimal config with only non-default sections.
func buildMinimalConfig(cfg *config.Config) *MinimalConfig {
	def := config.Default()
	minCfg := &MinimalConfig{Stack: cfg.Stack}

	if !reflect.DeepEqual(cfg.Network, def.Network) {
		minCfg.Network = &cfg.Network
	}
	if !reflect.DeepEqual(cfg.Logging, def.Logging) {
		minCfg.Logging = &cfg.Logging
	}
	if !reflect.DeepEqual(cfg.FileShare, def.FileShare) {
		minCfg.FileShare = &cfg.FileShare
	}
	if !reflect.DeepEqual(cfg.Role, def.Role) {
		minCfg.Role = &cfg.Role
	}
	if !reflect.DeepEqual(cfg.Cluster, def.Cluster) {
		minCfg.Cluster = &cfg.Cluster
	}
	if cfg.Output != def.Output {
		minCfg.Output = &cfg.Output
	}
	if cfg.Publish != def.Publish {
		minCfg.Publish = &cfg.Publish
	}

	return minCfg
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string, fullOutput bool) string {
	mode := "minimal"
	note := "\n# Note: Omitted sections use the reference values. Use --full for all options."
	if fullOutput {
		mode = "full"
		note = ""
	}
	return fmt.Sprintf(`# cloudbase stack configuration
# Generated by: cloudbase init
# Generated at: %s
# Output mode: %s%s
#
# Usage:
#   cloudbase synth -c %s
#   cloudbase show -c %s
`, time.Now().Format(time.RFC3339), mode, note, outputPath, outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
