package commands

import (
	"github.com/spf13/cobra"

	"github.com/abcbcafe/cloud-base/cmd/cloudbase/handlers"
	"github.com/abcbcafe/cloud-base/internal/config"
)

// Init returns the command for interactively creating a stack configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "cloudbase.yaml")
//	--full, -f: Output full YAML with all options (default: minimal output)
func Init() *cobra.Command {
	var (
		outputPath string
		fullOutput bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a stack configuration",
		Long: `Interactively create a stack configuration file.

This command starts from the reference stack and asks about:

  - Stack identity (name, description, termination protection)
  - Target account and region (optional)
  - Log retention
  - NFS ingress range
  - Cluster name and Fargate capacity providers
  - Publishing bucket (optional)

Use --full to output the complete YAML with all configuration
options. By default only values that differ from the reference
stack are written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, fullOutput)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")
	cmd.Flags().BoolVarP(&fullOutput, "full", "f", false, "Output full YAML with all options")

	return cmd
}
