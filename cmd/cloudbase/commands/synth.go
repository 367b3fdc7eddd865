package commands

import (
	"github.com/spf13/cobra"

	"github.com/abcbcafe/cloud-base/cmd/cloudbase/handlers"
)

// Synth returns the command that synthesizes the base stack.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect cloudbase.yaml)
//	--output-dir, -o: Cloud assembly directory (default: output.dir or a temporary directory)
//	--metrics-file: Write Prometheus textfile metrics for the synthesized stack
//	--tui: Show phase progress in the terminal
func Synth() *cobra.Command {
	var opts handlers.SynthOptions

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize the stack into a cloud assembly",
		Long: `Declare the base stack and synthesize it into a cloud assembly.

The stack contains a VPC with public subnets, a log group for Fargate
tasks, an NFS security group, two EFS filesystems, an SSM instance role
and an ECS cluster with Fargate capacity providers.

The cloud assembly directory is printed on stdout.

If no config file is specified, cloudbase.yaml is searched for in the
current directory and its parents. Without one the reference
configuration is used.

Examples:
  # Synthesize the reference stack
  cloudbase synth

  # Synthesize into cdk.out using a specific config file
  cloudbase synth -c production.yaml -o cdk.out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Synth(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: cloudbase.yaml)")
	cmd.Flags().StringVarP(&opts.OutDir, "output-dir", "o", "", "Cloud assembly output directory")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	cmd.Flags().BoolVar(&opts.TUI, "tui", false, "Show phase progress while synthesizing")

	return cmd
}
