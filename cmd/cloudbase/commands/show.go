package commands

import (
	"github.com/spf13/cobra"

	"github.com/abcbcafe/cloud-base/cmd/cloudbase/handlers"
)

// Show returns the command that prints what the stack declares.
func Show() *cobra.Command {
	var opts handlers.ShowOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resources of the stack",
		Long: `Synthesize the stack into a scratch directory and summarize it.

The summary counts the declared resources by CloudFormation type. Use
--template to print the complete template as YAML instead.

Examples:
  # Resource summary as a table
  cloudbase show

  # Machine readable summary
  cloudbase show -o json

  # Full template
  cloudbase show --template`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Show(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: cloudbase.yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", handlers.OutputTable, "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&opts.Template, "template", false, "Print the synthesized template as YAML")

	return cmd
}
