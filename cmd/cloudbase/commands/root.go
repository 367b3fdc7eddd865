// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/abcbcafe/cloud-base/internal/logging"
)

// Root returns the root command for the cloudbase CLI.
//
// The persistent --verbose flag may be repeated; each occurrence raises the
// log verbosity by one. Logs are written to stderr so stdout stays reserved
// for command output such as the cloud assembly directory.
func Root() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:           "cloudbase",
		Short:         "Synthesize the shared AWS base stack",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(logging.IntoContext(cmd.Context(), logging.NewStderr(verbosity)))
		},
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Synth())
	cmd.AddCommand(Show())
	cmd.AddCommand(Publish())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
