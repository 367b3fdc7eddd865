// Package main is the entry point for the cloudbase CLI.
//
// cloudbase declares the shared AWS base stack (network, log group, file
// shares, SSM role and ECS cluster) with the AWS CDK and synthesizes it
// into a cloud assembly ready for deployment.
//
// Commands: init, synth, show, publish, version, completion.
//
// For detailed usage information, run:
//
//	cloudbase --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abcbcafe/cloud-base/cmd/cloudbase/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
