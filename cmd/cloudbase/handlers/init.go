package handlers

import (
	"context"
	"fmt"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	wizardFileExists       = wizard.FileExists
	wizardConfirmOverwrite = wizard.ConfirmOverwrite
	wizardRunWizard        = wizard.RunWizard
	wizardBuildConfig      = wizard.BuildConfig
	wizardWriteConfig      = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string, fullOutput bool) error {
	if wizardFileExists(outputPath) {
		ok, err := wizardConfirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	printWelcome()

	result, err := wizardRunWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := wizardBuildConfig(result)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("wizard produced an invalid configuration: %w", err)
	}

	if err := wizardWriteConfig(cfg, outputPath, fullOutput); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("cloudbase - shared AWS base stack")
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("This wizard creates a stack configuration on top of the reference values.")
	fmt.Println("Press enter to keep a suggested value.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Stack Summary")
	fmt.Println("-------------")
	fmt.Printf("  Name:          %s\n", cfg.Stack.Name)
	if cfg.Stack.IsEnvironmentAgnostic() {
		fmt.Println("  Environment:   agnostic")
	} else {
		fmt.Printf("  Environment:   %s/%s\n", cfg.Stack.Account, cfg.Stack.Region)
	}
	fmt.Printf("  Log retention: %s\n", cfg.Logging.Retention)
	fmt.Printf("  NFS ingress:   %d rule(s)\n", len(cfg.FileShare.Ingress))
	fmt.Printf("  Filesystems:   %d\n", len(cfg.FileShare.FileSystems))
	fmt.Printf("  Cluster:       %s\n", cfg.Cluster.Name)
	if cfg.Publish.Bucket != "" {
		fmt.Printf("  Publish to:    s3://%s/%s\n", cfg.Publish.Bucket, cfg.Publish.Prefix)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Synthesize the stack:")
	fmt.Printf("     cloudbase synth -c %s\n", outputPath)
	fmt.Println()
}
