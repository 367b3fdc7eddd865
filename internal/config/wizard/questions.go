package wizard

import (
	"context"
	"net"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/abcbcafe/cloud-base/internal/config"
)

// runStackGroup prompts for the stack identity.
func runStackGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Stack Name").
				Description("Name of the deployable unit").
				Placeholder("General").
				Value(&result.StackName).
				Validate(validateStackName),
			huh.NewInput().
				Title("Description (Optional)").
				Value(&result.Description),
			huh.NewConfirm().
				Title("Termination Protection").
				Description("Refuse stack deletion until protection is turned off").
				Value(&result.TerminationProtection),
		).Title("Stack"),
	).RunWithContext(ctx)
}

// runEnvironmentGroup prompts for the target account and region.
func runEnvironmentGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account (Optional)").
				Description("Leave empty for an environment-agnostic stack").
				Value(&result.Account).
				Validate(validateAccount),
			huh.NewInput().
				Title("Region (Optional)").
				Placeholder("eu-central-1").
				Value(&result.Region).
				Validate(validateRegion),
		).Title("Environment"),
	).RunWithContext(ctx)
}

// runStorageGroup prompts for log retention and the NFS source range.
func runStorageGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log Retention").
				Options(RetentionsToOptions()...).
				Value(&result.Retention),
			huh.NewInput().
				Title("NFS Source Range").
				Description("IPv4 range allowed to mount the firewalled filesystem").
				Value(&result.IngressCIDR).
				Validate(validateCIDR),
		).Title("Logging & Storage"),
	).RunWithContext(ctx)
}

// runClusterGroup prompts for the container cluster settings.
func runClusterGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster Name").
				Value(&result.ClusterName).
				Validate(validateClusterName),
			huh.NewConfirm().
				Title("Fargate Capacity Providers").
				Value(&result.Fargate),
		).Title("Cluster"),
	).RunWithContext(ctx)
}

// runPublishGroup prompts for the optional publish bucket.
func runPublishGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Publish Bucket (Optional)").
				Description("S3 bucket that cloudbase publish uploads the cloud assembly to").
				Value(&result.Bucket).
				Validate(validateBucket),
			huh.NewInput().
				Title("Key Prefix (Optional)").
				Value(&result.Prefix),
		).Title("Publishing"),
	).RunWithContext(ctx)
}

func validateStackName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errStackNameRequired
	}
	if !config.ValidStackName(s) {
		return errStackNameInvalid
	}
	return nil
}

func validateAccount(s string) error {
	s = strings.TrimSpace(s)
	if s != "" && !config.ValidAccount(s) {
		return errAccountInvalid
	}
	return nil
}

func validateRegion(s string) error {
	s = strings.TrimSpace(s)
	if s != "" && !config.ValidRegion(s) {
		return errRegionInvalid
	}
	return nil
}

func validateCIDR(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errCIDRRequired
	}
	ip, _, err := net.ParseCIDR(s)
	if err != nil || ip.To4() == nil {
		return errCIDRInvalid
	}
	return nil
}

func validateClusterName(s string) error {
	s = strings.TrimSpace(s)
	if s != "" && !config.ValidClusterName(s) {
		return errClusterNameInvalid
	}
	return nil
}

func validateBucket(s string) error {
	s = strings.TrimSpace(s)
	if s != "" && !config.ValidBucket(s) {
		return errBucketInvalid
	}
	return nil
}
