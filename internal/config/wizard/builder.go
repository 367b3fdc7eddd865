package wizard

import (
	"strings"

	"github.com/abcbcafe/cloud-base/internal/config"
)

// BuildConfig creates a Config from the wizard result, starting from the
// reference configuration.
func BuildConfig(result *WizardResult) *config.Config {
	cfg := config.Default()

	cfg.Stack.Name = strings.TrimSpace(result.StackName)
	cfg.Stack.Description = strings.TrimSpace(result.Description)
	cfg.Stack.TerminationProtection = result.TerminationProtection
	cfg.Stack.Account = strings.TrimSpace(result.Account)
	cfg.Stack.Region = strings.TrimSpace(result.Region)

	if result.Retention != "" {
		cfg.Logging.Retention = config.Retention(result.Retention)
	}

	if cidr := strings.TrimSpace(result.IngressCIDR); cidr != "" {
		cfg.FileShare.Ingress[0].CIDR = cidr
	}

	cfg.Cluster.Name = strings.TrimSpace(result.ClusterName)
	cfg.Cluster.FargateCapacityProviders = result.Fargate

	if bucket := strings.TrimSpace(result.Bucket); bucket != "" {
		cfg.Publish.Bucket = bucket
		cfg.Publish.Prefix = strings.Trim(strings.TrimSpace(result.Prefix), "/")
		cfg.Publish.Region = cfg.Stack.Region
	}

	return cfg
}
